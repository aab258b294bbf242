package analysis

// Report is the top-level structure of the YAML listening report.
type Report struct {
	Metadata   ReportMetadata `yaml:"report_metadata"`
	TopArtists []EntryStat    `yaml:"top_artists"`
	TopAlbums  []EntryStat    `yaml:"top_albums"`
	TopSongs   []EntryStat    `yaml:"top_songs"`
	Years      []YearActivity `yaml:"years"`
}

type ReportMetadata struct {
	GeneratedDate   string  `yaml:"generated_date"`
	FirstPlay       string  `yaml:"first_play"`
	LastPlay        string  `yaml:"last_play"`
	TotalPlays      int     `yaml:"total_plays"`
	DistinctArtists int     `yaml:"distinct_artists"`
	TotalHours      float64 `yaml:"total_hours"`
}

type EntryStat struct {
	Artist string  `yaml:"artist,omitempty"`
	Album  string  `yaml:"album,omitempty"`
	Song   string  `yaml:"song,omitempty"`
	Hours  float64 `yaml:"hours"`
}

type YearActivity struct {
	Year            int     `yaml:"year"`
	Hours           float64 `yaml:"hours"`
	DistinctArtists int     `yaml:"distinct_artists"`
}
