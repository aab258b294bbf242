package analysis

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/ademuri/stream-history-tools/internal/history"
)

// BuildReport assembles the YAML listening report over the given
// events. Measures are rounded to two decimals here, at the display
// boundary; everything upstream stays at full precision.
func BuildReport(events []history.PlayEvent, topN int) (*Report, error) {
	report := &Report{}

	totals := SumTotals(events)
	report.Metadata = ReportMetadata{
		GeneratedDate: time.Now().Format("2006-01-02"),
		TotalPlays:    totals.Events,
		TotalHours:    round2(totals.Hours),
	}
	if first, last, ok := Span(events); ok {
		report.Metadata.FirstPlay = first.Format("2006-01-02")
		report.Metadata.LastPlay = last.Format("2006-01-02")
	}

	artists, err := SumPlayTime(events, ByArtist)
	if err != nil {
		return nil, fmt.Errorf("aggregating artists: %w", err)
	}
	report.Metadata.DistinctArtists = len(artists)
	for _, row := range TopN(artists, topN) {
		report.TopArtists = append(report.TopArtists, EntryStat{Artist: row.Key[0], Hours: round2(row.Hours)})
	}

	albums, err := SumPlayTime(events, ByArtist, ByAlbum)
	if err != nil {
		return nil, fmt.Errorf("aggregating albums: %w", err)
	}
	for _, row := range TopN(albums, topN) {
		report.TopAlbums = append(report.TopAlbums, EntryStat{Artist: row.Key[0], Album: row.Key[1], Hours: round2(row.Hours)})
	}

	songs, err := SumPlayTime(events, ByArtist, BySong)
	if err != nil {
		return nil, fmt.Errorf("aggregating songs: %w", err)
	}
	for _, row := range TopN(songs, topN) {
		report.TopSongs = append(report.TopSongs, EntryStat{Artist: row.Key[0], Song: row.Key[1], Hours: round2(row.Hours)})
	}

	// Per-year rows come from the year aggregation, not the distinct
	// artist counts: a year of artistless plays still has hours.
	perYear, err := SumPlayTime(events, ByYear)
	if err != nil {
		return nil, fmt.Errorf("aggregating years: %w", err)
	}
	artistsByYear := make(map[int]int)
	for _, count := range DistinctArtistsPerYear(events) {
		artistsByYear[count.Year] = count.Artists
	}
	for _, row := range perYear {
		year, err := strconv.Atoi(row.Key[0])
		if err != nil {
			return nil, fmt.Errorf("parsing year %q: %w", row.Key[0], err)
		}
		report.Years = append(report.Years, YearActivity{
			Year:            year,
			Hours:           round2(row.Hours),
			DistinctArtists: artistsByYear[year],
		})
	}
	sort.Slice(report.Years, func(i, j int) bool {
		return report.Years[i].Year < report.Years[j].Year
	})

	return report, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
