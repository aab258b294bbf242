package history

import (
	"fmt"
	"time"
)

const (
	msPerMinute    = 60000
	minutesPerHour = 60
	hoursPerDay    = 24
)

// Enrich derives the analysis columns from raw export records. It
// returns a new slice and never mutates its input. An unparseable
// timestamp fails the whole run; a null ms_played does not, it just
// leaves the duration fields unset.
func Enrich(raw []RawEvent) ([]PlayEvent, error) {
	events := make([]PlayEvent, 0, len(raw))
	for i, r := range raw {
		ts, err := time.Parse(time.RFC3339, r.Ts)
		if err != nil {
			return nil, fmt.Errorf("record %d: parsing timestamp %q: %w", i, r.Ts, err)
		}

		event := PlayEvent{
			Timestamp: ts,
			Year:      ts.Year(),
			Month:     int(ts.Month()),
			YearMonth: ts.Format("2006-01"),

			Artist: stringValue(r.ArtistName),
			Album:  stringValue(r.AlbumName),
			Song:   stringValue(r.TrackName),

			Platform:        r.Platform,
			ConnCountry:     r.ConnCountry,
			SpotifyTrackURI: stringValue(r.SpotifyTrackURI),
			EpisodeName:     stringValue(r.EpisodeName),
			EpisodeShowName: stringValue(r.EpisodeShowName),
			Shuffle:         r.Shuffle,
			Skipped:         r.Skipped,
		}

		if r.MsPlayed != nil {
			event.MsPlayed = *r.MsPlayed
			event.MsPlayedValid = true
			event.Minutes = float64(*r.MsPlayed) / msPerMinute
			event.Hours = event.Minutes / minutesPerHour
			event.Days = event.Hours / hoursPerDay
		}

		events = append(events, event)
	}

	return events, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
