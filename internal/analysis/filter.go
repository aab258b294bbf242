package analysis

import (
	"time"

	"github.com/ademuri/stream-history-tools/internal/history"
)

// FilterRange keeps events whose timestamp falls in [start, end). A
// zero start or end leaves that side unbounded.
func FilterRange(events []history.PlayEvent, start, end time.Time) []history.PlayEvent {
	if start.IsZero() && end.IsZero() {
		return events
	}

	var filtered []history.PlayEvent
	for _, event := range events {
		if !start.IsZero() && event.Timestamp.Before(start) {
			continue
		}
		if !end.IsZero() && !event.Timestamp.Before(end) {
			continue
		}
		filtered = append(filtered, event)
	}
	return filtered
}

// FilterArtists keeps events by the named artists.
func FilterArtists(events []history.PlayEvent, artists []string) []history.PlayEvent {
	keep := make(map[string]bool, len(artists))
	for _, artist := range artists {
		keep[artist] = true
	}

	var filtered []history.PlayEvent
	for _, event := range events {
		if keep[event.Artist] {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

// Span returns the timestamps of the earliest and latest events. ok is
// false for an empty slice.
func Span(events []history.PlayEvent) (first, last time.Time, ok bool) {
	for _, event := range events {
		if !ok {
			first, last, ok = event.Timestamp, event.Timestamp, true
			continue
		}
		if event.Timestamp.Before(first) {
			first = event.Timestamp
		}
		if event.Timestamp.After(last) {
			last = event.Timestamp
		}
	}
	return
}

// NewArtists returns the artists whose first play in the whole archive
// falls inside [start, end), in first-encounter order.
func NewArtists(events []history.PlayEvent, start, end time.Time) []string {
	firstPlay := make(map[string]time.Time)
	var order []string
	for _, event := range events {
		if event.Artist == "" {
			continue
		}
		existing, seen := firstPlay[event.Artist]
		if !seen {
			order = append(order, event.Artist)
		}
		if !seen || event.Timestamp.Before(existing) {
			firstPlay[event.Artist] = event.Timestamp
		}
	}

	var artists []string
	for _, artist := range order {
		first := firstPlay[artist]
		if !start.IsZero() && first.Before(start) {
			continue
		}
		if !end.IsZero() && !first.Before(end) {
			continue
		}
		artists = append(artists, artist)
	}
	return artists
}

// MissingMonths returns the year-month labels inside the archive's
// span that have no events at all. The usual cause is a lost export
// file.
func MissingMonths(events []history.PlayEvent) []string {
	first, last, ok := Span(events)
	if !ok {
		return nil
	}

	seen := make(map[string]bool)
	for _, event := range events {
		seen[event.YearMonth] = true
	}

	var missing []string
	cursor := time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.UTC)
	stop := time.Date(last.Year(), last.Month(), 1, 0, 0, 0, 0, time.UTC)
	for ; !cursor.After(stop); cursor = cursor.AddDate(0, 1, 0) {
		label := cursor.Format("2006-01")
		if !seen[label] {
			missing = append(missing, label)
		}
	}
	return missing
}
