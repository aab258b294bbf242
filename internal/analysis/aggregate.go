// Package analysis derives rankings, trends, and reports from enriched
// play events. Everything here is a pure function of its input slice;
// rounding for display happens in the callers.
package analysis

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ademuri/stream-history-tools/internal/history"
)

// GroupKey names a column that aggregations can group on.
type GroupKey string

const (
	ByArtist GroupKey = "artist"
	ByAlbum  GroupKey = "album"
	BySong   GroupKey = "song"
	ByYear   GroupKey = "year"
)

// AggregateRow is one group of an aggregation: the key values in the
// requested key order, plus play time summed at full precision.
type AggregateRow struct {
	Key     []string
	Minutes float64
	Hours   float64
	Days    float64
}

// keySeparator joins key values into a map key. NUL does not occur in
// export metadata.
const keySeparator = "\x00"

func keyValue(event history.PlayEvent, key GroupKey) (string, bool, error) {
	switch key {
	case ByArtist:
		return event.Artist, event.Artist != "", nil
	case ByAlbum:
		return event.Album, event.Album != "", nil
	case BySong:
		return event.Song, event.Song != "", nil
	case ByYear:
		return strconv.Itoa(event.Year), true, nil
	}
	return "", false, fmt.Errorf("unknown grouping key %q", key)
}

// SumPlayTime groups events by the given keys and sums their play
// time. Rows with a null value in any requested key column are dropped
// from the aggregation; rows with a null duration keep their group and
// contribute zero. The result is sorted by summed minutes descending,
// ties kept in first-encounter order.
func SumPlayTime(events []history.PlayEvent, keys ...GroupKey) ([]AggregateRow, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("at least one grouping key is required")
	}

	groups := make(map[string]*AggregateRow)
	var order []string

	for _, event := range events {
		values := make([]string, 0, len(keys))
		skip := false
		for _, key := range keys {
			value, ok, err := keyValue(event, key)
			if err != nil {
				return nil, err
			}
			if !ok {
				skip = true
				break
			}
			values = append(values, value)
		}
		if skip {
			continue
		}

		mapKey := strings.Join(values, keySeparator)
		row, exists := groups[mapKey]
		if !exists {
			row = &AggregateRow{Key: values}
			groups[mapKey] = row
			order = append(order, mapKey)
		}
		row.Minutes += event.Minutes
		row.Hours += event.Hours
		row.Days += event.Days
	}

	rows := make([]AggregateRow, 0, len(order))
	for _, mapKey := range order {
		rows = append(rows, *groups[mapKey])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Minutes > rows[j].Minutes
	})

	return rows, nil
}

// TopN truncates a sorted aggregation to its first n rows. n <= 0
// means no limit.
func TopN(rows []AggregateRow, n int) []AggregateRow {
	if n <= 0 || n >= len(rows) {
		return rows
	}
	return rows[:n]
}

// YearCount is the number of distinct artists heard in one year.
type YearCount struct {
	Year    int
	Artists int
}

// DistinctArtistsPerYear counts distinct non-empty artist values per
// calendar year, sorted by year ascending.
func DistinctArtistsPerYear(events []history.PlayEvent) []YearCount {
	years := make(map[int]map[string]bool)
	for _, event := range events {
		if event.Artist == "" {
			continue
		}
		artists, ok := years[event.Year]
		if !ok {
			artists = make(map[string]bool)
			years[event.Year] = artists
		}
		artists[event.Artist] = true
	}

	counts := make([]YearCount, 0, len(years))
	for year, artists := range years {
		counts = append(counts, YearCount{Year: year, Artists: len(artists)})
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Year < counts[j].Year
	})

	return counts
}

// Totals are the ungrouped sums over a set of events.
type Totals struct {
	Events  int
	Minutes float64
	Hours   float64
	Days    float64
}

// SumTotals sums play time over all events, regardless of null keys.
func SumTotals(events []history.PlayEvent) Totals {
	totals := Totals{Events: len(events)}
	for _, event := range events {
		totals.Minutes += event.Minutes
		totals.Hours += event.Hours
		totals.Days += event.Days
	}
	return totals
}
