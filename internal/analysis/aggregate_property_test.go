package analysis

import (
	"math"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/ademuri/stream-history-tools/internal/history"
)

// eventsFromSpec builds an event table from generated values: artist
// index 0 stands in for a null-artist podcast row.
func eventsFromSpec(artistIdx []int, msPlayed []int64) []history.PlayEvent {
	artists := []string{"", "A", "B", "C", "D", "E"}
	n := len(artistIdx)
	if len(msPlayed) < n {
		n = len(msPlayed)
	}

	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	events := make([]history.PlayEvent, 0, n)
	for i := 0; i < n; i++ {
		ts := base.Add(time.Duration(i) * time.Hour)
		ms := msPlayed[i]
		minutes := float64(ms) / 60000
		events = append(events, history.PlayEvent{
			Timestamp:     ts,
			Year:          ts.Year(),
			Month:         int(ts.Month()),
			YearMonth:     ts.Format("2006-01"),
			Artist:        artists[artistIdx[i]%len(artists)],
			MsPlayed:      ms,
			MsPlayedValid: true,
			Minutes:       minutes,
			Hours:         minutes / 60,
			Days:          minutes / 60 / 24,
		})
	}
	return events
}

const floatTolerance = 1e-6

func TestProperty_DurationProportionality(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("hours = minutes/60 and days = hours/24 for every enriched row", prop.ForAll(
		func(ms int64) bool {
			events, err := history.Enrich([]history.RawEvent{
				{Ts: "2023-05-01T12:00:00Z", MsPlayed: &ms},
			})
			if err != nil {
				return false
			}
			e := events[0]
			return math.Abs(e.Hours-e.Minutes/60) < floatTolerance &&
				math.Abs(e.Days-e.Hours/24) < floatTolerance
		},
		gen.Int64Range(0, 86400000),
	))

	properties.TestingRun(t)
}

func TestProperty_AggregationSumConservation(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("per-artist sums add up to the total over rows with an artist", prop.ForAll(
		func(artistIdx []int, msPlayed []int64) bool {
			events := eventsFromSpec(artistIdx, msPlayed)

			rows, err := SumPlayTime(events, ByArtist)
			if err != nil {
				return false
			}

			var grouped float64
			for _, row := range rows {
				grouped += row.Minutes
			}

			var direct float64
			for _, event := range events {
				if event.Artist != "" {
					direct += event.Minutes
				}
			}

			return math.Abs(grouped-direct) < floatTolerance
		},
		gen.SliceOf(gen.IntRange(0, 5)),
		gen.SliceOf(gen.Int64Range(0, 600000)),
	))

	properties.TestingRun(t)
}

func TestProperty_SortOrderNonIncreasing(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("artist aggregation minutes never increase down the ranking", prop.ForAll(
		func(artistIdx []int, msPlayed []int64) bool {
			events := eventsFromSpec(artistIdx, msPlayed)

			rows, err := SumPlayTime(events, ByArtist)
			if err != nil {
				return false
			}
			for i := 1; i < len(rows); i++ {
				if rows[i].Minutes > rows[i-1].Minutes {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 5)),
		gen.SliceOf(gen.Int64Range(0, 600000)),
	))

	properties.TestingRun(t)
}
