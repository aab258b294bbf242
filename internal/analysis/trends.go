package analysis

import (
	"strconv"

	"github.com/ademuri/stream-history-tools/internal/history"
)

// ArtistYearSeries is play time per year for a set of artists, shaped
// for charting: Hours[i][j] is artist i's hours in Years[j]. Years
// span the archive's first to last year inclusive; an artist with no
// plays in a year holds a zero there.
type ArtistYearSeries struct {
	Artists []string
	Years   []int
	Hours   [][]float64
}

// TopArtistTrends picks the n artists with the highest all-time summed
// minutes, then re-aggregates the full event slice restricted to those
// artists by artist and year. The selection is all-time: an artist's
// line appears even in years where it was not among that year's top n.
func TopArtistTrends(events []history.PlayEvent, n int) (ArtistYearSeries, error) {
	allTime, err := SumPlayTime(events, ByArtist)
	if err != nil {
		return ArtistYearSeries{}, err
	}
	top := TopN(allTime, n)
	if len(top) == 0 {
		return ArtistYearSeries{}, nil
	}

	series := ArtistYearSeries{}
	for _, row := range top {
		series.Artists = append(series.Artists, row.Key[0])
	}

	first, last, _ := Span(events)
	for year := first.Year(); year <= last.Year(); year++ {
		series.Years = append(series.Years, year)
	}

	perYear, err := SumPlayTime(FilterArtists(events, series.Artists), ByArtist, ByYear)
	if err != nil {
		return ArtistYearSeries{}, err
	}
	hoursByArtistYear := make(map[string]float64, len(perYear))
	for _, row := range perYear {
		hoursByArtistYear[row.Key[0]+keySeparator+row.Key[1]] = row.Hours
	}

	series.Hours = make([][]float64, len(series.Artists))
	for i, artist := range series.Artists {
		series.Hours[i] = make([]float64, len(series.Years))
		for j, year := range series.Years {
			series.Hours[i][j] = hoursByArtistYear[artist+keySeparator+strconv.Itoa(year)]
		}
	}

	return series, nil
}
