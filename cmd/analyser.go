/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/ademuri/stream-history-tools/internal/analysis"
	"github.com/ademuri/stream-history-tools/internal/chart"
	"github.com/ademuri/stream-history-tools/internal/history"
)

// ErrSkipReport marks an analysis with nothing to report.
var ErrSkipReport = errors.New("nothing to report")

type Analysis struct {
	results      [][]string
	summary      string
	BodyOverride string
}

type AnalyserConfig struct {
	// Number of results to return, default is all results.
	NumToReturn int
}

type Analyser interface {
	GetResults(events []history.PlayEvent, start time.Time, end time.Time) (Analysis, error)

	GetName() string
}

type Configurable interface {
	Configure(params map[string]string) error
}

func (a Analysis) String() string {
	out := new(bytes.Buffer)
	table := tablewriter.NewWriter(out)
	table.Header(a.results[0])
	for _, row := range a.results[1:] {
		if err := table.Append(row); err != nil {
			return fmt.Sprintf("Error rendering table: %v", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Sprintf("Error rendering table: %v", err)
	}
	fmt.Fprintf(out, "%s\n", a.summary)
	return out.String()
}

// loadArchive reads and enriches the whole export directory. Every
// command recomputes from JSON; nothing is cached between runs.
func loadArchive(dir string) ([]history.PlayEvent, error) {
	raw, err := history.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	events, err := history.Enrich(raw)
	if err != nil {
		return nil, fmt.Errorf("enriching history: %w", err)
	}
	return events, nil
}

// formatMeasure rounds a summed measure to 2 decimals for display.
// Aggregation upstream stays at full precision.
func formatMeasure(x float64) string {
	return strconv.FormatFloat(math.Round(x*100)/100, 'f', 2, 64)
}

func measureColumns(row analysis.AggregateRow) []string {
	return []string{formatMeasure(row.Minutes), formatMeasure(row.Hours), formatMeasure(row.Days)}
}

// displayPeriod describes a period for summaries, falling back to the
// archive span when no explicit range was given.
func displayPeriod(events []history.PlayEvent, start, end time.Time) string {
	const dateFormat = "2006-01-02"
	if start.IsZero() && end.IsZero() {
		first, last, ok := analysis.Span(events)
		if !ok {
			return "over an empty period"
		}
		return fmt.Sprintf("from %s to %s", first.Format(dateFormat), last.Format(dateFormat))
	}
	return fmt.Sprintf("from %s to %s", start.Format(dateFormat), end.Format(dateFormat))
}

// writeChart renders a line chart into chartsDir. A render failure
// fails only the command that asked for the chart.
func writeChart(chartsDir, name string, c chart.LineChart) error {
	if err := os.MkdirAll(chartsDir, 0755); err != nil {
		return fmt.Errorf("creating charts directory: %w", err)
	}
	path := filepath.Join(chartsDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	var renderer chart.Renderer = chart.NewEChartsRenderer()
	if err := renderer.RenderLine(f, c); err != nil {
		return err
	}
	fmt.Printf("Wrote chart to %s\n", path)
	return nil
}
