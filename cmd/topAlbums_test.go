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
	"testing"
	"time"

	"github.com/ademuri/stream-history-tools/internal/history"
)

func TestTopAlbumsAnalyzer(t *testing.T) {
	events := []history.PlayEvent{
		playEventForTest(t, "2023-01-02T03:04:05Z", "Artist A", "Album 1", "Song", 60000),
		playEventForTest(t, "2023-01-03T03:04:05Z", "Artist A", "Album 2", "Song", 180000),
		playEventForTest(t, "2023-01-04T03:04:05Z", "Artist A", "Album 1", "Song", 60000),
	}

	analyzer := (&TopAlbumsAnalyzer{}).SetConfig(AnalyserConfig{10})
	result, err := analyzer.GetResults(events, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("GetResults() error: %v", err)
	}

	if len(result.results) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d rows", len(result.results))
	}
	if result.results[1][1] != "Album 2" {
		t.Errorf("expected Album 2 first, got %q", result.results[1][1])
	}
	if result.results[1][2] != "3.00" {
		t.Errorf("expected 3.00 minutes for Album 2, got %q", result.results[1][2])
	}
}

func TestTopAlbumsAnalyzerRespectsRange(t *testing.T) {
	events := []history.PlayEvent{
		playEventForTest(t, "2022-06-01T00:00:00Z", "Artist A", "Old Album", "Song", 60000),
		playEventForTest(t, "2023-06-01T00:00:00Z", "Artist A", "New Album", "Song", 60000),
	}

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	analyzer := (&TopAlbumsAnalyzer{}).SetConfig(AnalyserConfig{10})
	result, err := analyzer.GetResults(events, start, end)
	if err != nil {
		t.Fatalf("GetResults() error: %v", err)
	}

	if len(result.results) != 2 {
		t.Fatalf("expected header plus 1 row, got %d rows", len(result.results))
	}
	if result.results[1][1] != "New Album" {
		t.Errorf("expected New Album, got %q", result.results[1][1])
	}
}
