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
	"strings"
	"testing"
	"time"

	"github.com/ademuri/stream-history-tools/internal/history"
)

func TestNewArtistsAnalyzer(t *testing.T) {
	events := []history.PlayEvent{
		playEventForTest(t, "2022-06-01T00:00:00Z", "Old Artist", "Album", "Song", 60000),
		playEventForTest(t, "2023-06-01T00:00:00Z", "Old Artist", "Album", "Song", 60000),
		playEventForTest(t, "2023-06-02T00:00:00Z", "New Artist", "Album", "Song", 120000),
	}

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	analyzer := (&NewArtistsAnalyzer{}).SetConfig(AnalyserConfig{0})
	result, err := analyzer.GetResults(events, start, end)
	if err != nil {
		t.Fatalf("GetResults() error: %v", err)
	}

	if len(result.results) != 2 {
		t.Fatalf("expected header plus 1 row, got %d rows", len(result.results))
	}
	if result.results[1][0] != "New Artist" {
		t.Errorf("expected New Artist, got %q", result.results[1][0])
	}
	if !strings.Contains(result.summary, "1 new artists") {
		t.Errorf("summary should mention 1 new artist: %q", result.summary)
	}
}

func TestPrintNewArtistsRequiresDate(t *testing.T) {
	err := printNewArtists(t.TempDir(), []string{"derp"}, 0)
	if err == nil {
		t.Fatalf("printNewArtists should have errored with an invalid date string")
	}
}
