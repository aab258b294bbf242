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
	"os"
	"path/filepath"
	"testing"

	"github.com/ademuri/stream-history-tools/internal/history"
)

func writeHistoryFile(t *testing.T, dir string, name string, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

// playEventForTest builds one enriched event through the real pipeline
// so duration fields stay consistent with production enrichment.
func playEventForTest(t *testing.T, ts string, artist string, album string, song string, msPlayed int64) history.PlayEvent {
	t.Helper()
	raw := history.RawEvent{
		Ts:         ts,
		MsPlayed:   &msPlayed,
		ArtistName: &artist,
		AlbumName:  &album,
		TrackName:  &song,
	}
	events, err := history.Enrich([]history.RawEvent{raw})
	if err != nil {
		t.Fatalf("Enrich() error: %v", err)
	}
	return events[0]
}
