package history

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestLoadConcatenatesAllFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "history_0.json", `[
		{"ts": "2023-01-01T00:00:00Z", "master_metadata_album_artist_name": "X", "ms_played": 60000},
		{"ts": "2023-01-02T00:00:00Z", "master_metadata_album_artist_name": "X", "ms_played": 30000}
	]`)
	writeFile(t, dir, "history_1.json", `[
		{"ts": "2023-06-01T00:00:00Z", "master_metadata_album_artist_name": "Y", "ms_played": 120000}
	]`)

	events, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}
}

func TestLoadOrdersFilesLexicographically(t *testing.T) {
	dir := t.TempDir()
	// Written out of order on purpose.
	writeFile(t, dir, "b.json", `[{"ts": "2023-02-01T00:00:00Z", "master_metadata_album_artist_name": "Second"}]`)
	writeFile(t, dir, "a.json", `[{"ts": "2023-01-01T00:00:00Z", "master_metadata_album_artist_name": "First"}]`)

	events, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	if *events[0].ArtistName != "First" || *events[1].ArtistName != "Second" {
		t.Errorf("Events out of order: got %q then %q", *events[0].ArtistName, *events[1].ArtistName)
	}
}

func TestLoadIgnoresNonJSONFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "history.json", `[{"ts": "2023-01-01T00:00:00Z"}]`)
	writeFile(t, dir, "README.md", "not json at all")
	if err := os.Mkdir(filepath.Join(dir, "nested.json"), 0755); err != nil {
		t.Fatalf("creating directory: %v", err)
	}

	events, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("Expected 1 event, got %d", len(events))
	}
}

func TestLoadFailsOnMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.json", `[{"ts": "2023-01-01T00:00:00Z"}]`)
	writeFile(t, dir, "mangled.json", `{"ts": "not an array"}`)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Load should have failed on a non-array file")
	}
	if !strings.Contains(err.Error(), "mangled.json") {
		t.Errorf("Error should name the bad file: %v", err)
	}
}

func TestLoadFailsWithNoFiles(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("Load should have failed with no .json files")
	}
}

func TestLoadEmptyArrayContributesNoRows(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "empty.json", `[]`)
	writeFile(t, dir, "one.json", `[{"ts": "2023-01-01T00:00:00Z"}]`)

	events, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("Expected 1 event, got %d", len(events))
	}
}
