package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Load reads every .json file directly inside dir and concatenates
// their records. Files are processed in lexicographic filename order so
// that row order is reproducible across platforms. Any file that cannot
// be read or does not hold an array of export records fails the whole
// load.
func Load(dir string) ([]RawEvent, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading history directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, fmt.Errorf("no .json files found in %q", dir)
	}

	var events []RawEvent
	for _, name := range names {
		path := filepath.Join(dir, name)
		contents, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		var records []RawEvent
		if err := json.Unmarshal(contents, &records); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}

		events = append(events, records...)
	}

	return events, nil
}
