package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// LoadInstruments reads the instrument list from a file.
// Supported formats:
//   - .txt  : one symbol per line, '#' lines are treated as comments
//   - .json : JSON array of strings
//
// A missing or empty list is an error: a batch run has nothing to do.
func LoadInstruments(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read instruments file %s: %w", path, err)
	}

	var instruments []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(content, &instruments); err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
	default:
		instruments = parseInstrumentsFromText(string(content))
	}

	// Remove empty and duplicates
	seen := make(map[string]bool)
	var unique []string
	for _, s := range instruments {
		s = strings.TrimSpace(strings.ToUpper(s))
		if s != "" && !seen[s] {
			seen[s] = true
			unique = append(unique, s)
		}
	}
	if len(unique) == 0 {
		return nil, fmt.Errorf("instruments file %s is empty", path)
	}

	slog.Info("loaded instruments", "count", len(unique), "path", path)
	return unique, nil
}

// parseInstrumentsFromText parses plain text where each non-empty,
// non-comment line is one symbol.
func parseInstrumentsFromText(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}
