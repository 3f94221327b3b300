package filter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// LoadPatterns reads a JSONC array of patterns. Comments and trailing commas are allowed.
func LoadPatterns(path string) ([]string, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading patterns file %q: %w", path, err)
	}

	var patterns []string
	if err := json.Unmarshal(jsonc.ToJSONInPlace(data), &patterns); err != nil {
		return nil, fmt.Errorf("parsing patterns file %q: %w", path, err)
	}

	return patterns, nil
}

// Merge returns inline patterns followed by those loaded from file, if file is set.
func Merge(inline []string, file string) ([]string, error) {
	patterns := append([]string{}, inline...)

	if file == "" {
		return patterns, nil
	}

	loaded, err := LoadPatterns(file)
	if err != nil {
		return nil, err
	}

	return append(patterns, loaded...), nil
}
