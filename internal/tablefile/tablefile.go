// Package tablefile reads vocabulary table definitions from YAML or JSON files.
package tablefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/lexiz/internal/vocab"
)

// ErrUnsupportedFormat is returned for files that are neither YAML nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported table file format")

// Load reads, normalizes and validates the table at path.
// The format is chosen by extension: .yaml, .yml or .json. The document
// is checked against the embedded table schema before it is decoded.
func Load(path string) (*vocab.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read table file: %w", err)
	}

	var f format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f = formatYAML
	case ".json":
		f = formatJSON
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err := checkShape(f, data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var t vocab.Table
	if f == formatYAML {
		err = yaml.Unmarshal(data, &t)
	} else {
		err = json.Unmarshal(data, &t)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	Normalize(&t)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Normalize fills row IDs that were left out as "<table>-<n>" (1-based)
// and lowercases relation mode names.
func Normalize(t *vocab.Table) {
	t.ID = strings.TrimSpace(t.ID)
	for i := range t.Rows {
		if strings.TrimSpace(t.Rows[i].ID) == "" {
			t.Rows[i].ID = fmt.Sprintf("%s-%d", t.ID, i+1)
		}
	}
	for i := range t.Relations {
		rel := &t.Relations[i]
		for j, m := range rel.CompatibleModes {
			rel.CompatibleModes[j] = vocab.StudyMode(strings.ToLower(strings.TrimSpace(string(m))))
		}
	}
}

// CarryStats copies learner stats from existing rows into matching rows of
// incoming, so re-importing a table keeps progress for rows that survive.
func CarryStats(incoming, existing *vocab.Table) {
	if existing == nil {
		return
	}
	for i := range incoming.Rows {
		if old, ok := existing.Row(incoming.Rows[i].ID); ok {
			incoming.Rows[i].Stats = old.Stats
		}
	}
}
