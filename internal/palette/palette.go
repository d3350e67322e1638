// Package palette loads and validates the colour sets fed into the contrast
// matrix. It accepts palette files (text, JSON, YAML or TOML, optionally
// xz, gzip or bzip2 compressed) and id=hex overrides from the command line.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmylchreest/tincture/internal/hexcolour"
	"github.com/jmylchreest/tincture/internal/matrix"
)

var (
	// ErrInvalidColour is returned when an entry's hex is not a valid colour.
	ErrInvalidColour = errors.New("invalid colour")

	// ErrDuplicateID is returned when two entries share an id.
	ErrDuplicateID = errors.New("duplicate colour id")

	// ErrEmpty is returned when no colours were provided at all.
	ErrEmpty = errors.New("no colours provided")
)

// Validate normalises every hex, assigns positional ids ("colour1", ...) to
// entries without one and rejects invalid colours and duplicate ids.
// The input slice is not modified.
func Validate(entries []matrix.Entry) ([]matrix.Entry, error) {
	out := make([]matrix.Entry, len(entries))
	seen := make(map[string]int, len(entries))

	for i, e := range entries {
		id := strings.TrimSpace(e.ID)
		if id == "" {
			id = fmt.Sprintf("colour%d", i+1)
		}

		hex, ok := hexcolour.Normalize(strings.TrimSpace(e.Hex))
		if !ok {
			return nil, fmt.Errorf("colour %q: %w: %q", id, ErrInvalidColour, e.Hex)
		}

		if prev, exists := seen[id]; exists {
			return nil, fmt.Errorf("%w: %q (entries %d and %d)", ErrDuplicateID, id, prev+1, i+1)
		}
		seen[id] = i

		out[i] = matrix.Entry{ID: id, Hex: hex}
	}

	return out, nil
}

// ParseOverrides parses command-line colour specifications. Each spec is
// either "id=hex" or a bare hex.
func ParseOverrides(specs []string) ([]matrix.Entry, error) {
	entries := make([]matrix.Entry, 0, len(specs))
	for _, spec := range specs {
		entry, err := parseSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid colour specification %q: %w", spec, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// parseSpec parses a single "id=hex" or "hex" specification.
func parseSpec(spec string) (matrix.Entry, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return matrix.Entry{}, errors.New("empty specification")
	}

	id, hex, found := strings.Cut(spec, "=")
	if !found {
		return matrix.Entry{Hex: spec}, nil
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return matrix.Entry{}, errors.New("expected 'id=hex'")
	}

	return matrix.Entry{ID: id, Hex: strings.TrimSpace(hex)}, nil
}

// Merge applies overrides to base: an override whose id matches a base
// entry replaces its hex in place, anything else is appended.
func Merge(base, overrides []matrix.Entry) []matrix.Entry {
	merged := append([]matrix.Entry(nil), base...)
	index := make(map[string]int, len(merged))
	for i, e := range merged {
		if e.ID != "" {
			index[e.ID] = i
		}
	}

	for _, o := range overrides {
		if i, ok := index[o.ID]; ok && o.ID != "" {
			merged[i].Hex = o.Hex
			continue
		}
		if o.ID != "" {
			index[o.ID] = len(merged)
		}
		merged = append(merged, o)
	}

	return merged
}

// Resolve loads the palette file at path (if any), applies overrides and
// validates the result.
func Resolve(path string, overrides []string) ([]matrix.Entry, error) {
	var base []matrix.Entry
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load palette file: %w", err)
		}
		base = loaded
	}

	extra, err := ParseOverrides(overrides)
	if err != nil {
		return nil, err
	}

	merged := Merge(base, extra)
	if len(merged) == 0 {
		return nil, ErrEmpty
	}

	return Validate(merged)
}
