package palette

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/tincture/internal/compression"
	"github.com/jmylchreest/tincture/internal/hexcolour"
	"github.com/jmylchreest/tincture/internal/matrix"
)

// maxFileSize bounds the decompressed size of a palette file.
const maxFileSize = 1 << 20

// Format identifies a palette file encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// document is the structured palette layout shared by JSON, YAML and TOML.
// Both spellings of the list key are accepted.
type document struct {
	Colours []matrix.Entry `json:"colours" yaml:"colours" toml:"colours"`
	Colors  []matrix.Entry `json:"colors" yaml:"colors" toml:"colors"`
}

func (d document) entries() []matrix.Entry {
	return append(append([]matrix.Entry(nil), d.Colours...), d.Colors...)
}

// FormatFromPath infers the format from the file extension, ignoring a
// trailing compression suffix. Unknown extensions are read as text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(compression.TrimExt(path))) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatText
	}
}

// Load reads a palette file. Files ending in .xz, .gz or .bz2 are
// decompressed first. Entries are returned as written; use Validate to
// normalise them.
func Load(path string) ([]matrix.Entry, error) {
	data, err := compression.ReadFile(path, maxFileSize)
	if err != nil {
		return nil, err
	}
	return Parse(data, FormatFromPath(path))
}

// Parse decodes palette data in the given format.
func Parse(data []byte, format Format) ([]matrix.Entry, error) {
	switch format {
	case FormatJSON:
		return parseJSON(data)
	case FormatYAML:
		return parseYAML(data)
	case FormatTOML:
		var doc document
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid TOML palette: %w", err)
		}
		return doc.entries(), nil
	case FormatText, "":
		return parseText(string(data))
	default:
		return nil, fmt.Errorf("unknown palette format %q", format)
	}
}

// parseJSON accepts either {"colours": [...]} or a bare array of entries.
func parseJSON(data []byte) ([]matrix.Entry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var entries []matrix.Entry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("invalid JSON palette: %w", err)
		}
		return entries, nil
	}

	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON palette: %w", err)
	}
	return doc.entries(), nil
}

// parseYAML accepts either a colours: mapping key or a bare sequence.
func parseYAML(data []byte) ([]matrix.Entry, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("invalid YAML palette: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var entries []matrix.Entry
		if err := root.Decode(&entries); err != nil {
			return nil, fmt.Errorf("invalid YAML palette: %w", err)
		}
		return entries, nil
	}

	var doc document
	if err := root.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid YAML palette: %w", err)
	}
	return doc.entries(), nil
}

// parseText parses the line-based format: one "hex" or "id=hex" per line.
// Blank lines are skipped, as are lines starting with '#' unless the whole
// line is itself a hex colour ("#abc").
func parseText(content string) ([]matrix.Entry, error) {
	var entries []matrix.Entry

	for lineNum, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") && !hexcolour.IsValid(line) {
			continue
		}

		entry, err := parseSpec(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum+1, err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
