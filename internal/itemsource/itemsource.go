// Package itemsource loads list entries from item files and command-line arguments.
//
// Item files hold a top-level "items" sequence of records:
//
//	items:
//	  - key: a
//	    label: Alpha
//	    detail: first letter
//
// YAML, JSON and TOML ([[items]] tables) are recognized by extension; any other extension is
// read as plain text with one label per non-empty line. Records without a key get a
// generated ULID; records without a label use their key.
package itemsource

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/oklog/ulid/v2"
	"gopkg.in/yaml.v3"

	listview "github.com/rshade/selectlist/internal/tui/list"
)

// Format identifies an item file encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatText Format = "text"
)

// Sentinel errors.
var (
	ErrUnknownFormat = errors.New("unknown item format")
	ErrDuplicateKey  = errors.New("duplicate item key")
)

// Record is one item of an item file.
type Record struct {
	Key    string `yaml:"key"    json:"key"    toml:"key"`
	Label  string `yaml:"label"  json:"label"  toml:"label"`
	Detail string `yaml:"detail" json:"detail" toml:"detail"`
}

// String returns the label, which tag renderers display.
func (r Record) String() string {
	return r.Label
}

type document struct {
	Items []Record `yaml:"items" json:"items" toml:"items"`
}

// FormatFromPath infers the format from the file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatText
	}
}

// Load reads the item file at path, inferring the format from its extension.
func Load(path string) ([]listview.Entry[string, Record], error) {
	return LoadFormat(path, FormatFromPath(path))
}

// LoadFormat reads the item file at path in the given format.
func LoadFormat(path string, format Format) ([]listview.Entry[string, Record], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading item file %s: %w", path, err)
	}
	entries, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return entries, nil
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) ([]listview.Entry[string, Record], error) {
	var doc document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing YAML items: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing JSON items: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, fmt.Errorf("parsing TOML items: %w", err)
		}
	case FormatText:
		records, err := parseLines(data)
		if err != nil {
			return nil, err
		}
		doc.Items = records
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return toEntries(doc.Items)
}

// FromArgs builds entries from labels given on the command line. Each label is its own key.
func FromArgs(args []string) ([]listview.Entry[string, Record], error) {
	records := make([]Record, 0, len(args))
	for _, a := range args {
		records = append(records, Record{Key: a, Label: a})
	}
	return toEntries(records)
}

// maxLineSize is the longest text item line accepted.
const maxLineSize = 1 << 20

func parseLines(data []byte) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		records = append(records, Record{Key: line, Label: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading text items: %w", err)
	}
	return records, nil
}

func toEntries(records []Record) ([]listview.Entry[string, Record], error) {
	seen := make(map[string]bool, len(records))
	entries := make([]listview.Entry[string, Record], 0, len(records))
	for _, r := range records {
		if r.Key == "" {
			r.Key = ulid.Make().String()
		}
		if r.Label == "" {
			r.Label = r.Key
		}
		if seen[r.Key] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, r.Key)
		}
		seen[r.Key] = true
		entries = append(entries, listview.Entry[string, Record]{Key: r.Key, Value: r})
	}
	return entries, nil
}
