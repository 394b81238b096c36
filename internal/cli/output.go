package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// OutputFormat selects how picked keys are printed.
type OutputFormat string

// Supported output formats.
const (
	OutputPlain OutputFormat = "plain"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a --output value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputPlain, OutputJSON, OutputYAML:
		return f, nil
	case "":
		return OutputPlain, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// writeKeys prints keys in format. Plain output is one key per line; structured output is
// always a list, even when empty.
func writeKeys(w io.Writer, format OutputFormat, keys []string) error {
	if keys == nil {
		keys = []string{}
	}
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(keys); err != nil {
			return fmt.Errorf("encoding JSON output: %w", err)
		}
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(keys); err != nil {
			return fmt.Errorf("encoding YAML output: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding YAML output: %w", err)
		}
	default:
		for _, k := range keys {
			if _, err := fmt.Fprintln(w, k); err != nil {
				return err
			}
		}
	}
	return nil
}
