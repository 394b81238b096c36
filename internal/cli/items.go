package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/selectlist/internal/itemsource"
	listview "github.com/rshade/selectlist/internal/tui/list"
)

// stdinPath is the --items value that reads items from stdin.
const stdinPath = "-"

// itemFlags are the item source flags shared by pick and render.
type itemFlags struct {
	path   string
	format string
}

func (f *itemFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.path, "items", "",
		"item file (.yaml, .json, .toml or plain text); - reads stdin")
	cmd.Flags().StringVar(&f.format, "format", "",
		"item format when reading stdin or overriding the extension: yaml, json, toml, text")
}

// load returns the entries named by the flags, or built from args when no file is given.
func (f *itemFlags) load(cmd *cobra.Command, args []string) ([]listview.Entry[string, itemsource.Record], error) {
	switch {
	case f.path == stdinPath:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading items from stdin: %w", err)
		}
		format := itemsource.FormatText
		if f.format != "" {
			format = itemsource.Format(f.format)
		}
		return itemsource.Parse(data, format)
	case f.path != "" && f.format != "":
		return itemsource.LoadFormat(f.path, itemsource.Format(f.format))
	case f.path != "":
		return itemsource.Load(f.path)
	case len(args) > 0:
		return itemsource.FromArgs(args)
	default:
		return nil, ErrNoItems
	}
}
