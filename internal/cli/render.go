package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/selectlist/internal/itemsource"
	"github.com/rshade/selectlist/internal/tui"
	listview "github.com/rshade/selectlist/internal/tui/list"
)

// renderOptions holds the render command flags.
type renderOptions struct {
	selectKeys []string
	focusKey   string
	showKeys   bool
	output     string
}

// NewRenderCmd creates the non-interactive render command.
func NewRenderCmd() *cobra.Command {
	var (
		items itemFlags
		list  listFlags
		opts  renderOptions
	)

	cmd := &cobra.Command{
		Use:   "render [labels...]",
		Short: "Print the list without a terminal",
		Long: `Prints the list as the picker would draw it. Keys given with --select are clicked in
order, so a key given twice ends up unselected. --focus gives one item focus before printing.`,
		Example: `  # Print the list with a and c selected
  selectlist render --items items.yaml --select a,c

  # Print the resulting keys as JSON
  selectlist render red green blue --select green --keys --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := items.load(cmd, args)
			if err != nil {
				return err
			}
			cfg := configFromContext(cmd.Context())
			listCfg := list.apply(cmd, cfg.List)

			l := listview.New(entries, listview.Config[string, itemsource.Record]{
				Renderer: tui.ResolveRenderer(listCfg.Renderer),
				OnSelectionChange: func(s listview.Selection[string]) {
					logger.Debug().Ctx(cmd.Context()).Int("selected", s.Len()).Msg("selection changed")
				},
				Logger: &logger,
				Width:  listCfg.Width,
			})
			return runRender(cmd.OutOrStdout(), l, opts)
		},
	}

	items.register(cmd)
	list.register(cmd)
	cmd.Flags().StringSliceVar(&opts.selectKeys, "select", nil, "keys to click, in order")
	cmd.Flags().StringVar(&opts.focusKey, "focus", "", "key of the item that has focus")
	cmd.Flags().BoolVar(&opts.showKeys, "keys", false, "print the selected keys instead of the list")
	cmd.Flags().StringVarP(&opts.output, "output", "o", string(OutputPlain),
		"output format for --keys: plain, json, yaml")

	return cmd
}

// runRender replays the requested clicks and focus on l and prints the result.
func runRender(w io.Writer, l *listview.Items[string, itemsource.Record], opts renderOptions) error {
	format, err := ParseOutputFormat(opts.output)
	if err != nil {
		return err
	}

	index := make(map[string]int, l.Len())
	for i, e := range l.Items() {
		index[e.Key] = i
	}

	for _, k := range opts.selectKeys {
		i, ok := index[k]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownKey, k)
		}
		l.Update(listview.ItemClickMsg{Index: i})
	}
	if opts.focusKey != "" {
		i, ok := index[opts.focusKey]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownKey, opts.focusKey)
		}
		l.Update(listview.ItemFocusMsg{Index: i})
	}

	if opts.showKeys {
		return writeKeys(w, format, listview.Ordered(l.Selected(), l.Items()))
	}
	if l.Len() == 0 {
		return nil
	}
	_, err = fmt.Fprintln(w, l.View())
	return err
}
