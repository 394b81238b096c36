package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/selectlist/internal/config"
	"github.com/rshade/selectlist/internal/tui"
)

// listFlags are the presentation flags shared by pick and render. Unset flags fall back to the
// configuration file.
type listFlags struct {
	renderer string
	width    int
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.renderer, "renderer", "",
		"item renderer: li, option, checkbox, span or card (default from config)")
	cmd.Flags().IntVar(&f.width, "width", 0, "truncate items to this many columns (0 = unlimited)")
}

// apply overlays the flags that were set on the list configuration.
func (f *listFlags) apply(cmd *cobra.Command, cfg config.ListConfig) config.ListConfig {
	if cmd.Flags().Changed("renderer") {
		cfg.Renderer = f.renderer
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = f.width
	}
	return cfg
}

// NewPickCmd creates the interactive pick command.
func NewPickCmd() *cobra.Command {
	var (
		items  itemFlags
		list   listFlags
		title  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "pick [labels...]",
		Short: "Interactively select items and print their keys",
		Long: `Opens the list in the terminal. Click an item to focus and toggle it, or use the
toggle key on the focused item. Confirm prints the selected keys to stdout in display order.

The list is drawn on stderr so stdout can be piped. With --items - the items are read from
stdin and keys and mouse events come from the controlling terminal (/dev/tty).`,
		Example: `  # Pick from arguments
  selectlist pick red green blue

  # Pick from piped lines
  ls | selectlist pick --items -

  # Pick from a YAML file with two-line cards, print JSON
  selectlist pick --items items.yaml --renderer card --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseOutputFormat(output)
			if err != nil {
				return err
			}
			input, err := interactiveInput(items.path == stdinPath)
			if err != nil {
				return err
			}
			if input != nil {
				defer input.Close()
			}

			entries, err := items.load(cmd, args)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			listCfg := list.apply(cmd, cfg.List)

			model := tui.NewPickerModel(ctx, entries, tui.PickerOptions{
				Title:    title,
				Renderer: tui.ResolveRenderer(listCfg.Renderer),
				Width:    listCfg.Width,
				Keys:     tui.KeyMapFromConfig(listCfg.Keys),
			})

			programOpts := []tea.ProgramOption{
				tea.WithOutput(cmd.ErrOrStderr()),
				tea.WithMouseCellMotion(),
				tea.WithReportFocus(),
			}
			if input != nil {
				programOpts = append(programOpts, tea.WithInput(input))
			}
			p := tea.NewProgram(model, programOpts...)
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("failed to run interactive TUI: %w", err)
			}

			picked, ok := final.(*tui.PickerModel)
			if !ok {
				return fmt.Errorf("unexpected model type %T", final)
			}
			keys, confirmed := picked.Result()
			if !confirmed {
				return ErrCancelled
			}

			logger.Info().Ctx(ctx).Int("selected", len(keys)).Msg("items picked")
			return writeKeys(cmd.OutOrStdout(), format, keys)
		},
	}

	items.register(cmd)
	list.register(cmd)
	cmd.Flags().StringVar(&title, "title", "", "title shown above the list")
	cmd.Flags().StringVarP(&output, "output", "o", string(OutputPlain), "output format: plain, json, yaml")

	return cmd
}

// ttyPath is the controlling terminal used for input when stdin carries the items.
const ttyPath = "/dev/tty"

// openTTY opens the controlling terminal.
//
//nolint:gochecknoglobals // Replaced in tests.
var openTTY = func() (*os.File, error) { return os.Open(ttyPath) }

// interactiveInput returns the file the picker reads input from. It is nil when stdin itself
// is the terminal, and the controlling terminal when stdin carries the items.
func interactiveInput(itemsFromStdin bool) (*os.File, error) {
	if !itemsFromStdin {
		if !stdinIsTerminal() {
			return nil, ErrNotInteractive
		}
		return nil, nil //nolint:nilnil // nil input means the program default, stdin.
	}

	tty, err := openTTY()
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", ErrNotInteractive, ttyPath, err)
	}
	if !isTerminal(tty) {
		_ = tty.Close()
		return nil, fmt.Errorf("%w: %s is not a terminal", ErrNotInteractive, ttyPath)
	}
	return tty, nil
}
