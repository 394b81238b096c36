package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/selectlist/internal/config"
	"github.com/rshade/selectlist/internal/itemsource"
	"github.com/rshade/selectlist/internal/logging"
	listview "github.com/rshade/selectlist/internal/tui/list"
)

// headerLines is the number of lines drawn above the list: the title and a blank line.
const headerLines = 2

// defaultTitle is shown when no title is configured.
const defaultTitle = "Select items"

// printer is the locale-aware message printer for the status line.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// ViewState represents the current state of the picker.
type ViewState int

const (
	// ViewStateList is the interactive list.
	ViewStateList ViewState = iota
	// ViewStateConfirmed means the user accepted the selection.
	ViewStateConfirmed
	// ViewStateQuitting means the user left without accepting.
	ViewStateQuitting
)

// PickerKeyMap holds the picker bindings, including the list's own.
type PickerKeyMap struct {
	List    listview.KeyMap
	Confirm key.Binding
	Quit    key.Binding
}

// DefaultPickerKeyMap returns the default picker bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		List: listview.DefaultKeyMap(),
		Confirm: key.NewBinding(
			key.WithKeys("y", "ctrl+s"),
			key.WithHelp("y", "confirm"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapFromConfig applies configured key overrides on top of the defaults.
func KeyMapFromConfig(cfg config.KeysConfig) PickerKeyMap {
	km := DefaultPickerKeyMap()
	rebind(&km.List.Toggle, cfg.Toggle)
	rebind(&km.List.Blur, cfg.Blur)
	rebind(&km.Confirm, cfg.Confirm)
	rebind(&km.Quit, cfg.Quit)
	return km
}

func rebind(b *key.Binding, keys []string) {
	if len(keys) == 0 {
		return
	}
	b.SetKeys(keys...)
	b.SetHelp(keys[0], b.Help().Desc)
}

// ShortHelp implements help.KeyMap.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.List.Toggle, k.List.Blur, k.Confirm, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// PickerOptions configures a PickerModel.
type PickerOptions struct {
	Title    string
	Renderer listview.Renderer[itemsource.Record]
	Width    int
	Keys     PickerKeyMap
}

// PickerModel is the Bubble Tea model hosting a selectable list of records.
type PickerModel struct {
	state  ViewState
	title  string
	logger zerolog.Logger

	list *listview.Items[string, itemsource.Record]
	keys PickerKeyMap
	help help.Model

	// Display configuration
	width  int
	height int

	// itemWidth is the configured item width; 0 means the terminal width
	itemWidth int

	// changes counts selection change notifications
	changes int
}

// NewPickerModel creates a picker over entries. The context carries the logger.
func NewPickerModel(
	ctx context.Context,
	entries []listview.Entry[string, itemsource.Record],
	opts PickerOptions,
) *PickerModel {
	logger := logging.ComponentLogger(*logging.FromContext(ctx), "picker")

	m := &PickerModel{
		state:     ViewStateList,
		title:     opts.Title,
		logger:    logger,
		keys:      opts.Keys,
		help:      help.New(),
		width:     opts.Width,
		itemWidth: opts.Width,
	}
	if m.title == "" {
		m.title = defaultTitle
	}
	if len(m.keys.Quit.Keys()) == 0 {
		m.keys = DefaultPickerKeyMap()
	}

	m.list = listview.New(entries, listview.Config[string, itemsource.Record]{
		Renderer:          opts.Renderer,
		OnSelectionChange: m.onSelectionChange,
		Logger:            &logger,
		KeyMap:            m.keys.List,
		Width:             opts.Width,
	})
	m.list.SetOffset(headerLines)
	return m
}

func (m *PickerModel) onSelectionChange(s listview.Selection[string]) {
	m.changes++
	m.logger.Debug().Int("selected", s.Len()).Int("changes", m.changes).Msg("picker selection changed")
}

// Init initializes the model.
func (m *PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.help.Width = winMsg.Width
		m.list.SetWidth(m.listWidth())
		return m, nil
	}

	if m.state != ViewStateList {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.state = ViewStateQuitting
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Confirm):
			m.state = ViewStateConfirmed
			m.logger.Info().Int("selected", m.list.Selected().Len()).Msg("selection confirmed")
			return m, tea.Quit
		}
	}

	_, cmd := m.list.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m *PickerModel) View() string {
	if m.state != ViewStateList {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(m.title))
	sb.WriteString("\n\n")

	if m.list.Len() == 0 {
		sb.WriteString(InfoStyle.Render("No items to display."))
	} else {
		sb.WriteString(m.list.View())
	}

	sb.WriteString("\n\n")
	sb.WriteString(m.statusLine())
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// listWidth is the configured item width capped by the terminal width.
func (m *PickerModel) listWidth() int {
	if m.itemWidth > 0 && (m.width <= 0 || m.itemWidth < m.width) {
		return m.itemWidth
	}
	return m.width
}

func (m *PickerModel) statusLine() string {
	return LabelStyle.Render(printer.Sprintf("%d items", m.list.Len())) +
		LabelStyle.Render(" · ") +
		ValueStyle.Render(printer.Sprintf("%d selected", m.list.Selected().Len()))
}

// State returns the current view state.
func (m *PickerModel) State() ViewState {
	return m.state
}

// List returns the hosted list.
func (m *PickerModel) List() *listview.Items[string, itemsource.Record] {
	return m.list
}

// Result returns the selected keys in display order and whether the user confirmed them.
func (m *PickerModel) Result() ([]string, bool) {
	return listview.Ordered(m.list.Selected(), m.list.Items()), m.state == ViewStateConfirmed
}
