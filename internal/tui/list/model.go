package listview

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// noCursor is the cursor value before any child has received focus.
const noCursor = -1

// blurIndex is the index reported by the shared blur handler.
const blurIndex = -1

// ItemFocusMsg tells the list that the child at Index received focus.
type ItemFocusMsg struct{ Index int }

// ItemBlurMsg tells the list that the child at Index lost focus.
type ItemBlurMsg struct{ Index int }

// ItemClickMsg tells the list that the child at Index was clicked.
type ItemClickMsg struct{ Index int }

// Config configures an Items list.
type Config[K comparable, V any] struct {
	// Renderer renders each item. Defaults to DefaultRenderer.
	Renderer Renderer[V]

	// OnSelectionChange is called with the new selection every time it changes.
	OnSelectionChange func(Selection[K])

	// Logger receives debug logs for state transitions. Defaults to a no-op logger.
	Logger *zerolog.Logger

	// KeyMap holds the toggle and blur bindings. Defaults to DefaultKeyMap.
	KeyMap KeyMap

	// Width limits the rendered width of tag items; 0 means unlimited.
	Width int
}

// Items is a list of keyed entries with internally managed focus and selection.
// It must be used through a pointer: the handlers it hands out are bound to the instance.
type Items[K comparable, V any] struct {
	// items is the caller's collection; it is never mutated
	items []Entry[K, V]

	render            Renderer[V]
	onSelectionChange func(Selection[K])
	logger            zerolog.Logger
	keys              KeyMap

	// width is the column budget for tag items
	width int

	// offset is the line at which the list starts inside the host view
	offset int

	// cursor is the index of the child that last had focus
	cursor int

	// hasFocus reports whether any child currently has focus
	hasFocus bool

	selection Selection[K]

	blurHandler   *Handler
	clickHandlers handlerCache
	focusHandlers handlerCache
}

// New creates a list over items.
func New[K comparable, V any](items []Entry[K, V], cfg Config[K, V]) *Items[K, V] {
	m := &Items[K, V]{
		items:             items,
		render:            cfg.Renderer,
		onSelectionChange: cfg.OnSelectionChange,
		keys:              cfg.KeyMap,
		width:             cfg.Width,
		cursor:            noCursor,
		selection:         NewSelection[K](),
	}
	if m.render.IsZero() {
		m.render = DefaultRenderer[V]()
	}
	if m.keys.isZero() {
		m.keys = DefaultKeyMap()
	}
	if cfg.Logger != nil {
		m.logger = *cfg.Logger
	} else {
		m.logger = zerolog.Nop()
	}

	m.blurHandler = &Handler{index: blurIndex, fn: func(int) { m.handleBlur() }}
	m.clickHandlers = newHandlerCache(m.handleClick)
	m.focusHandlers = newHandlerCache(m.handleFocus)
	return m
}

// Init initializes the model (required for tea.Model interface).
func (m *Items[K, V]) Init() tea.Cmd {
	return nil
}

// Update routes host events to the child handlers.
func (m *Items[K, V]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ItemFocusMsg:
		if m.inRange(msg.Index) {
			m.FocusHandler(msg.Index).Fire()
		}
	case ItemBlurMsg:
		m.BlurHandler().Fire()
	case ItemClickMsg:
		if m.inRange(msg.Index) {
			m.ClickHandler(msg.Index).Fire()
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		m.handleKey(msg)
	case tea.BlurMsg:
		m.BlurHandler().Fire()
	case tea.FocusMsg:
		if m.inRange(m.cursor) {
			m.FocusHandler(m.cursor).Fire()
		}
	}
	return m, nil
}

// handleMouse turns a left press on a row into the event sequence a pointer produces:
// blur of the previously focused child, focus of the pressed child, then click.
func (m *Items[K, V]) handleMouse(msg tea.MouseMsg) {
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return
	}
	idx := m.IndexAtLine(msg.Y - m.offset)
	if idx < 0 {
		return
	}
	if !m.hasFocus || m.cursor != idx {
		if m.hasFocus {
			m.BlurHandler().Fire()
		}
		m.FocusHandler(idx).Fire()
	}
	m.ClickHandler(idx).Fire()
}

// handleKey activates or releases the focused child. Key presses are ignored while no child
// has focus.
func (m *Items[K, V]) handleKey(msg tea.KeyMsg) {
	if !m.hasFocus || !m.inRange(m.cursor) {
		return
	}
	switch {
	case key.Matches(msg, m.keys.Toggle):
		m.ClickHandler(m.cursor).Fire()
	case key.Matches(msg, m.keys.Blur):
		m.BlurHandler().Fire()
	}
}

// View renders the children one after another with no enclosing element.
func (m *Items[K, V]) View() string {
	fragment := m.Render()
	if fragment.Len() == 0 {
		return ""
	}

	var sb strings.Builder
	for i, child := range fragment.Children {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(child.Render().String())
	}
	return sb.String()
}

// Render derives the props of every child from the current state.
func (m *Items[K, V]) Render() Fragment[K, V] {
	children := make([]Child[K, V], len(m.items))
	for i, e := range m.items {
		children[i] = Child[K, V]{
			Key: e.Key,
			Props: ItemProps[V]{
				Item:       e.Value,
				Render:     m.render,
				HasFocus:   m.hasFocus && m.cursor == i,
				IsSelected: m.selection.Has(e.Key),
				OnBlur:     m.blurHandler,
				OnFocus:    m.FocusHandler(i),
				OnClick:    m.ClickHandler(i),
				Width:      m.width,
			},
		}
	}
	return Fragment[K, V]{Children: children}
}

// IndexAtLine returns the index of the child rendered at line y of the list view, or -1.
// Children may span several lines.
func (m *Items[K, V]) IndexAtLine(y int) int {
	if y < 0 {
		return -1
	}
	line := 0
	for i, child := range m.Render().Children {
		line += lipgloss.Height(child.Render().String())
		if y < line {
			return i
		}
	}
	return -1
}

// BlurHandler returns the handler shared by all children for blur events.
func (m *Items[K, V]) BlurHandler() *Handler {
	return m.blurHandler
}

// ClickHandler returns the click handler of the child at index, creating it on first use.
// Firing it once index is out of range is a no-op.
func (m *Items[K, V]) ClickHandler(index int) *Handler {
	return m.clickHandlers.get(index)
}

// FocusHandler returns the focus handler of the child at index, creating it on first use.
func (m *Items[K, V]) FocusHandler(index int) *Handler {
	return m.focusHandlers.get(index)
}

// SyncSelection stores selection and notifies the selection listener, if any.
func (m *Items[K, V]) SyncSelection(selection Selection[K]) {
	m.selection = selection
	m.logger.Debug().Int("selected", selection.Len()).Msg("selection changed")
	if m.onSelectionChange != nil {
		m.onSelectionChange(selection)
	}
}

// handleBlur clears the list focus flag. The cursor is kept.
func (m *Items[K, V]) handleBlur() {
	m.hasFocus = false
	m.logger.Debug().Int("cursor", m.cursor).Msg("list blurred")
}

func (m *Items[K, V]) handleFocus(index int) {
	m.cursor = index
	m.hasFocus = true
	m.logger.Debug().Int("cursor", index).Msg("item focused")
}

// handleClick ignores indices past the end of the collection, which a handler cached before
// SetItems shrank the list can still carry.
func (m *Items[K, V]) handleClick(index int) {
	if !m.inRange(index) {
		m.logger.Debug().Int("index", index).Msg("click on missing item ignored")
		return
	}
	m.SyncSelection(m.selection.Toggle(m.items[index].Key))
}

// SetItems replaces the collection. Selection is keyed by entry key and is kept as is;
// the handler caches are kept too.
func (m *Items[K, V]) SetItems(items []Entry[K, V]) {
	m.items = items
}

// Items returns the current collection.
func (m *Items[K, V]) Items() []Entry[K, V] {
	return m.items
}

// Len returns the number of entries.
func (m *Items[K, V]) Len() int {
	return len(m.items)
}

// Cursor returns the index of the child that last had focus, or -1.
func (m *Items[K, V]) Cursor() int {
	return m.cursor
}

// HasFocus reports whether any child currently has focus.
func (m *Items[K, V]) HasFocus() bool {
	return m.hasFocus
}

// Selected returns the current selection.
func (m *Items[K, V]) Selected() Selection[K] {
	return m.selection
}

// SelectedEntries returns the selected entries in display order.
func (m *Items[K, V]) SelectedEntries() []Entry[K, V] {
	var out []Entry[K, V]
	for _, e := range m.items {
		if m.selection.Has(e.Key) {
			out = append(out, e)
		}
	}
	return out
}

// KeyMap returns the list's key bindings.
func (m *Items[K, V]) KeyMap() KeyMap {
	return m.keys
}

// SetWidth sets the column budget for tag items.
func (m *Items[K, V]) SetWidth(width int) {
	m.width = width
}

// SetOffset sets the line at which the list starts inside the host view, used to map mouse
// coordinates to rows.
func (m *Items[K, V]) SetOffset(offset int) {
	m.offset = offset
}

func (m *Items[K, V]) inRange(index int) bool {
	return index >= 0 && index < len(m.items)
}
