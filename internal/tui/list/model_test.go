package listview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type value struct {
	id  string
	val string
}

func (v value) String() string { return v.val }

func testEntries() []Entry[string, value] {
	return []Entry[string, value]{
		{Key: "a", Value: value{id: "a", val: "10"}},
		{Key: "b", Value: value{id: "b", val: "20"}},
		{Key: "c", Value: value{id: "c", val: "30"}},
	}
}

func newTestItems(cfg Config[string, value]) *Items[string, value] {
	return New(testEntries(), cfg)
}

// TestItems_Defaults verifies the initial state.
func TestItems_Defaults(t *testing.T) {
	m := newTestItems(Config[string, value]{})

	assert.Equal(t, -1, m.Cursor())
	assert.False(t, m.HasFocus())
	assert.Equal(t, 0, m.Selected().Len())
	assert.Equal(t, RendererTag, m.render.Kind())
	assert.Equal(t, DefaultTag, m.render.Name())
}

// TestItems_RendersChildPerEntry verifies one keyed child per entry.
func TestItems_RendersChildPerEntry(t *testing.T) {
	m := newTestItems(Config[string, value]{})
	fragment := m.Render()

	require.Equal(t, 3, fragment.Len())
	for i, child := range fragment.Children {
		assert.Equal(t, testEntries()[i].Key, child.Key)
	}
}

// TestItems_EmptyRendersNothing verifies an empty collection.
func TestItems_EmptyRendersNothing(t *testing.T) {
	m := New[string, value](nil, Config[string, value]{})

	assert.Equal(t, 0, m.Render().Len())
	assert.Empty(t, m.View())
	assert.Equal(t, -1, m.Cursor())
	assert.False(t, m.HasFocus())
	assert.Equal(t, -1, m.IndexAtLine(0))
}

// TestItems_ChildProps verifies the props derived for each child.
func TestItems_ChildProps(t *testing.T) {
	renderer := Tag[value]("li")
	m := newTestItems(Config[string, value]{Renderer: renderer})

	for i, child := range m.Render().Children {
		entry := testEntries()[i]
		assert.Equal(t, entry.Key, child.Key)
		assert.Equal(t, entry.Value, child.Props.Item)
		assert.Equal(t, renderer.Name(), child.Props.Render.Name())
		assert.False(t, child.Props.HasFocus)
		assert.False(t, child.Props.IsSelected)
		assert.Same(t, m.BlurHandler(), child.Props.OnBlur)
		assert.Same(t, m.ClickHandler(i), child.Props.OnClick)
		assert.Same(t, m.FocusHandler(i), child.Props.OnFocus)
	}
}

// TestItems_FocusDerivation verifies only the child at the cursor has focus.
func TestItems_FocusDerivation(t *testing.T) {
	tests := []struct {
		name     string
		cursor   int
		hasFocus bool
		want     []bool
	}{
		{name: "focused list", cursor: 1, hasFocus: true, want: []bool{false, true, false}},
		{name: "unfocused list", cursor: 1, hasFocus: false, want: []bool{false, false, false}},
		{name: "stale cursor", cursor: 7, hasFocus: true, want: []bool{false, false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestItems(Config[string, value]{})
			m.cursor = tt.cursor
			m.hasFocus = tt.hasFocus

			for i, child := range m.Render().Children {
				assert.Equal(t, tt.want[i], child.Props.HasFocus, "child %d", i)
				assert.False(t, child.Props.IsSelected)
			}
		})
	}
}

// TestItems_SelectionDerivation verifies selection is looked up by key.
func TestItems_SelectionDerivation(t *testing.T) {
	m := newTestItems(Config[string, value]{})
	selection := NewSelection("b", "c")
	m.selection = selection

	for _, child := range m.Render().Children {
		assert.Equal(t, selection.Has(child.Key), child.Props.IsSelected, child.Key)
		assert.False(t, child.Props.HasFocus)
	}
}

// TestItems_SelectionSurvivesReorder verifies selection follows keys, not positions.
func TestItems_SelectionSurvivesReorder(t *testing.T) {
	m := newTestItems(Config[string, value]{})
	m.ClickHandler(0).Fire() // selects "a"

	entries := testEntries()
	reordered := []Entry[string, value]{entries[2], entries[1], entries[0]}
	m.SetItems(reordered)

	children := m.Render().Children
	assert.False(t, children[0].Props.IsSelected)
	assert.False(t, children[1].Props.IsSelected)
	assert.True(t, children[2].Props.IsSelected)
	assert.Equal(t, "a", children[2].Key)
}

// TestItems_SyncSelection verifies the listener is called with the stored selection.
func TestItems_SyncSelection(t *testing.T) {
	var got []Selection[string]
	m := newTestItems(Config[string, value]{
		OnSelectionChange: func(s Selection[string]) { got = append(got, s) },
	})
	selection := NewSelection[string]()

	m.SyncSelection(selection)

	require.Len(t, got, 1)
	assert.True(t, selection.Equal(got[0]))
	assert.True(t, selection.Equal(m.Selected()))
}

// TestItems_SyncSelectionWithoutListener verifies a missing listener is tolerated.
func TestItems_SyncSelectionWithoutListener(t *testing.T) {
	m := newTestItems(Config[string, value]{})

	assert.NotPanics(t, func() {
		m.ClickHandler(1).Fire()
	})
	assert.True(t, m.Selected().Has("b"))
}

// TestItems_Blur verifies blur clears focus and keeps cursor and selection.
func TestItems_Blur(t *testing.T) {
	m := newTestItems(Config[string, value]{})
	m.cursor = 2
	m.hasFocus = true
	m.selection = NewSelection("a")

	m.Render().Children[0].Props.OnBlur.Fire()

	assert.False(t, m.HasFocus())
	assert.Equal(t, 2, m.Cursor())
	assert.True(t, m.Selected().Equal(NewSelection("a")))
}

// TestItems_Focus verifies focus moves the cursor and sets the focus flag.
func TestItems_Focus(t *testing.T) {
	m := newTestItems(Config[string, value]{})

	m.Render().Children[0].Props.OnFocus.Fire()

	assert.Equal(t, 0, m.Cursor())
	assert.True(t, m.HasFocus())
}

// TestItems_Click verifies click toggles the entry key.
func TestItems_Click(t *testing.T) {
	m := newTestItems(Config[string, value]{})

	m.Render().Children[1].Props.OnClick.Fire()

	assert.True(t, m.Selected().Equal(NewSelection("b")))
}

// TestItems_ClickSequence runs the toggle scenario end to end.
func TestItems_ClickSequence(t *testing.T) {
	var calls []Selection[string]
	m := newTestItems(Config[string, value]{
		OnSelectionChange: func(s Selection[string]) { calls = append(calls, s) },
	})

	m.ClickHandler(1).Fire()
	require.Len(t, calls, 1)
	assert.True(t, calls[0].Equal(NewSelection("b")))

	m.ClickHandler(1).Fire()
	require.Len(t, calls, 2)
	assert.True(t, calls[1].Equal(NewSelection[string]()))

	m.ClickHandler(2).Fire()
	require.Len(t, calls, 3)
	assert.True(t, calls[2].Equal(NewSelection("c")))
	assert.True(t, m.Selected().Equal(NewSelection("c")))
}

// TestItems_PublishedSelectionIsNotMutated verifies toggles never modify a published set.
func TestItems_PublishedSelectionIsNotMutated(t *testing.T) {
	var calls []Selection[string]
	m := newTestItems(Config[string, value]{
		OnSelectionChange: func(s Selection[string]) { calls = append(calls, s) },
	})

	m.ClickHandler(0).Fire()
	m.ClickHandler(1).Fire()

	require.Len(t, calls, 2)
	assert.True(t, calls[0].Equal(NewSelection("a")))
	assert.True(t, calls[1].Equal(NewSelection("a", "b")))
}

// TestItems_MemoizesClickHandlers verifies click handler identity.
func TestItems_MemoizesClickHandlers(t *testing.T) {
	m := newTestItems(Config[string, value]{})

	assert.NotSame(t, m.ClickHandler(0), m.ClickHandler(1))
	assert.Same(t, m.ClickHandler(0), m.ClickHandler(0))
}

// TestItems_MemoizesFocusHandlers verifies focus handler identity.
func TestItems_MemoizesFocusHandlers(t *testing.T) {
	m := newTestItems(Config[string, value]{})

	assert.NotSame(t, m.FocusHandler(0), m.FocusHandler(1))
	assert.Same(t, m.FocusHandler(0), m.FocusHandler(0))
}

// TestItems_HandlersStableAcrossRenders verifies re-rendering reuses the cached handlers.
func TestItems_HandlersStableAcrossRenders(t *testing.T) {
	m := newTestItems(Config[string, value]{})

	first := m.Render()
	m.ClickHandler(0).Fire()
	m.FocusHandler(2).Fire()
	second := m.Render()

	for i := range first.Children {
		assert.Same(t, first.Children[i].Props.OnClick, second.Children[i].Props.OnClick)
		assert.Same(t, first.Children[i].Props.OnFocus, second.Children[i].Props.OnFocus)
		assert.Same(t, first.Children[i].Props.OnBlur, second.Children[i].Props.OnBlur)
	}
	assert.Equal(t, 3, m.clickHandlers.len())
	assert.Equal(t, 3, m.focusHandlers.len())
}

// TestItems_Update verifies routing of Bubble Tea messages.
func TestItems_Update(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(m *Items[string, value])
		msgs         []tea.Msg
		wantCursor   int
		wantFocus    bool
		wantSelected []string
	}{
		{
			name:       "item focus message",
			msgs:       []tea.Msg{ItemFocusMsg{Index: 2}},
			wantCursor: 2,
			wantFocus:  true,
		},
		{
			name:       "item focus out of range is ignored",
			msgs:       []tea.Msg{ItemFocusMsg{Index: 9}},
			wantCursor: -1,
		},
		{
			name:       "item blur message",
			msgs:       []tea.Msg{ItemFocusMsg{Index: 1}, ItemBlurMsg{Index: 0}},
			wantCursor: 1,
		},
		{
			name:         "item click message",
			msgs:         []tea.Msg{ItemClickMsg{Index: 0}},
			wantCursor:   -1,
			wantSelected: []string{"a"},
		},
		{
			name:         "toggle key clicks focused item",
			msgs:         []tea.Msg{ItemFocusMsg{Index: 1}, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}},
			wantCursor:   1,
			wantFocus:    true,
			wantSelected: []string{"b"},
		},
		{
			name:         "enter clicks focused item",
			msgs:         []tea.Msg{ItemFocusMsg{Index: 2}, tea.KeyMsg{Type: tea.KeyEnter}},
			wantCursor:   2,
			wantFocus:    true,
			wantSelected: []string{"c"},
		},
		{
			name:       "toggle key without focus is ignored",
			msgs:       []tea.Msg{tea.KeyMsg{Type: tea.KeyEnter}},
			wantCursor: -1,
		},
		{
			name:       "esc blurs",
			msgs:       []tea.Msg{ItemFocusMsg{Index: 0}, tea.KeyMsg{Type: tea.KeyEscape}},
			wantCursor: 0,
		},
		{
			name:       "terminal blur",
			msgs:       []tea.Msg{ItemFocusMsg{Index: 0}, tea.BlurMsg{}},
			wantCursor: 0,
		},
		{
			name:       "terminal focus restores cursor",
			msgs:       []tea.Msg{ItemFocusMsg{Index: 1}, tea.BlurMsg{}, tea.FocusMsg{}},
			wantCursor: 1,
			wantFocus:  true,
		},
		{
			name:       "terminal focus without cursor",
			msgs:       []tea.Msg{tea.FocusMsg{}},
			wantCursor: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestItems(Config[string, value]{})
			for _, msg := range tt.msgs {
				updated, cmd := m.Update(msg)
				assert.Nil(t, cmd)
				m = updated.(*Items[string, value])
			}

			assert.Equal(t, tt.wantCursor, m.Cursor())
			assert.Equal(t, tt.wantFocus, m.HasFocus())
			assert.True(t, m.Selected().Equal(NewSelection(tt.wantSelected...)))
		})
	}
}

// TestItems_MousePress verifies a press focuses and clicks the row under the pointer.
func TestItems_MousePress(t *testing.T) {
	var events []string
	m := newTestItems(Config[string, value]{
		OnSelectionChange: func(s Selection[string]) { events = append(events, "select") },
	})
	m.SetOffset(2)

	press := func(y int) {
		m.Update(tea.MouseMsg{X: 1, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	}

	press(3) // row 1
	assert.Equal(t, 1, m.Cursor())
	assert.True(t, m.HasFocus())
	assert.True(t, m.Selected().Equal(NewSelection("b")))

	press(4) // row 2
	assert.Equal(t, 2, m.Cursor())
	assert.True(t, m.Selected().Equal(NewSelection("b", "c")))

	press(4) // same row again toggles off
	assert.True(t, m.Selected().Equal(NewSelection("b")))

	press(0) // above the list
	press(9) // below the list
	assert.Equal(t, 2, m.Cursor())
	assert.Len(t, events, 3)

	m.Update(tea.MouseMsg{X: 1, Y: 2, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	assert.Equal(t, 2, m.Cursor())
}

// TestItems_MousePressBlursPreviousChild verifies the blur-then-focus order of a press.
func TestItems_MousePressBlursPreviousChild(t *testing.T) {
	m := newTestItems(Config[string, value]{})
	m.FocusHandler(0).Fire()

	var focusDuringClick bool
	m.onSelectionChange = func(Selection[string]) { focusDuringClick = m.HasFocus() }

	// Wrap the blur handler to observe the transient state.
	var sawBlur bool
	blur := m.blurHandler.fn
	m.blurHandler.fn = func(i int) {
		blur(i)
		sawBlur = !m.HasFocus()
	}

	m.Update(tea.MouseMsg{Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})

	assert.True(t, sawBlur)
	assert.True(t, focusDuringClick)
	assert.Equal(t, 1, m.Cursor())
}

// TestItems_IndexAtLineMultiline verifies hit-testing with multi-line children.
func TestItems_IndexAtLineMultiline(t *testing.T) {
	twoLines := Composite("card", func(p ItemProps[value]) Element {
		return Element{Type: "div", Content: p.Item.id + "\n" + p.Item.val}
	})
	m := newTestItems(Config[string, value]{Renderer: twoLines})

	tests := map[int]int{-1: -1, 0: 0, 1: 0, 2: 1, 3: 1, 4: 2, 5: 2, 6: -1}
	for y, want := range tests {
		assert.Equal(t, want, m.IndexAtLine(y), "line %d", y)
	}
}

// TestItems_View verifies the children are rendered line by line.
func TestItems_View(t *testing.T) {
	m := newTestItems(Config[string, value]{Renderer: Tag[value]("span")})

	assert.Equal(t, "10\n20\n30", m.View())
}

// TestItems_SelectedEntries verifies selected entries keep display order.
func TestItems_SelectedEntries(t *testing.T) {
	m := newTestItems(Config[string, value]{})
	m.ClickHandler(2).Fire()
	m.ClickHandler(0).Fire()

	got := m.SelectedEntries()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Key)
	assert.Equal(t, "c", got[1].Key)
}

// TestItems_StaleClickHandlerAfterShrink verifies a cached handler outliving its entry is harmless.
func TestItems_StaleClickHandlerAfterShrink(t *testing.T) {
	calls := 0
	m := newTestItems(Config[string, value]{OnSelectionChange: func(Selection[string]) { calls++ }})
	stale := m.Render().Children[2].Props.OnClick

	m.SetItems(testEntries()[:1])

	assert.NotPanics(t, stale.Fire)
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, m.Selected().Len())
	assert.Same(t, stale, m.ClickHandler(2))
}
