package listview

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings the list reacts to. Moving focus between items is left to
// the host; the list only activates or releases the focused item.
type KeyMap struct {
	// Toggle clicks the focused item, toggling its selection.
	Toggle key.Binding
	// Blur releases focus from the list.
	Blur key.Binding
}

// DefaultKeyMap returns the default list bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave list"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Blur}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func (k KeyMap) isZero() bool {
	return len(k.Toggle.Keys()) == 0 && len(k.Blur.Keys()) == 0
}
