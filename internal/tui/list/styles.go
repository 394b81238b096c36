package listview

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Styles used for tag renderers.
var (
	// ItemStyle is the base style of every tag element.
	ItemStyle = lipgloss.NewStyle() //nolint:gochecknoglobals // Shared lipgloss style.

	// FocusedItemStyle is applied to the child that currently has focus.
	FocusedItemStyle = lipgloss.NewStyle(). //nolint:gochecknoglobals // Shared lipgloss style.
				Bold(true).
				Underline(true)

	// SelectedItemStyle is applied to selected children.
	SelectedItemStyle = lipgloss.NewStyle(). //nolint:gochecknoglobals // Shared lipgloss style.
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))
)

// tagMarker returns the prefix drawn before the content of a tag element.
func tagMarker(tag string, selected bool) string {
	switch tag {
	case "li":
		return "• "
	case "option", "checkbox":
		if selected {
			return "[x] "
		}
		return "[ ] "
	default:
		return ""
	}
}

// markerWidth returns the display width of the marker drawn for tag.
func markerWidth(tag string) int {
	return runewidth.StringWidth(tagMarker(tag, false))
}

// renderTag renders a tag element with its marker and focus/selection styling.
func renderTag(tag, content string, focused, selected bool) string {
	style := ItemStyle
	if selected {
		style = style.Inherit(SelectedItemStyle)
	}
	if focused {
		style = style.Inherit(FocusedItemStyle)
	}
	return style.Render(tagMarker(tag, selected) + content)
}
