package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/rshade/selectlist/internal/itemsource"
	listview "github.com/rshade/selectlist/internal/tui/list"
)

// CardRendererName is the name of the built-in composite renderer.
const CardRendererName = "card"

// CardRenderer renders a record as a two-line card: a checkbox with the label, then the detail
// line (or the key when there is no detail).
func CardRenderer() listview.Renderer[itemsource.Record] {
	return listview.Composite(CardRendererName, renderCard)
}

func renderCard(p listview.ItemProps[itemsource.Record]) listview.Element {
	mark := "[ ]"
	if p.IsSelected {
		mark = "[x]"
	}
	pointer := " "
	if p.HasFocus {
		pointer = ">"
	}

	detail := p.Item.Detail
	if detail == "" {
		detail = p.Item.Key
	}

	title := fitWidth(fmt.Sprintf("%s %s %s", pointer, mark, p.Item.Label), p.Width)
	detail = fitWidth(detail, p.Width-CardStyle.GetPaddingLeft())
	if p.IsSelected {
		title = listview.SelectedItemStyle.Render(title)
	}
	body := strings.Join([]string{title, CardStyle.Render(DetailStyle.Render(detail))}, "\n")

	// Styling is already applied; the element itself stays unstyled.
	return listview.Element{Type: "div", Content: body}
}

// fitWidth truncates s to width columns so a card never wraps; width <= 0 means unlimited.
func fitWidth(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// ResolveRenderer maps a configured renderer name to a renderer. Unknown names are treated as
// tag names.
func ResolveRenderer(name string) listview.Renderer[itemsource.Record] {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		return listview.DefaultRenderer[itemsource.Record]()
	case CardRendererName:
		return CardRenderer()
	default:
		return listview.Tag[itemsource.Record](name)
	}
}
