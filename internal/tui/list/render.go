package listview

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// RendererKind tags the two renderer variants.
type RendererKind int

const (
	// RendererTag renders the item's display value inside a named, styled element.
	RendererTag RendererKind = iota
	// RendererComposite delegates rendering to a caller-supplied function.
	RendererComposite
)

// RenderFunc renders one item from its props. The returned element may attach its own handlers
// to inner elements; the list always attaches the container handlers to the composite root.
type RenderFunc[V any] func(props ItemProps[V]) Element

// Renderer is either a tag name or a named composite render function.
type Renderer[V any] struct {
	kind RendererKind
	name string
	fn   RenderFunc[V]
}

// DefaultTag is the tag used when no renderer is configured.
const DefaultTag = "li"

// Tag returns a renderer that displays each item inside an element named tag.
func Tag[V any](tag string) Renderer[V] {
	return Renderer[V]{kind: RendererTag, name: tag}
}

// Composite returns a renderer that delegates to fn. The name becomes the type of the element
// the list produces for each child.
func Composite[V any](name string, fn RenderFunc[V]) Renderer[V] {
	return Renderer[V]{kind: RendererComposite, name: name, fn: fn}
}

// DefaultRenderer returns the minimal built-in renderer.
func DefaultRenderer[V any]() Renderer[V] {
	return Tag[V](DefaultTag)
}

// Kind returns the renderer variant.
func (r Renderer[V]) Kind() RendererKind {
	return r.kind
}

// Name returns the tag name or the composite name.
func (r Renderer[V]) Name() string {
	return r.name
}

// IsZero reports whether the renderer was never configured.
func (r Renderer[V]) IsZero() bool {
	return r.name == "" && r.fn == nil
}

// ItemProps are the props derived by the list for a single child.
type ItemProps[V any] struct {
	Item       V
	Render     Renderer[V]
	HasFocus   bool
	IsSelected bool
	OnBlur     *Handler
	OnFocus    *Handler
	OnClick    *Handler

	// Width is the column budget for the rendered content; 0 means unlimited.
	Width int
}

// Element is a rendered node. Tag renderers produce a leaf element whose Content is the item's
// display value; composite renderers produce an element named after the composite with the
// composite's own output as Body.
type Element struct {
	Type     string
	Content  string
	Body     *Element
	Focused  bool
	Selected bool

	OnBlur  *Handler
	OnFocus *Handler
	OnClick *Handler
}

// String renders the element for the terminal.
func (e Element) String() string {
	if e.Body != nil {
		return e.Body.String()
	}
	return renderTag(e.Type, e.Content, e.Focused, e.Selected)
}

// Child is one keyed member of a Fragment.
type Child[K comparable, V any] struct {
	Key   K
	Props ItemProps[V]
}

// Render runs the item wrapper for this child.
func (c Child[K, V]) Render() Element {
	return renderItem(c.Props)
}

// Fragment is the list's render output: the children without any enclosing element.
type Fragment[K comparable, V any] struct {
	Children []Child[K, V]
}

// Len returns the number of children.
func (f Fragment[K, V]) Len() int {
	return len(f.Children)
}

// renderItem adapts one child's props into an element. It keeps no state and hands the
// container handlers through unchanged.
func renderItem[V any](props ItemProps[V]) Element {
	switch props.Render.kind {
	case RendererComposite:
		body := props.Render.fn(props)
		if body.OnBlur == nil {
			body.OnBlur = props.OnBlur
		}
		if body.OnFocus == nil {
			body.OnFocus = props.OnFocus
		}
		if body.OnClick == nil {
			body.OnClick = props.OnClick
		}
		return Element{
			Type:     props.Render.name,
			Body:     &body,
			Focused:  props.HasFocus,
			Selected: props.IsSelected,
			OnBlur:   props.OnBlur,
			OnFocus:  props.OnFocus,
			OnClick:  props.OnClick,
		}
	default:
		return Element{
			Type:     props.Render.name,
			Content:  truncate(displayValue(props.Item), props.Width-markerWidth(props.Render.name)),
			Focused:  props.HasFocus,
			Selected: props.IsSelected,
			OnBlur:   props.OnBlur,
			OnFocus:  props.OnFocus,
			OnClick:  props.OnClick,
		}
	}
}

// displayValue returns the text shown for an item by tag renderers.
func displayValue(item any) string {
	switch v := item.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(item)
	}
}

func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
