// Package listview provides a keyed, multi-select list component for Bubble Tea TUI applications.
//
// The list renders an ordered collection of (key, value) entries through a caller-supplied
// renderer and owns the focus and selection state of its children. Key features:
//   - Focus tracking: a cursor (the child that last had focus) plus a list-wide focus flag
//   - Multi-selection keyed by entry identity, so it survives reordering of the collection
//   - Per-index click and focus handlers that are created once and keep their identity
//     across renders
//   - Tag renderers (styled by name) and composite renderers (arbitrary render functions)
//
// Events reach the children through Bubble Tea messages (mouse presses, key presses, terminal
// focus changes) or through the explicit ItemFocusMsg, ItemBlurMsg and ItemClickMsg messages
// for hosts that route their own input.
package listview
