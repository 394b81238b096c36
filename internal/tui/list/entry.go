package listview

// Entry is a single (key, value) pair of the list. The key identifies the entry for
// selection purposes; the value is the caller's payload handed to the renderer.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Selection is a set of entry keys. A Selection is treated as an immutable value once it has
// been published to a listener: Toggle always returns a new set.
type Selection[K comparable] map[K]struct{}

// NewSelection creates a selection containing the given keys.
func NewSelection[K comparable](keys ...K) Selection[K] {
	s := make(Selection[K], len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether key is a member of the selection.
func (s Selection[K]) Has(key K) bool {
	_, ok := s[key]
	return ok
}

// Len returns the number of selected keys.
func (s Selection[K]) Len() int {
	return len(s)
}

// Toggle returns a copy of the selection with the membership of key flipped.
func (s Selection[K]) Toggle(key K) Selection[K] {
	next := make(Selection[K], len(s)+1)
	for k := range s {
		next[k] = struct{}{}
	}
	if _, ok := next[key]; ok {
		delete(next, key)
	} else {
		next[key] = struct{}{}
	}
	return next
}

// Equal reports whether both selections contain the same keys.
func (s Selection[K]) Equal(other Selection[K]) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if _, ok := other[k]; !ok {
			return false
		}
	}
	return true
}

// Keys returns the selected keys in no particular order.
func (s Selection[K]) Keys() []K {
	keys := make([]K, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	return keys
}

// Ordered returns the selected keys in the order the entries appear in items.
// Keys that are selected but no longer present in items are omitted.
func Ordered[K comparable, V any](s Selection[K], items []Entry[K, V]) []K {
	if len(s) == 0 {
		return nil
	}
	keys := make([]K, 0, len(s))
	for _, e := range items {
		if s.Has(e.Key) {
			keys = append(keys, e.Key)
		}
	}
	return keys
}
