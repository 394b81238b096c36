package listview

// Handler is an event callback bound to one child index. Handlers are handed out as pointers
// and the container caches them, so the same index always yields the same *Handler for the
// lifetime of the container. Comparing two handlers with == is therefore meaningful.
type Handler struct {
	index int
	fn    func(index int)
}

// Fire invokes the handler. Firing a nil handler is a no-op.
func (h *Handler) Fire() {
	if h == nil || h.fn == nil {
		return
	}
	h.fn(h.index)
}

// Index returns the child index the handler is bound to, or -1 for list-wide handlers.
func (h *Handler) Index() int {
	if h == nil {
		return -1
	}
	return h.index
}

// handlerCache lazily creates one handler per index and never evicts them.
type handlerCache struct {
	fn       func(index int)
	handlers map[int]*Handler
}

func newHandlerCache(fn func(index int)) handlerCache {
	return handlerCache{fn: fn, handlers: make(map[int]*Handler)}
}

func (c *handlerCache) get(index int) *Handler {
	if h, ok := c.handlers[index]; ok {
		return h
	}
	h := &Handler{index: index, fn: c.fn}
	c.handlers[index] = h
	return h
}

// len returns the number of cached handlers.
func (c *handlerCache) len() int {
	return len(c.handlers)
}
