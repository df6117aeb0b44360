package handler

import (
	"go.uber.org/multierr"

	"github.com/Laplace825/maxlog/core"
)

// MultiHandler sends each entry to several handlers, in order
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a new multi-handler. Nil handlers are ignored.
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	m := &MultiHandler{handlers: make([]Handler, 0, len(handlers))}
	for _, h := range handlers {
		if h != nil {
			m.handlers = append(m.handlers, h)
		}
	}
	return m
}

// Handlers returns the child handlers in dispatch order.
func (h *MultiHandler) Handlers() []Handler {
	return h.handlers
}

// Handle sends the entry to every child. A failing child does not stop
// the ones after it; all errors are combined.
func (h *MultiHandler) Handle(entry *core.Entry) error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Handle(entry))
	}
	return err
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Close())
	}
	return err
}
