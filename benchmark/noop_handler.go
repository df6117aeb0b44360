package benchmark

import (
	"github.com/Laplace825/maxlog/core"
	"github.com/Laplace825/maxlog/handler"
)

// noopHandler receives entries and drops them. The logger owns the entry
// and recycles it after Handle returns.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
