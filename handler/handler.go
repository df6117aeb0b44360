package handler

import (
	"errors"

	"github.com/Laplace825/maxlog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle writes a log entry. The entry must not be retained.
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that count their output.
type StatsProvider interface {
	Stats() Snapshot
}

// ErrClosed is returned by a handler that has been closed.
var ErrClosed = errors.New("maxlog: handler closed")
