package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/Laplace825/maxlog/core"
	"github.com/Laplace825/maxlog/formatter"
	"github.com/Laplace825/maxlog/handler"
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter renders the line (default: TextFormatter)
	Formatter formatter.Formatter
	// NoColor disables the ANSI color wrapping (default: false)
	NoColor bool
	// Palette overrides the level colors (default: formatter.DefaultPalette)
	Palette formatter.Palette
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if !cfg.NoColor {
		cfg.Formatter = formatter.NewColorFormatter(cfg.Formatter, cfg.Palette)
	}
}

// ConsoleHandler writes colored lines to a writer
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	stats           *handler.Stats
	mu              sync.Mutex // protects syncBuf and writer
	syncBuf         bytes.Buffer
	closed          bool
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)
	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
	}
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	h.syncBuf.Grow(256)
	return h
}

// Handle formats the entry and writes it. Write failures are counted as
// skipped and returned.
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		h.stats.IncrementSkipped(entry.Level)
		return handler.ErrClosed
	}

	var err error
	if h.bufferFormatter != nil {
		h.syncBuf.Reset()
		h.bufferFormatter.FormatEntry(entry, &h.syncBuf)
		_, err = h.writer.Write(h.syncBuf.Bytes())
	} else {
		var data []byte
		if data, err = h.formatter.Format(entry); err == nil {
			_, err = h.writer.Write(data)
		}
	}

	if err != nil {
		h.stats.IncrementSkipped(entry.Level)
		return err
	}
	h.stats.IncrementWritten(entry.Level)
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close stops the handler. The writer is not closed; it usually is stdout.
func (h *ConsoleHandler) Close() error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	return nil
}
