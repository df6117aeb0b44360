package filehandler

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/multierr"

	"github.com/Laplace825/maxlog/core"
	"github.com/Laplace825/maxlog/formatter"
	"github.com/Laplace825/maxlog/handler"
)

// errNoFilename is returned when a handler is opened without a path.
var errNoFilename = errors.New("filename is required")

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Perm is the mode used when the file is created (default: 0644)
	Perm os.FileMode
	// CreateDirs creates missing parent directories (default: false)
	CreateDirs bool
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.Perm == 0 {
		cfg.Perm = 0644
	}
}

// FileHandler appends formatted entries to a file
type FileHandler struct {
	mu              sync.Mutex // protects every field below
	path            string
	file            *os.File
	err             error
	perm            os.FileMode
	createDirs      bool
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	syncBuf         bytes.Buffer
	stats           *handler.Stats
}

// Open creates a file handler and opens cfg.Filename in append mode. The
// returned handler is inert when the file could not be opened.
func Open(cfg FileConfig) *FileHandler {
	applyFileDefaults(&cfg)
	h := &FileHandler{
		perm:       cfg.Perm,
		createDirs: cfg.CreateDirs,
		formatter:  cfg.Formatter,
		stats:      handler.NewStats(),
	}
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	h.syncBuf.Grow(256)

	h.mu.Lock()
	h.openLocked(cfg.Filename)
	h.mu.Unlock()
	return h
}

// NewFileHandler is like Open but reports the open error. The handler is
// returned either way and can be revived with SetPath.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	h := Open(cfg)
	return h, h.Err()
}

// openLocked opens path, replacing any previous state. h.mu must be held.
func (h *FileHandler) openLocked(path string) {
	h.path = path
	h.file = nil
	h.err = nil

	if path == "" {
		h.err = errNoFilename
		return
	}

	if h.createDirs {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			h.err = fmt.Errorf("create log directory for %s: %w", path, err)
			return
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, h.perm)
	if err != nil {
		h.err = fmt.Errorf("open log file %s: %w", path, err)
		return
	}
	h.file = file
}

// closeLocked syncs and closes the current file. h.mu must be held.
func (h *FileHandler) closeLocked() error {
	if h.file == nil {
		return nil
	}
	file := h.file
	h.file = nil
	return multierr.Append(file.Sync(), file.Close())
}

// SetPath closes the current file and opens path in append mode. On
// failure the handler is inert until the next successful SetPath; the
// returned error is informational.
func (h *FileHandler) SetPath(path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	closeErr := h.closeLocked()
	h.openLocked(path)
	return multierr.Append(closeErr, h.err)
}

// Handle writes the entry as one line. Records are skipped while the
// handler is inert.
func (h *FileHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == nil {
		h.stats.IncrementSkipped(entry.Level)
		return h.err
	}

	var err error
	if h.bufferFormatter != nil {
		h.syncBuf.Reset()
		h.bufferFormatter.FormatEntry(entry, &h.syncBuf)
		_, err = h.file.Write(h.syncBuf.Bytes())
	} else {
		var data []byte
		if data, err = h.formatter.Format(entry); err == nil {
			_, err = h.file.Write(data)
		}
	}

	if err != nil {
		h.stats.IncrementSkipped(entry.Level)
		return err
	}
	h.stats.IncrementWritten(entry.Level)
	return nil
}

// Valid reports whether a file is open.
func (h *FileHandler) Valid() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.file != nil
}

// Err returns the reason the handler is inert, or nil.
func (h *FileHandler) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

// Path returns the path of the current (or last attempted) file.
func (h *FileHandler) Path() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.path
}

// Sync commits the file's contents to stable storage.
func (h *FileHandler) Sync() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.file == nil {
		return nil
	}
	return h.file.Sync()
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close syncs and closes the file. Further records are skipped until
// SetPath is called.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == nil {
		return nil
	}
	err := h.closeLocked()
	h.err = handler.ErrClosed
	return err
}
