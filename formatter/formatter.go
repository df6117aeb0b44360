package formatter

import (
	"bytes"
	"sync"
	"time"

	"github.com/Laplace825/maxlog/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log entry into bytes
	Format(entry *core.Entry) ([]byte, error)
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatEntry formats a log entry into the given buffer.
	FormatEntry(entry *core.Entry, buf *bytes.Buffer)
}

// TimestampFormat is the layout of the record timestamp.
const TimestampFormat = "2006-01-02T15:04:05"

// Config holds common formatter configuration
type Config struct {
	// ShortCaller trims the call-site path to its base name
	ShortCaller bool
	// TimestampFormat specifies the time layout (empty for TimestampFormat)
	TimestampFormat string
	// Location is the time zone timestamps are rendered in (nil for time.Local)
	Location *time.Location
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// formatWith runs fill against a pooled buffer and returns a copy of the
// result.
func formatWith(entry *core.Entry, fill func(*core.Entry, *bytes.Buffer)) []byte {
	buf := getBuffer()
	fill(entry, buf)
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	putBuffer(buf)
	return result
}
