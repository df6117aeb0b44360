package formatter

import (
	"bytes"
	"strconv"
	"time"

	"github.com/Laplace825/maxlog/core"
)

// TextFormatter renders entries as one human-readable line each
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = TimestampFormat
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	return formatWith(entry, f.FormatEntry), nil
}

// levelTags holds each level name centered in five columns, odd padding
// on the right.
var levelTags = [...]string{
	core.TraceLevel: "[ trace ] ",
	core.InfoLevel:  "[ info  ] ",
	core.DebugLevel: "[ debug ] ",
	core.WarnLevel:  "[ warn  ] ",
	core.ErrorLevel: "[ error ] ",
	core.FatalLevel: "[ fatal ] ",
}

// FormatEntry writes the formatted entry into buf
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	if entry.Level.Valid() {
		buf.WriteString(levelTags[entry.Level])
	} else {
		buf.WriteString("[unknown] ")
	}

	buf.Write(entry.Time.In(f.Location).AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	buf.WriteString(" * ")
	if entry.Caller.Defined {
		if f.ShortCaller {
			buf.WriteString(entry.Caller.ShortFile())
		} else {
			buf.WriteString(entry.Caller.File)
		}
		buf.WriteByte(':')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Caller.Line), 10))
	} else {
		buf.WriteString("???:0")
	}

	buf.WriteString(" -> ")
	buf.WriteString(entry.Message)
	buf.WriteByte('\n')
}
