package formatter

import (
	"bytes"

	"github.com/Laplace825/maxlog/core"
)

// Palette maps every level to an SGR parameter string such as "31;1".
type Palette [core.NumLevels]string

// DefaultPalette is the console color table.
var DefaultPalette = Palette{
	core.TraceLevel: "37",
	core.InfoLevel:  "32",
	core.DebugLevel: "35",
	core.WarnLevel:  "33",
	core.ErrorLevel: "31",
	core.FatalLevel: "31;1",
}

// Reset is the escape sequence that restores default attributes.
const Reset = "\x1b[0m"

// Escape returns the escape sequence that selects the color for level.
func (p *Palette) Escape(level core.Level) string {
	if !level.Valid() || p[level] == "" {
		return ""
	}
	return "\x1b[" + p[level] + "m"
}

// ColorFormatter wraps another formatter with ANSI color escapes
type ColorFormatter struct {
	inner    Formatter
	bufInner BufferFormatter
	escapes  [core.NumLevels]string
}

// NewColorFormatter wraps inner. A zero Palette selects DefaultPalette.
func NewColorFormatter(inner Formatter, p Palette) *ColorFormatter {
	if p == (Palette{}) {
		p = DefaultPalette
	}
	f := &ColorFormatter{inner: inner}
	f.bufInner, _ = inner.(BufferFormatter)
	for _, l := range core.Levels() {
		f.escapes[l] = p.Escape(l)
	}
	return f
}

// Format formats an entry with color escapes
func (f *ColorFormatter) Format(entry *core.Entry) ([]byte, error) {
	if f.bufInner != nil {
		return formatWith(entry, f.FormatEntry), nil
	}
	line, err := f.inner.Format(entry)
	if err != nil {
		return nil, err
	}
	esc := f.escape(entry.Level)
	out := make([]byte, 0, len(esc)+len(line)+len(Reset))
	out = append(out, esc...)
	out = append(out, line...)
	return append(out, Reset...), nil
}

// FormatEntry writes the colored entry into buf
func (f *ColorFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	buf.WriteString(f.escape(entry.Level))
	if f.bufInner != nil {
		f.bufInner.FormatEntry(entry, buf)
	} else if line, err := f.inner.Format(entry); err == nil {
		buf.Write(line)
	}
	buf.WriteString(Reset)
}

func (f *ColorFormatter) escape(level core.Level) string {
	if !level.Valid() {
		return ""
	}
	return f.escapes[level]
}
