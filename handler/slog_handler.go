package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/Laplace825/maxlog/core"
)

// SlogHandler is an adapter that implements slog.Handler using a maxlog Handler.
// Attributes are appended to the message as " key=value" pairs, since a
// maxlog line has no separate field section.
type SlogHandler struct {
	handler Handler
	level   core.Level
	attrs   string
	group   string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
func NewSlogHandler(h Handler, level core.Level) *SlogHandler {
	return &SlogHandler{
		handler: h,
		level:   level,
	}
}

// Enabled reports whether the handler handles records at the given level.
// slog levels are mapped onto maxlog ranks first, so slog's Debug passes an
// info threshold.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return SlogLevel(level) >= s.level
}

// Handle converts a slog.Record into a core.Entry and passes it to the wrapped handler.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	msg := make([]byte, 0, len(record.Message)+len(s.attrs)+64)
	msg = append(msg, record.Message...)
	msg = append(msg, s.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		msg = appendAttr(msg, s.group, a)
		return true
	})

	entry := core.GetEntry()
	entry.Time = record.Time
	if entry.Time.IsZero() {
		entry.Time = time.Now()
	}
	entry.Level = SlogLevel(record.Level)
	entry.Message = string(msg)
	entry.Caller = core.CallerFromPC(record.PC)

	err := s.handler.Handle(entry)
	core.PutEntry(entry)
	return err
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	buf := []byte(s.attrs)
	for _, a := range attrs {
		buf = appendAttr(buf, s.group, a)
	}
	return &SlogHandler{
		handler: s.handler,
		level:   s.level,
		attrs:   string(buf),
		group:   s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		handler: s.handler,
		level:   s.level,
		attrs:   s.attrs,
		group:   newGroup,
	}
}

// SlogLevel converts a slog.Level to a core.Level.
func SlogLevel(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError+4:
		return core.FatalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendAttr appends " key=value", prefixing the key with group. Group
// attrs are flattened into dotted keys.
func appendAttr(dst []byte, group string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			dst = appendAttr(dst, key, ga)
		}
		return dst
	}

	dst = append(dst, ' ')
	dst = append(dst, key...)
	dst = append(dst, '=')
	if a.Value.Kind() == slog.KindTime {
		return a.Value.Time().AppendFormat(dst, time.RFC3339)
	}
	return core.AppendValue(dst, a.Value.Any())
}
