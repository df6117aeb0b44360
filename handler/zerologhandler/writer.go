// Package zerologhandler lets zerolog loggers write maxlog lines. Writer
// implements zerolog.LevelWriter: it decodes each JSON event and hands a
// core.Entry to a handler.Handler.
//
//	log := zerolog.New(zerologhandler.NewWriter(h)).With().Timestamp().Caller().Logger()
//	log.Info().Str("peer", addr).Msg("connected")
//
// The message field becomes the message, the caller field becomes the
// call site, and the remaining fields follow as sorted " key=value" pairs.
package zerologhandler

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Laplace825/maxlog/core"
	"github.com/Laplace825/maxlog/handler"
)

// Writer is a zerolog.LevelWriter backed by a maxlog handler
type Writer struct {
	handler handler.Handler
}

var _ zerolog.LevelWriter = (*Writer)(nil)

// NewWriter creates a Writer that passes events to h.
func NewWriter(h handler.Handler) *Writer {
	return &Writer{handler: h}
}

// ZerologLevel converts a zerolog.Level to a core.Level. Events without a
// level are treated as info.
func ZerologLevel(l zerolog.Level) core.Level {
	switch l {
	case zerolog.TraceLevel:
		return core.TraceLevel
	case zerolog.DebugLevel:
		return core.DebugLevel
	case zerolog.WarnLevel:
		return core.WarnLevel
	case zerolog.ErrorLevel:
		return core.ErrorLevel
	case zerolog.FatalLevel, zerolog.PanicLevel:
		return core.FatalLevel
	default:
		return core.InfoLevel
	}
}

// Write handles an event whose level is only known from its JSON body.
func (w *Writer) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.NoLevel, p)
}

// WriteLevel decodes one event and passes it on. Malformed events and sink
// failures are dropped; the full length is always reported so zerolog does
// not print write errors.
func (w *Writer) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	dec := json.NewDecoder(bytes.NewReader(p))
	dec.UseNumber()
	var event map[string]interface{}
	if err := dec.Decode(&event); err != nil {
		return len(p), nil
	}

	if level == zerolog.NoLevel {
		if s, ok := event[zerolog.LevelFieldName].(string); ok {
			if parsed, err := zerolog.ParseLevel(s); err == nil {
				level = parsed
			}
		}
	}
	delete(event, zerolog.LevelFieldName)

	entry := core.GetEntry()
	entry.Level = ZerologLevel(level)
	entry.Time = eventTime(event[zerolog.TimestampFieldName])
	delete(event, zerolog.TimestampFieldName)

	if s, ok := event[zerolog.CallerFieldName].(string); ok {
		entry.Caller = parseCaller(s)
		delete(event, zerolog.CallerFieldName)
	}

	msg, _ := event[zerolog.MessageFieldName].(string)
	delete(event, zerolog.MessageFieldName)
	entry.Message = appendFields([]byte(msg), event)

	_ = w.handler.Handle(entry)
	core.PutEntry(entry)
	return len(p), nil
}

// Close closes the underlying handler.
func (w *Writer) Close() error {
	return w.handler.Close()
}

func eventTime(v interface{}) time.Time {
	switch ts := v.(type) {
	case string:
		if t, err := time.Parse(zerolog.TimeFieldFormat, ts); err == nil {
			return t
		}
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			return t
		}
	case json.Number:
		if n, err := ts.Int64(); err == nil {
			switch zerolog.TimeFieldFormat {
			case zerolog.TimeFormatUnixMs:
				return time.UnixMilli(n)
			case zerolog.TimeFormatUnixMicro:
				return time.UnixMicro(n)
			case zerolog.TimeFormatUnixNano:
				return time.Unix(0, n)
			default:
				return time.Unix(n, 0)
			}
		}
	}
	return time.Now()
}

// parseCaller splits zerolog's "file:line" caller field.
func parseCaller(s string) core.CallerInfo {
	i := strings.LastIndexByte(s, ':')
	if i < 0 {
		return core.CallerInfo{File: s, Defined: true}
	}
	line, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return core.CallerInfo{File: s, Defined: true}
	}
	return core.CallerInfo{File: s[:i], Line: line, Defined: true}
}

func appendFields(dst []byte, fields map[string]interface{}) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		dst = append(dst, ' ')
		dst = append(dst, k...)
		dst = append(dst, '=')
		switch v := fields[k].(type) {
		case map[string]interface{}, []interface{}:
			b, err := json.Marshal(v)
			if err != nil {
				dst = core.AppendValue(dst, v)
			} else {
				dst = append(dst, b...)
			}
		default:
			dst = core.AppendValue(dst, v)
		}
	}
	return string(dst)
}
