// Package zaphandler lets zap loggers write maxlog lines. NewCore returns
// a zapcore.Core that turns each zap entry into a core.Entry and hands it
// to a handler.Handler, so a program that already logs through zap gets
// the same console colors and log file as the rest of maxlog.
//
//	log := zap.New(zaphandler.NewCore(h, zaphandler.LevelEnablerFor(core.InfoLevel)), zap.AddCaller())
//	log.Warn("cache miss", zap.String("key", "user:42"))
//
// Fields are rendered as " key=value" pairs after the message, sorted by
// key. zap's own Fatal and Panic behavior (exit, panic) still applies
// after the record is written.
package zaphandler

import (
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Laplace825/maxlog/core"
	"github.com/Laplace825/maxlog/handler"
)

// Core is a zapcore.Core backed by a maxlog handler
type Core struct {
	zapcore.LevelEnabler
	handler handler.Handler
	fields  []zapcore.Field
}

// NewCore creates a Core writing to h. A nil enab enables every level.
func NewCore(h handler.Handler, enab zapcore.LevelEnabler) *Core {
	if enab == nil {
		enab = zap.LevelEnablerFunc(func(zapcore.Level) bool { return true })
	}
	return &Core{LevelEnabler: enab, handler: h}
}

// LevelEnablerFor enables zap levels whose maxlog rank is at least min.
func LevelEnablerFor(min core.Level) zapcore.LevelEnabler {
	return zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return ZapLevel(l) >= min
	})
}

// ZapLevel converts a zapcore.Level to a core.Level.
func ZapLevel(l zapcore.Level) core.Level {
	switch {
	case l < zapcore.DebugLevel:
		return core.TraceLevel
	case l == zapcore.DebugLevel:
		return core.DebugLevel
	case l == zapcore.InfoLevel:
		return core.InfoLevel
	case l == zapcore.WarnLevel:
		return core.WarnLevel
	case l == zapcore.ErrorLevel:
		return core.ErrorLevel
	default:
		return core.FatalLevel
	}
}

// With returns a Core that adds fields to every entry.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &Core{LevelEnabler: c.LevelEnabler, handler: c.handler, fields: merged}
}

// Check adds the core to ce when the entry's level is enabled.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write converts the zap entry and passes it to the handler.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}
	if ent.LoggerName != "" {
		enc.AddString("logger", ent.LoggerName)
	}

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msg := make([]byte, 0, len(ent.Message)+16*len(keys))
	msg = append(msg, ent.Message...)
	for _, k := range keys {
		msg = append(msg, ' ')
		msg = append(msg, k...)
		msg = append(msg, '=')
		msg = core.AppendValue(msg, enc.Fields[k])
	}

	entry := core.GetEntry()
	entry.Time = ent.Time
	entry.Level = ZapLevel(ent.Level)
	entry.Message = string(msg)
	if ent.Caller.Defined {
		entry.Caller = core.CallerInfo{
			File:     ent.Caller.File,
			Line:     ent.Caller.Line,
			Function: ent.Caller.Function,
			Defined:  true,
		}
	}

	err := c.handler.Handle(entry)
	core.PutEntry(entry)
	return err
}

// Sync is a no-op: maxlog handlers write through on every record.
func (c *Core) Sync() error {
	return nil
}
