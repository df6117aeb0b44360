package logger

import (
	"strings"
	"time"

	"github.com/Laplace825/maxlog/core"
	"github.com/Laplace825/maxlog/handler"
)

// Logger is the main logging interface (immutable)
type Logger struct {
	handler       handler.Handler
	level         core.Level
	includeCaller bool
	callerSkip    int
	clock         core.Clock
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler       handler.Handler
	level         core.Level
	includeCaller bool
	callerSkip    int
	clock         core.Clock
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:         core.InfoLevel, // Default threshold
		includeCaller: true,
		clock:         time.Now,
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the threshold. Calls below it are discarded.
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithCaller enables or disables call-site capture (default: enabled).
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// WithCallerSkip adds n frames to the call-site lookup, for wrappers that
// call the logger on behalf of their own callers.
func (b *Builder) WithCallerSkip(n int) *Builder {
	b.callerSkip = n
	return b
}

// WithClock replaces the timestamp source (default: time.Now).
func (b *Builder) WithClock(c core.Clock) *Builder {
	if c == nil {
		c = time.Now
	}
	b.clock = c
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return &Logger{
		handler:       b.handler,
		level:         b.level,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
		clock:         b.clock,
	}
}

// Level returns the threshold of the logger.
func (l *Logger) Level() core.Level {
	return l.level
}

// Handler returns the sink the logger writes to.
func (l *Logger) Handler() handler.Handler {
	return l.handler
}

// Enabled reports whether a call at level would be emitted.
func (l *Logger) Enabled(level core.Level) bool {
	return level >= l.level
}

// Log emits tmpl rendered with args at level.
//
// A call below the threshold returns immediately, without validating the
// template. A call at or above it panics with a *core.TemplateError when
// tmpl is malformed or does not match len(args). Nothing is written in that
// case.
func (l *Logger) Log(level core.Level, tmpl string, args ...any) {
	if level < l.level {
		return
	}
	l.log(level, tmpl, args)
}

// LogAt is like Log but reports site as the call site instead of
// capturing one. It is meant for adapters that already know where a call
// came from.
func (l *Logger) LogAt(site core.CallerInfo, level core.Level, tmpl string, args ...any) {
	if level < l.level {
		return
	}
	l.write(level, site, mustLookup(tmpl, len(args)), args)
}

// Trace logs at TraceLevel
func (l *Logger) Trace(tmpl string, args ...any) {
	if core.TraceLevel < l.level {
		return
	}
	l.log(core.TraceLevel, tmpl, args)
}

// Info logs at InfoLevel
func (l *Logger) Info(tmpl string, args ...any) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, tmpl, args)
}

// Debug logs at DebugLevel
func (l *Logger) Debug(tmpl string, args ...any) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, tmpl, args)
}

// Warn logs at WarnLevel
func (l *Logger) Warn(tmpl string, args ...any) {
	if core.WarnLevel < l.level {
		return
	}
	l.log(core.WarnLevel, tmpl, args)
}

// Error logs at ErrorLevel
func (l *Logger) Error(tmpl string, args ...any) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(core.ErrorLevel, tmpl, args)
}

// Fatal logs at FatalLevel. It does not exit the process.
func (l *Logger) Fatal(tmpl string, args ...any) {
	if core.FatalLevel < l.level {
		return
	}
	l.log(core.FatalLevel, tmpl, args)
}

// Values logs named values as "name = value" pairs joined by ", ":
//
//	log.Values(logger.DebugLevel, "x", x, "y", y) // x = 1, y = 2
//
// Between one and three name/value pairs are accepted and every name must
// be a string. Anything else panics with a *core.TemplateError.
func (l *Logger) Values(level core.Level, pairs ...any) {
	if level < l.level {
		return
	}
	tmpl, args := valuesTemplate(pairs)
	l.log(level, tmpl, args)
}

// Close closes the underlying handler.
func (l *Logger) Close() error {
	if l.handler == nil {
		return nil
	}
	return l.handler.Close()
}

// log reports the caller of the exported entry point that invoked it:
// skip 0 is log, 1 the entry point, 2 the user's code. Every exported entry
// point must therefore call log directly.
func (l *Logger) log(level core.Level, tmpl string, args []any) {
	t := mustLookup(tmpl, len(args))

	var caller core.CallerInfo
	if l.includeCaller {
		caller = core.GetCaller(2 + l.callerSkip)
	}
	l.write(level, caller, t, args)
}

func (l *Logger) write(level core.Level, caller core.CallerInfo, t *core.Template, args []any) {
	if l.handler == nil {
		return
	}

	entry := core.GetEntry()
	entry.Time = l.clock()
	entry.Level = level
	entry.Caller = caller
	entry.Message = string(t.AppendTo(make([]byte, 0, len(t.String())+16*len(args)), args))

	// Sink failures never reach the caller.
	_ = l.handler.Handle(entry)

	core.PutEntry(entry)
}

// mustLookup compiles tmpl and checks it against nargs, panicking on any
// mismatch.
func mustLookup(tmpl string, nargs int) *core.Template {
	t, err := core.Lookup(tmpl)
	if err == nil {
		err = t.Check(nargs)
	}
	if err != nil {
		panic(err)
	}
	return t
}

// maxValuePairs bounds the number of pairs accepted by Values.
const maxValuePairs = 3

var braceEscaper = strings.NewReplacer("{", "{{", "}", "}}")

// valuesTemplate builds "a = {}, b = {}" for the given name/value pairs.
func valuesTemplate(pairs []any) (string, []any) {
	if len(pairs) == 0 || len(pairs)%2 != 0 || len(pairs) > 2*maxValuePairs {
		panic(&core.TemplateError{
			Template: "<values>",
			Args:     len(pairs),
			Reason:   "expected one to three name/value pairs",
		})
	}

	var sb strings.Builder
	args := make([]any, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic(&core.TemplateError{
				Template: "<values>",
				Args:     len(pairs),
				Reason:   "value names must be strings",
			})
		}
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(braceEscaper.Replace(name))
		sb.WriteString(" = {}")
		args = append(args, pairs[i+1])
	}
	return sb.String(), args
}
