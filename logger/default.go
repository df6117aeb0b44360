package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/Laplace825/maxlog/core"
	"github.com/Laplace825/maxlog/formatter"
	"github.com/Laplace825/maxlog/handler"
	"github.com/Laplace825/maxlog/handler/consolehandler"
	"github.com/Laplace825/maxlog/handler/filehandler"
)

const (
	// EnvLevel names the environment variable holding the threshold.
	EnvLevel = "MAXLOG_LEVEL"
	// EnvLogFile names the environment variable that overrides the path
	// of the default log file.
	EnvLogFile = "MAXLOG_FILE"
	// DefaultLogFile is the log file used when EnvLogFile is unset.
	DefaultLogFile = "./log.txt"
)

// Overridable in tests.
var (
	outStdout io.Writer = os.Stdout
	lookupEnv           = os.LookupEnv
)

var (
	thresholdOnce sync.Once
	threshold     core.Level

	builtinMu     sync.RWMutex // protects the three fields below
	builtinLogger *Logger
	builtinFile   *filehandler.FileHandler
	builtinPath   string // last path given to SetLogFile

	defaultLogger *Logger // set by SetDefault, nil means builtin
	defaultMu     sync.RWMutex
)

// Threshold returns the process-wide threshold. EnvLevel is read on the
// first call only; later changes to the environment have no effect. An
// unset or unrecognised value yields InfoLevel.
//
// The first call also prints a notice to stdout naming the resolved
// threshold, so an unrecognised value is reported as "info" rather than
// echoed back.
func Threshold() Level {
	thresholdOnce.Do(func() {
		threshold = thresholdFrom(lookupEnv)
		fmt.Fprintf(outStdout, "%s[%s is set to %s]%s\n",
			formatter.DefaultPalette.Escape(core.TraceLevel), EnvLevel, threshold, formatter.Reset)
	})
	return threshold
}

// thresholdFrom resolves EnvLevel through lookup.
func thresholdFrom(lookup func(string) (string, bool)) Level {
	v, ok := lookup(EnvLevel)
	if !ok {
		return core.InfoLevel
	}
	return core.ParseLevel(v)
}

// logFileFrom resolves EnvLogFile through lookup.
func logFileFrom(lookup func(string) (string, bool)) string {
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		return v
	}
	return DefaultLogFile
}

// builtin returns the logger that writes every line to the log file and
// then to a colored stdout console. It is created on first use and again
// after Close.
func builtin() *Logger {
	builtinMu.RLock()
	l := builtinLogger
	builtinMu.RUnlock()
	if l != nil {
		return l
	}

	builtinMu.Lock()
	defer builtinMu.Unlock()
	return builtinLocked()
}

// builtinLocked builds the built-in logger if needed. builtinMu must be
// held for writing.
func builtinLocked() *Logger {
	if builtinLogger != nil {
		return builtinLogger
	}

	path := builtinPath
	if path == "" {
		path = logFileFrom(lookupEnv)
	}
	builtinFile = filehandler.Open(filehandler.FileConfig{
		Filename: path,
	})
	console := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: outStdout,
	})
	builtinLogger = NewBuilder().
		WithHandler(handler.NewMultiHandler(builtinFile, console)).
		WithLevel(Threshold()).
		Build()
	return builtinLogger
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l != nil {
		return l
	}
	return builtin()
}

// SetDefault replaces the default logger. Passing nil restores the
// built-in one.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// SetLogFile points the file sink of the built-in logger at path. The
// previous file is closed. If path cannot be opened the file sink stays
// disabled until a later SetLogFile succeeds; console output continues
// either way. The open error is returned for callers that care, and
// ignoring it is safe. The path is kept if the built-in logger is later
// closed and rebuilt.
func SetLogFile(path string) error {
	builtinMu.Lock()
	defer builtinMu.Unlock()

	builtinLocked()
	builtinPath = path
	return builtinFile.SetPath(path)
}

// LogFile returns the current path of the built-in file sink and whether
// it is open. Like any other use of the built-in logger, calling it
// creates that logger and so opens (creating if needed) the log file.
func LogFile() (string, bool) {
	builtinMu.Lock()
	defer builtinMu.Unlock()

	builtinLocked()
	return builtinFile.Path(), builtinFile.Valid()
}

// Close closes the default logger's handler. When that is the built-in
// logger it is discarded, and the next package-level call builds a fresh
// one with both sinks, reopening the log file in append mode.
func Close() error {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l != nil {
		return l.Close()
	}

	builtinMu.Lock()
	defer builtinMu.Unlock()
	if builtinLogger == nil {
		return nil
	}
	err := builtinLogger.Close()
	builtinLogger = nil
	builtinFile = nil
	return err
}

// Package-level convenience functions using the default logger. Each one
// calls Logger.log directly so that the reported call site is the caller
// of the package function.

// Trace logs at TraceLevel using the default logger
func Trace(tmpl string, args ...any) {
	if l := Default(); l.Enabled(core.TraceLevel) {
		l.log(core.TraceLevel, tmpl, args)
	}
}

// Info logs at InfoLevel using the default logger
func Info(tmpl string, args ...any) {
	if l := Default(); l.Enabled(core.InfoLevel) {
		l.log(core.InfoLevel, tmpl, args)
	}
}

// Debug logs at DebugLevel using the default logger
func Debug(tmpl string, args ...any) {
	if l := Default(); l.Enabled(core.DebugLevel) {
		l.log(core.DebugLevel, tmpl, args)
	}
}

// Warn logs at WarnLevel using the default logger
func Warn(tmpl string, args ...any) {
	if l := Default(); l.Enabled(core.WarnLevel) {
		l.log(core.WarnLevel, tmpl, args)
	}
}

// Error logs at ErrorLevel using the default logger
func Error(tmpl string, args ...any) {
	if l := Default(); l.Enabled(core.ErrorLevel) {
		l.log(core.ErrorLevel, tmpl, args)
	}
}

// Fatal logs at FatalLevel using the default logger. It does not exit.
func Fatal(tmpl string, args ...any) {
	if l := Default(); l.Enabled(core.FatalLevel) {
		l.log(core.FatalLevel, tmpl, args)
	}
}

// Log logs at level using the default logger
func Log(level Level, tmpl string, args ...any) {
	if l := Default(); l.Enabled(level) {
		l.log(level, tmpl, args)
	}
}

// Values logs named values using the default logger. See Logger.Values.
func Values(level Level, pairs ...any) {
	if l := Default(); l.Enabled(level) {
		tmpl, args := valuesTemplate(pairs)
		l.log(level, tmpl, args)
	}
}
