package logger

import (
	"github.com/Laplace825/maxlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel = core.TraceLevel
	InfoLevel  = core.InfoLevel
	DebugLevel = core.DebugLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
	FatalLevel = core.FatalLevel
)

// ParseLevel converts a name to a Level. Unknown names yield InfoLevel.
func ParseLevel(s string) Level {
	return core.ParseLevel(s)
}

// LevelToName converts a Level to its lowercase name.
func LevelToName(l Level) string {
	return core.LevelToName(l)
}
