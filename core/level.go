package core

// Level represents the severity level of a log entry
type Level int8

const (
	// TraceLevel for very fine-grained tracing
	TraceLevel Level = iota
	// InfoLevel for general informational messages (default threshold)
	InfoLevel
	// DebugLevel for debugging information. Ranks above InfoLevel.
	DebugLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for fatal conditions. Logging at this level never exits.
	FatalLevel
)

// levelNames is indexed by rank
var levelNames = [...]string{
	TraceLevel: "trace",
	InfoLevel:  "info",
	DebugLevel: "debug",
	WarnLevel:  "warn",
	ErrorLevel: "error",
	FatalLevel: "fatal",
}

// NumLevels is the number of defined levels.
const NumLevels = len(levelNames)

// String returns the name of the level
func (l Level) String() string {
	return LevelToName(l)
}

// Valid reports whether l is one of the six defined levels.
func (l Level) Valid() bool {
	return l >= TraceLevel && l <= FatalLevel
}

// LevelToName converts a level to its name. Values outside the defined
// range render as "unknown".
func LevelToName(l Level) string {
	if !l.Valid() {
		return "unknown"
	}
	return levelNames[l]
}

// ParseLevel converts a name to a Level. Matching is case-sensitive.
// "warning" is accepted as an alias of "warn". Any other text, including
// the empty string, yields InfoLevel.
func ParseLevel(s string) Level {
	for i, name := range levelNames {
		if s == name {
			return Level(i)
		}
	}
	if s == "warning" {
		return WarnLevel
	}
	return InfoLevel
}

// Levels returns all levels in ascending rank.
func Levels() []Level {
	return []Level{TraceLevel, InfoLevel, DebugLevel, WarnLevel, ErrorLevel, FatalLevel}
}
