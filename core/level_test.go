package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{TraceLevel, "trace"},
		{InfoLevel, "info"},
		{DebugLevel, "debug"},
		{WarnLevel, "warn"},
		{ErrorLevel, "error"},
		{FatalLevel, "fatal"},
		{Level(6), "unknown"},
		{Level(-1), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
			assert.Equal(t, tt.want, LevelToName(tt.level))
		})
	}
}

func TestLevel_RankOrder(t *testing.T) {
	levels := Levels()
	assert.Len(t, levels, NumLevels)
	assert.Equal(t, 6, NumLevels)
	for i := 1; i < len(levels); i++ {
		assert.Less(t, levels[i-1], levels[i])
	}
	// debug is deliberately more severe than info
	assert.True(t, InfoLevel < DebugLevel)
}

func TestParseLevel_RoundTrip(t *testing.T) {
	for _, l := range Levels() {
		assert.Equal(t, l, ParseLevel(LevelToName(l)), "round trip of %s", l)
	}
}

func TestParseLevel_Defaults(t *testing.T) {
	for _, s := range []string{"", "INFO", "Warn", "verbose", " error", "unknown", "fatal\n"} {
		assert.Equal(t, InfoLevel, ParseLevel(s), "ParseLevel(%q)", s)
	}
}

func TestParseLevel_WarningAlias(t *testing.T) {
	assert.Equal(t, WarnLevel, ParseLevel("warning"))
	assert.Equal(t, "warn", ParseLevel("warning").String())
}

func TestLevelToName_Injective(t *testing.T) {
	seen := make(map[string]Level)
	for _, l := range Levels() {
		name := LevelToName(l)
		_, dup := seen[name]
		assert.False(t, dup, "duplicate name %q", name)
		seen[name] = l
	}
}
