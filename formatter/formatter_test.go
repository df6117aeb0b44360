package formatter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Laplace825/maxlog/core"
)

func testEntry(level core.Level, msg string) *core.Entry {
	return &core.Entry{
		Time:    time.Date(2026, 2, 18, 13, 4, 5, 0, time.UTC),
		Level:   level,
		Message: msg,
		Caller: core.CallerInfo{
			File:    "/path/to/file.go",
			Line:    123,
			Defined: true,
		},
	}
}

func TestTextFormatter_Line(t *testing.T) {
	f := NewTextFormatter(Config{Location: time.UTC})

	result, err := f.Format(testEntry(core.ErrorLevel, "x=1"))
	require.NoError(t, err)

	assert.Equal(t, "[ error ] 2026-02-18T13:04:05 * /path/to/file.go:123 -> x=1\n", string(result))
}

func TestTextFormatter_LevelTags(t *testing.T) {
	f := NewTextFormatter(Config{Location: time.UTC})

	tests := []struct {
		level core.Level
		tag   string
	}{
		{core.TraceLevel, "[ trace ] "},
		{core.InfoLevel, "[ info  ] "},
		{core.DebugLevel, "[ debug ] "},
		{core.WarnLevel, "[ warn  ] "},
		{core.ErrorLevel, "[ error ] "},
		{core.FatalLevel, "[ fatal ] "},
		{core.Level(42), "[unknown] "},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			out, err := f.Format(testEntry(tt.level, "m"))
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(out), tt.tag), "got %q", out)
		})
	}
}

func TestTextFormatter_ShortCaller(t *testing.T) {
	f := NewTextFormatter(Config{ShortCaller: true, Location: time.UTC})

	out, err := f.Format(testEntry(core.InfoLevel, "test"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "* file.go:123 -> ")
	assert.NotContains(t, string(out), "/path/to/")
}

func TestTextFormatter_UnknownCaller(t *testing.T) {
	f := NewTextFormatter(Config{Location: time.UTC})
	e := testEntry(core.InfoLevel, "test")
	e.Caller = core.CallerInfo{}

	out, err := f.Format(e)
	require.NoError(t, err)
	assert.Contains(t, string(out), "* ???:0 -> test")
}

func TestTextFormatter_LocalTime(t *testing.T) {
	f := NewTextFormatter(Config{})
	e := testEntry(core.InfoLevel, "test")
	e.Time = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

	out, err := f.Format(e)
	require.NoError(t, err)
	assert.Contains(t, string(out), e.Time.Local().Format(TimestampFormat))
}

func TestTextFormatter_BufferMatchesFormat(t *testing.T) {
	f := NewTextFormatter(Config{Location: time.UTC})
	e := testEntry(core.WarnLevel, "same")

	out, err := f.Format(e)
	require.NoError(t, err)

	var buf bytes.Buffer
	f.FormatEntry(e, &buf)
	assert.Equal(t, string(out), buf.String())
}

func TestColorFormatter(t *testing.T) {
	f := NewColorFormatter(NewTextFormatter(Config{Location: time.UTC}), Palette{})

	tests := []struct {
		level core.Level
		code  string
	}{
		{core.TraceLevel, "37"},
		{core.InfoLevel, "32"},
		{core.DebugLevel, "35"},
		{core.WarnLevel, "33"},
		{core.ErrorLevel, "31"},
		{core.FatalLevel, "31;1"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			out, err := f.Format(testEntry(tt.level, "colored"))
			require.NoError(t, err)

			s := string(out)
			assert.True(t, strings.HasPrefix(s, "\x1b["+tt.code+"m["), "got %q", s)
			assert.True(t, strings.HasSuffix(s, "colored\n"+Reset), "got %q", s)
		})
	}
}

func TestDefaultPalette_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for _, l := range core.Levels() {
		code := DefaultPalette[l]
		require.NotEmpty(t, code, "level %s has no color", l)
		assert.False(t, seen[code], "color %s reused", code)
		seen[code] = true
	}
}

type plainFormatter struct{}

func (plainFormatter) Format(e *core.Entry) ([]byte, error) {
	return []byte(e.Message + "\n"), nil
}

func TestColorFormatter_PlainInner(t *testing.T) {
	custom := DefaultPalette
	custom[core.InfoLevel] = "36"
	f := NewColorFormatter(plainFormatter{}, custom)

	out, err := f.Format(testEntry(core.InfoLevel, "hi"))
	require.NoError(t, err)
	assert.Equal(t, "\x1b[36mhi\n"+Reset, string(out))

	var buf bytes.Buffer
	f.FormatEntry(testEntry(core.InfoLevel, "hi"), &buf)
	assert.Equal(t, "\x1b[36mhi\n"+Reset, buf.String())
}

func BenchmarkTextFormatter(b *testing.B) {
	f := NewTextFormatter(Config{})
	entry := testEntry(core.InfoLevel, "test message")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(entry)
	}
}

func BenchmarkColorFormatter(b *testing.B) {
	f := NewColorFormatter(NewTextFormatter(Config{}), Palette{})
	entry := testEntry(core.ErrorLevel, "test message")
	var buf bytes.Buffer

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		f.FormatEntry(entry, &buf)
	}
}
