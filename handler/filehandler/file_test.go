package filehandler

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Laplace825/maxlog/core"
	"github.com/Laplace825/maxlog/handler"
)

func newEntry(level core.Level, msg string) *core.Entry {
	return &core.Entry{
		Time:    time.Now(),
		Level:   level,
		Message: msg,
		Caller:  core.CallerInfo{File: "/src/app.go", Line: 7, Defined: true},
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	s := strings.TrimSuffix(string(data), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestFileHandler_AppendsPlainLines(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.log")

	h, err := NewFileHandler(FileConfig{Filename: filename})
	require.NoError(t, err)
	defer h.Close()

	require.True(t, h.Valid())
	require.NoError(t, h.Handle(newEntry(core.ErrorLevel, "x=1")))

	lines := readLines(t, filename)
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "[ error ] "), "got %q", lines[0])
	assert.True(t, strings.HasSuffix(lines[0], " * /src/app.go:7 -> x=1"), "got %q", lines[0])
	assert.NotContains(t, lines[0], "\x1b[")
}

func TestFileHandler_PreservesExistingContent(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "existing.log")
	require.NoError(t, os.WriteFile(filename, []byte("previous line\n"), 0644))

	h := Open(FileConfig{Filename: filename})
	require.NoError(t, h.Handle(newEntry(core.InfoLevel, "appended")))
	require.NoError(t, h.Close())

	lines := readLines(t, filename)
	require.Len(t, lines, 2)
	assert.Equal(t, "previous line", lines[0])
	assert.Contains(t, lines[1], "-> appended")
}

func TestFileHandler_InvalidPathIsInert(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "missing", "dir", "test.log")

	h, err := NewFileHandler(FileConfig{Filename: filename})
	require.Error(t, err)
	require.NotNil(t, h)

	assert.False(t, h.Valid())
	assert.Equal(t, filename, h.Path())
	assert.Error(t, h.Handle(newEntry(core.ErrorLevel, "dropped")))
	assert.Equal(t, uint64(1), h.Stats().Skipped[core.ErrorLevel])
	assert.NoError(t, h.Close())

	_, statErr := os.Stat(filename)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFileHandler_EmptyFilename(t *testing.T) {
	h := Open(FileConfig{})
	assert.False(t, h.Valid())
	assert.ErrorIs(t, h.Err(), errNoFilename)
}

func TestFileHandler_CreateDirs(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "nested", "logs", "app.log")

	h := Open(FileConfig{Filename: filename, CreateDirs: true})
	defer h.Close()

	require.True(t, h.Valid(), "err: %v", h.Err())
	require.NoError(t, h.Handle(newEntry(core.WarnLevel, "nested")))
	assert.Len(t, readLines(t, filename), 1)
}

func TestFileHandler_SetPath(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	h := Open(FileConfig{Filename: first})
	defer h.Close()

	require.NoError(t, h.Handle(newEntry(core.InfoLevel, "one")))
	require.NoError(t, h.SetPath(second))
	assert.Equal(t, second, h.Path())
	require.NoError(t, h.Handle(newEntry(core.InfoLevel, "two")))

	assert.Len(t, readLines(t, first), 1)
	lines := readLines(t, second)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "-> two")
}

func TestFileHandler_SetPathFailureThenRecover(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.log")

	h := Open(FileConfig{Filename: good})
	defer h.Close()

	assert.Error(t, h.SetPath(filepath.Join(dir, "nope", "bad.log")))
	assert.False(t, h.Valid())
	assert.Error(t, h.Handle(newEntry(core.InfoLevel, "skipped")))

	require.NoError(t, h.SetPath(good))
	require.NoError(t, h.Handle(newEntry(core.InfoLevel, "back")))

	lines := readLines(t, good)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "-> back")
}

func TestFileHandler_Close(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.log")
	h := Open(FileConfig{Filename: filename})

	require.NoError(t, h.Handle(newEntry(core.InfoLevel, "test")))
	require.NoError(t, h.Close())
	require.NoError(t, h.Close())

	assert.False(t, h.Valid())
	assert.ErrorIs(t, h.Handle(newEntry(core.InfoLevel, "late")), handler.ErrClosed)
	assert.Len(t, readLines(t, filename), 1)
}

func TestFileHandler_ConcurrentSetPath(t *testing.T) {
	dir := t.TempDir()
	paths := []string{filepath.Join(dir, "a.log"), filepath.Join(dir, "b.log")}
	h := Open(FileConfig{Filename: paths[0]})
	defer h.Close()

	const writers, perWriter = 4, 250
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_ = h.Handle(newEntry(core.InfoLevel, "line"))
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_ = h.SetPath(paths[i%2])
		}
	}()
	wg.Wait()

	total := 0
	for _, p := range paths {
		for _, line := range readLines(t, p) {
			assert.True(t, strings.HasSuffix(line, "-> line"), "torn line %q", line)
			total++
		}
	}
	assert.Equal(t, writers*perWriter, total)
	assert.Equal(t, uint64(writers*perWriter), h.Stats().TotalWritten())
}

func BenchmarkFileHandler(b *testing.B) {
	h := Open(FileConfig{Filename: filepath.Join(b.TempDir(), "bench.log")})
	defer h.Close()
	e := newEntry(core.InfoLevel, "benchmark message")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Handle(e)
	}
}
