package handler_test

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Laplace825/maxlog/core"
	"github.com/Laplace825/maxlog/handler"
)

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want core.Level
	}{
		{slog.LevelDebug - 4, core.TraceLevel},
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelWarn, core.WarnLevel},
		{slog.LevelError, core.ErrorLevel},
		{slog.LevelError + 4, core.FatalLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, handler.SlogLevel(tt.in), "slog level %v", tt.in)
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	sh := handler.NewSlogHandler(&recorder{}, core.WarnLevel)
	ctx := context.Background()

	assert.False(t, sh.Enabled(ctx, slog.LevelDebug))
	assert.False(t, sh.Enabled(ctx, slog.LevelInfo))
	assert.True(t, sh.Enabled(ctx, slog.LevelWarn))
	assert.True(t, sh.Enabled(ctx, slog.LevelError))

	// debug outranks info in maxlog
	sh = handler.NewSlogHandler(&recorder{}, core.InfoLevel)
	assert.True(t, sh.Enabled(ctx, slog.LevelDebug))
	assert.False(t, sh.Enabled(ctx, slog.LevelDebug-4))
}

func TestSlogHandler_Handle(t *testing.T) {
	rec := &recorder{}
	logger := slog.New(handler.NewSlogHandler(rec, core.TraceLevel))

	_, file, line, _ := runtime.Caller(0)
	logger.Info("test message", "key", "value", "count", 42)

	require.Len(t, rec.entries, 1)
	e := rec.entries[0]
	assert.Equal(t, core.InfoLevel, e.Level)
	assert.Equal(t, "test message key=value count=42", e.Message)
	assert.False(t, e.Time.IsZero())
	require.True(t, e.Caller.Defined)
	assert.Equal(t, file, e.Caller.File)
	assert.Equal(t, line+1, e.Caller.Line)
}

func TestSlogHandler_WithAttrsAndGroups(t *testing.T) {
	rec := &recorder{}
	logger := slog.New(handler.NewSlogHandler(rec, core.TraceLevel)).
		With("service", "api").
		WithGroup("req")

	logger.Warn("slow", "ms", 250, slog.Group("user", "id", 7, "name", "alice"))

	require.Len(t, rec.entries, 1)
	msg := rec.entries[0].Message
	assert.True(t, strings.HasPrefix(msg, "slow service=api"), "got %q", msg)
	assert.Contains(t, msg, " req.ms=250")
	assert.Contains(t, msg, " req.user.id=7")
	assert.Contains(t, msg, " req.user.name=alice")
}

func TestSlogHandler_WithGroupEmpty(t *testing.T) {
	sh := handler.NewSlogHandler(&recorder{}, core.InfoLevel)
	assert.Same(t, sh, sh.WithGroup(""))
}
