package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":  zapcore.DebugLevel,
		"info":   zapcore.InfoLevel,
		" WARN ": zapcore.WarnLevel,
		"error":  zapcore.ErrorLevel,
		"dpanic": zapcore.DPanicLevel,
		"panic":  zapcore.PanicLevel,
		"fatal":  zapcore.FatalLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("unknown")
	require.False(t, ok)
}

// TestContextHelpers checks that loggers travel through the context with names and fields.
func TestContextHelpers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctx := ToContext(context.Background(), NewTo(zapcore.AddSync(&buf), zapcore.DebugLevel))
	ctx = WithName(ctx, "banner")
	ctx = WithKV(ctx, "mode", "debug")

	InfoKV(ctx, "Rendered", "bytes", 42)

	out := buf.String()
	require.Contains(t, out, "INFO")
	require.Contains(t, out, "banner")
	require.Contains(t, out, "Rendered")
	require.Contains(t, out, `"mode":"debug"`)
	require.Contains(t, out, `"bytes":42`)
}

// TestFromContextFallback ensures the global logger is returned when the context has none.
func TestFromContextFallback(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))
}

// TestWithLevel verifies the level option filters messages on a derived logger.
func TestWithLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := NewTo(zapcore.AddSync(&buf), zapcore.DebugLevel).
		WithOptions(WithLevel(zapcore.ErrorLevel))
	ctx := ToContext(context.Background(), l)

	Info(ctx, "hidden")
	Error(ctx, "shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}
