package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := newLogger(&buf, "json", "info")

	l.Info("car added", "make", "Toyota")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "car added", entry["msg"])
	assert.Equal(t, "Toyota", entry["make"])
}

func TestNewLogger_TextRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := newLogger(&buf, "text", "warn")

	l.Info("hidden")
	l.Warn("shown", "k", "v")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.Contains(out, "msg=shown"), "expected warn line in output: %s", out)
	assert.Contains(t, out, "k=v")
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Default(), FromContext(context.Background()))

	var buf bytes.Buffer
	l := newLogger(&buf, "text", "info").With("request_id", "abc")
	ctx := WithLogger(context.Background(), l)

	FromContext(ctx).Info("hello")

	assert.Contains(t, buf.String(), "request_id=abc")
}
