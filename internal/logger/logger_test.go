package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"remediation-portal/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogger(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := logger.Default()
	logger.SetLogger(logger.New(&buf, level))
	t.Cleanup(func() { logger.SetLogger(previous) })
	return &buf
}

func TestLogger_Info(t *testing.T) {
	buf := captureLogger(t, slog.LevelInfo)

	logger.Info("article submitted",
		slog.String("status", "PENDING_REVIEW"),
		slog.Int("read_time", 4),
	)

	output := buf.String()
	assert.Contains(t, output, "article submitted")
	assert.Contains(t, output, "PENDING_REVIEW")
	assert.Contains(t, output, "read_time")
}

func TestLogger_LevelFiltering(t *testing.T) {
	buf := captureLogger(t, slog.LevelError)

	logger.Info("hidden")
	logger.Debug("hidden too")
	logger.Error("shown", slog.String("error", "boom"))

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "shown")
	assert.Contains(t, output, "boom")
}

func TestLogger_WithRequestIDAndArticleID(t *testing.T) {
	buf := captureLogger(t, slog.LevelInfo)

	logger.WithRequestID("req-123").Info("handling request")
	logger.WithArticleID("cjld2cjxh0000qzrmn831i7rn").Info("transition")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &first))
	require.NoError(t, json.Unmarshal(lines[1], &second))
	assert.Equal(t, "req-123", first["request_id"])
	assert.Equal(t, "cjld2cjxh0000qzrmn831i7rn", second["article_id"])
}

func TestLogger_WithFields(t *testing.T) {
	buf := captureLogger(t, slog.LevelInfo)

	logger.WithFields(
		slog.String("request_id", "req-1"),
		slog.String("guard", "title"),
	).Warn("submission rejected")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "title", entry["guard"])
}

func TestFromContext(t *testing.T) {
	buf := captureLogger(t, slog.LevelInfo)

	ctx := logger.ContextWithRequestID(context.Background(), "req-ctx")
	assert.Equal(t, "req-ctx", logger.RequestIDFromContext(ctx))
	assert.Empty(t, logger.RequestIDFromContext(context.Background()))

	logger.FromContext(ctx).Info("tagged")
	logger.FromContext(context.Background()).Info("untagged")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), `"request_id":"req-ctx"`)
	assert.NotContains(t, string(lines[1]), "request_id")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for raw, want := range tests {
		assert.Equal(t, want, logger.ParseLevel(raw), raw)
	}
}
