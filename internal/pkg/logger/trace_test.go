package logger

import (
	"bytes"
	"context"
	log "log/slog"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHandler_AddsTraceID(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&ContextHandler{log.NewJSONHandler(&buf, nil)}).With("component", "test")

	ctx := context.WithValue(context.Background(), TraceIDKey, "trace-1")
	logger.InfoContext(ctx, "hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "trace-1", line[TraceIDKey])
	assert.Equal(t, "test", line["component"])
}

func TestContextHandler_NoTraceID(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&ContextHandler{log.NewJSONHandler(&buf, nil)})

	logger.InfoContext(context.Background(), "hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	_, ok := line[TraceIDKey]
	assert.False(t, ok)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, log.LevelWarn, parseLevel("warn"))
	assert.Equal(t, log.LevelInfo, parseLevel(""))
}
