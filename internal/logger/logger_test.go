package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" error ": slog.LevelError,
		"warn":    slog.LevelWarn,
		"":        slog.LevelWarn,
		"bogus":   slog.LevelWarn,
	}

	for raw, want := range tests {
		assert.Equal(t, want, ParseLevel(raw), raw)
	}
}

func TestNewJSONFormatWritesStructuredLines(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "info", Format: "json", Output: &buf})

	l.Info("token stored", "tier", "session")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "token stored", line["msg"])
	assert.Equal(t, "session", line["tier"])
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "warn", Output: &buf})

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestWithRequestIDTagsLogger(t *testing.T) {
	var buf bytes.Buffer
	l, id := WithRequestID(New(Options{Level: "debug", Format: "json", Output: &buf}))

	_, err := uuid.Parse(id)
	require.NoError(t, err)

	l.Debug("call")
	assert.Contains(t, buf.String(), id)
}
