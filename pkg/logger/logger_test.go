package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogLoggerWithLevel(&buf, slog.LevelInfo)

	log.Debugf("hidden %d", 1)
	assert.Zero(t, buf.Len())

	log.Errorf(errors.New("boom"), "cart %s failed", "abc")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "cart abc failed", rec["msg"])
	assert.Equal(t, "boom", rec["error"])
}

func TestWithAddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogLoggerWithLevel(&buf, slog.LevelDebug).With("component", "cart")

	log.Infof("ok")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "cart", rec["component"])
}
