package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{"warn", WarnLevel},
		{"warning", WarnLevel},
		{"Error", ErrorLevel},
		{"nonsense", InfoLevel},
		{"", InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestZapAdapter(t *testing.T) {
	t.Run("writes structured fields", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewZapLogger(LogConfig{Level: DebugLevel, Output: &buf})
		require.NoError(t, err)

		logger.Info("contact created", String("name", "Ann"), Int("phones", 2))

		out := buf.String()
		assert.Contains(t, out, "contact created")
		assert.Contains(t, out, "Ann")
		assert.Contains(t, out, "INFO")
	})

	t.Run("level filters lower severities", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewZapLogger(LogConfig{Level: WarnLevel, Output: &buf})
		require.NoError(t, err)

		logger.Info("quiet")
		logger.Warn("loud")

		assert.NotContains(t, buf.String(), "quiet")
		assert.Contains(t, buf.String(), "loud")
	})

	t.Run("error carries the cause", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewZapLogger(LogConfig{Level: DebugLevel, Output: &buf})
		require.NoError(t, err)

		logger.Error("import failed", errors.New("broken file"))

		assert.Contains(t, buf.String(), "broken file")
	})

	t.Run("WithFields attaches to every entry", func(t *testing.T) {
		var buf bytes.Buffer
		base, err := NewZapLogger(LogConfig{Level: DebugLevel, Output: &buf})
		require.NoError(t, err)

		logger := base.WithFields(String("component", "storage"))
		logger.Info("book exported")

		assert.Contains(t, buf.String(), "storage")
	})
}

func TestGlobalLogger(t *testing.T) {
	t.Run("defaults to nop", func(t *testing.T) {
		logger := GetGlobalLogger()
		require.NotNil(t, logger)
		// must not panic or print
		logger.Info("silent")
	})

	t.Run("set and restore", func(t *testing.T) {
		previous := GetGlobalLogger()
		defer SetGlobalLogger(previous)

		var buf bytes.Buffer
		logger, err := NewZapLogger(LogConfig{Level: DebugLevel, Output: &buf})
		require.NoError(t, err)
		SetGlobalLogger(logger)

		Info("routed through global")
		assert.Contains(t, buf.String(), "routed through global")
	})
}
