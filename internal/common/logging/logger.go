// Package logging provides structured logging using zap
package logging

import (
	"fmt"
	"os"
)

// NopLogger discards all log output. It is the default before Init runs,
// so the REPL never has log lines interleaved with its prompt.
type NopLogger struct{}

// NewNopLogger creates a logger that discards everything
func NewNopLogger() Logger { return &NopLogger{} }

// Debug discards the message
func (n *NopLogger) Debug(string, ...Field) {}

// Info discards the message
func (n *NopLogger) Info(string, ...Field) {}

// Warn discards the message
func (n *NopLogger) Warn(string, ...Field) {}

// Error discards the message
func (n *NopLogger) Error(string, error, ...Field) {}

// WithFields returns the logger unchanged
func (n *NopLogger) WithFields(...Field) Logger { return n }

// Init initializes the global logger writing to the given file at the given
// level. The log always goes to a file: stdout is owned by the interactive
// prompt.
func Init(levelStr, logFile string) error {
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", logFile, err)
	}

	logger, err := NewZapLogger(LogConfig{
		Level:  ParseLevel(levelStr),
		Output: file,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	SetGlobalLogger(logger)

	logger.Info("logger initialized",
		String("level", ParseLevel(levelStr).String()),
		String("log_file", logFile),
	)
	return nil
}

// MustSync flushes any buffered log entries for zap loggers.
// This should be called before application exit.
func MustSync() {
	logger := GetGlobalLogger()
	if zapLogger, ok := logger.(*ZapAdapter); ok {
		_ = zapLogger.Sync()
	}
}
