package logger

import (
	"github.com/jaykakkad82/mypayments/internal/domain/port/core"
)

// NoopLogger discards all log output. Useful in tests.
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger creates a logger that does nothing
func NewNoopLogger() core.Logger {
	return &NoopLogger{}
}

// SetLevel sets the minimum log level
func (l *NoopLogger) SetLevel(level core.LogLevel) { l.level = level }

// GetLevel gets the current log level
func (l *NoopLogger) GetLevel() core.LogLevel { return l.level }

// Debug does nothing
func (l *NoopLogger) Debug(string, map[string]any) {}

// Info does nothing
func (l *NoopLogger) Info(string, map[string]any) {}

// Warn does nothing
func (l *NoopLogger) Warn(string, map[string]any) {}

// Error does nothing
func (l *NoopLogger) Error(string, map[string]any) {}

// Flush does nothing
func (l *NoopLogger) Flush() error { return nil }
