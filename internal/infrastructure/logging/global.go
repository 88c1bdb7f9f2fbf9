package logging

import (
	"context"
	"sync"
)

var (
	globalLogger *StructuredLogger
	globalMu     sync.RWMutex
	globalOnce   sync.Once
)

// GetGlobalLogger returns the process-wide logger, creating a default one on
// first use.
func GetGlobalLogger() *StructuredLogger {
	globalOnce.Do(func() {
		globalMu.Lock()
		defer globalMu.Unlock()
		if globalLogger == nil {
			logger, err := NewStructuredLogger(DefaultConfig())
			if err != nil {
				panic("failed to create default logger: " + err.Error())
			}
			globalLogger = logger
		}
	})

	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// SetGlobalLogger replaces the process-wide logger (used at startup and in tests)
func SetGlobalLogger(logger *StructuredLogger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
	globalOnce = sync.Once{}
	globalOnce.Do(func() {})
}

// SetGlobalLogLevel changes the level of the process-wide logger
func SetGlobalLogLevel(level LogLevel) {
	GetGlobalLogger().SetLevel(level)
}

// Package-level convenience functions using the global logger.

// Debug logs a debug message using the global logger
func Debug(ctx context.Context, message string, fields Fields) {
	GetGlobalLogger().Debug(ctx, message, fields)
}

// Info logs an info message using the global logger
func Info(ctx context.Context, message string, fields Fields) {
	GetGlobalLogger().Info(ctx, message, fields)
}

// Warn logs a warning message using the global logger
func Warn(ctx context.Context, message string, fields Fields) {
	GetGlobalLogger().Warn(ctx, message, fields)
}

// Error logs an error message using the global logger
func Error(ctx context.Context, message string, fields Fields) {
	GetGlobalLogger().Error(ctx, message, fields)
}

// WarnWithError logs a warning message with error details using the global logger
func WarnWithError(ctx context.Context, message string, err error, fields Fields) {
	GetGlobalLogger().WarnWithError(ctx, message, err, fields)
}

// ErrorWithError logs an error message with error details using the global logger
func ErrorWithError(ctx context.Context, message string, err error, fields Fields) {
	GetGlobalLogger().ErrorWithError(ctx, message, err, fields)
}
