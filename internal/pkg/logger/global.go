package logger

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	// globalLogger holds the singleton logger instance
	globalLogger *AppLogger
	// mu protects access to the global logger
	mu sync.RWMutex
)

// SetGlobalLogger sets the global logger instance
// This should be called once during application startup
func SetGlobalLogger(logger *AppLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance
// If no logger is set, it returns a default logger
func GetGlobalLogger() *AppLogger {
	mu.RLock()
	current := globalLogger
	mu.RUnlock()
	if current != nil {
		return current
	}

	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		// Default logger for safety when startup did not set one
		globalLogger, _ = NewAppLogger(Config{Level: "info"})
	}
	return globalLogger
}

// Info logs an info message using the global logger
func Info(msg string, fields Fields) {
	GetGlobalLogger().WithFields(fields).Info(msg)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields Fields) {
	GetGlobalLogger().WithFields(fields).Warn(msg)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields Fields) {
	GetGlobalLogger().WithFields(fields).Debug(msg)
}

// Error logs an error message using the global logger
func Error(msg string, err error, fields Fields) {
	GetGlobalLogger().WithFields(fields).WithError(err).Error(msg)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, err error, fields Fields) {
	GetGlobalLogger().WithFields(fields).WithError(err).Fatal(msg)
}

// WithFields returns an entry with additional fields using the global logger
func WithFields(fields Fields) *logrus.Entry {
	return GetGlobalLogger().WithFields(fields)
}
