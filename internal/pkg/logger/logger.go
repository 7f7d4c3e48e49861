package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/piresc/sessionledger/internal/pkg/models"
	"github.com/sirupsen/logrus"
)

// Fields is the structured field set attached to a log entry
type Fields = logrus.Fields

// AppLogger is our custom logger that supports stdout and file outputs
type AppLogger struct {
	*logrus.Logger
	service  string
	filePath string
	file     *os.File
}

// Config holds logger configuration
type Config struct {
	Level    string `json:"level" mapstructure:"level"`
	FilePath string `json:"file_path" mapstructure:"file_path"`
	Service  string `json:"service" mapstructure:"service"`
}

// NewAppLogger creates a new application logger
func NewAppLogger(config Config) (*AppLogger, error) {
	logger := logrus.New()

	// Set log level
	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Set JSON formatter for structured logging
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	logger.SetOutput(os.Stdout)

	appLogger := &AppLogger{
		Logger:  logger,
		service: config.Service,
	}

	// Setup file output if path is provided
	if config.FilePath != "" {
		if err := appLogger.setupFileOutput(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
	}

	return appLogger, nil
}

// NewAppLoggerWithWriter creates a logger that writes JSON lines to w
func NewAppLoggerWithWriter(w io.Writer, service string) *AppLogger {
	appLogger, _ := NewAppLogger(Config{Level: "debug", Service: service})
	appLogger.Logger.SetOutput(w)
	return appLogger
}

// InitAppLoggerFromConfig initializes the logger from the application config
func InitAppLoggerFromConfig(configs *models.Config) (*AppLogger, error) {
	return NewAppLogger(Config{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
		Service:  configs.App.Name,
	})
}

// setupFileOutput configures file output for the logger
func (al *AppLogger) setupFileOutput(filePath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	al.filePath = filePath
	al.file = file

	// Set output to both stdout and file
	al.Logger.SetOutput(io.MultiWriter(os.Stdout, file))

	return nil
}

// Close closes the log file
func (al *AppLogger) Close() error {
	if al.file != nil {
		return al.file.Close()
	}
	return nil
}

// GetFilePath returns the current log file path
func (al *AppLogger) GetFilePath() string {
	return al.filePath
}

// WithFields adds custom fields to log entry
func (al *AppLogger) WithFields(fields Fields) *logrus.Entry {
	// Always add service name
	if fields == nil {
		fields = Fields{}
	}
	if al.service != "" {
		fields["service"] = al.service
	}

	return al.Logger.WithFields(fields)
}

// WithError adds error field to log entry
func (al *AppLogger) WithError(err error) *logrus.Entry {
	return al.WithFields(nil).WithError(err)
}

// WithRequestContext adds request context fields
func (al *AppLogger) WithRequestContext(requestID, sessionID, method, path string) *logrus.Entry {
	return al.WithFields(Fields{
		"request_id": requestID,
		"session_id": sessionID,
		"method":     method,
		"path":       path,
	})
}

// LogHTTPRequest logs HTTP request with all relevant context
func (al *AppLogger) LogHTTPRequest(method, path, clientIP, sessionID, requestID string, statusCode int, latency time.Duration, err error) {
	entry := al.WithFields(Fields{
		"status":     statusCode,
		"latency":    latency.String(),
		"latency_ms": latency.Milliseconds(),
		"client_ip":  clientIP,
		"method":     method,
		"path":       path,
		"session_id": sessionID,
		"request_id": requestID,
	})
	if err != nil {
		entry = entry.WithError(err)
	}

	// Log with appropriate level based on status code
	switch {
	case statusCode >= 500:
		entry.Error("Server error")
	case statusCode >= 400:
		entry.Warn("Client error")
	default:
		entry.Info("Request processed")
	}
}
