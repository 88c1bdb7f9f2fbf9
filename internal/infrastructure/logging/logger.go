package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"
)

// StructuredLogger writes structured log entries to the configured output
type StructuredLogger struct {
	config *LoggerConfig
	logger *log.Logger
}

// LogEntry represents one structured log line
type LogEntry struct {
	Timestamp   string   `json:"timestamp"`
	Level       LogLevel `json:"level"`
	Message     string   `json:"message"`
	RequestID   string   `json:"request_id,omitempty"`
	Service     string   `json:"service"`
	Version     string   `json:"version,omitempty"`
	Environment string   `json:"environment,omitempty"`
	Fields      Fields   `json:"fields,omitempty"`
}

// NewStructuredLogger creates a logger from the given configuration
func NewStructuredLogger(config *LoggerConfig) (*StructuredLogger, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger config: %w", err)
	}

	return &StructuredLogger{
		config: config,
		logger: log.New(config.Output, "", 0),
	}, nil
}

// shouldLog checks whether a message passes the configured level
func (sl *StructuredLogger) shouldLog(level LogLevel) bool {
	levels := map[LogLevel]int{
		LevelDebug: 0,
		LevelInfo:  1,
		LevelWarn:  2,
		LevelError: 3,
	}
	return levels[level] >= levels[sl.config.Level]
}

func (sl *StructuredLogger) log(ctx context.Context, level LogLevel, message string, fields Fields) {
	if !sl.shouldLog(level) {
		return
	}

	entry := sl.createLogEntry(ctx, level, message, fields)

	var output string
	switch sl.config.Format {
	case FormatText:
		output = sl.formatText(entry)
	default:
		output = sl.formatJSON(entry)
	}

	sl.logger.Println(output)
}

func (sl *StructuredLogger) createLogEntry(ctx context.Context, level LogLevel, message string, fields Fields) *LogEntry {
	entry := &LogEntry{
		Timestamp:   time.Now().Format(time.RFC3339),
		Level:       level,
		Message:     message,
		Service:     sl.config.Service,
		Version:     sl.config.Version,
		Environment: sl.config.Environment,
		RequestID:   GetRequestID(ctx),
		Fields:      fields,
	}

	if startTime := GetStartTime(ctx); !startTime.IsZero() {
		if entry.Fields == nil {
			entry.Fields = make(Fields)
		}
		entry.Fields[FieldDuration] = float64(time.Since(startTime).Nanoseconds()) / 1e6
	}

	return entry
}

func (sl *StructuredLogger) formatJSON(entry *LogEntry) string {
	jsonData, err := json.Marshal(entry)
	if err != nil {
		// Fall back to a plain line if marshalling fails
		return fmt.Sprintf("[%s] %s - %s", entry.Level, entry.RequestID, entry.Message)
	}
	return string(jsonData)
}

func (sl *StructuredLogger) formatText(entry *LogEntry) string {
	parts := []string{entry.Timestamp, fmt.Sprintf("[%s]", entry.Level)}

	if entry.RequestID != "" {
		parts = append(parts, fmt.Sprintf("req:%s", entry.RequestID))
	}
	parts = append(parts, entry.Message)

	result := strings.Join(parts, " ")

	if len(entry.Fields) > 0 {
		if fieldsJSON, err := json.Marshal(entry.Fields); err == nil {
			result += fmt.Sprintf(" fields=%s", string(fieldsJSON))
		}
	}

	return result
}

// Debug logs a debug message
func (sl *StructuredLogger) Debug(ctx context.Context, message string, fields Fields) {
	sl.log(ctx, LevelDebug, message, fields)
}

// Info logs an info message
func (sl *StructuredLogger) Info(ctx context.Context, message string, fields Fields) {
	sl.log(ctx, LevelInfo, message, fields)
}

// Warn logs a warning message
func (sl *StructuredLogger) Warn(ctx context.Context, message string, fields Fields) {
	sl.log(ctx, LevelWarn, message, fields)
}

// Error logs an error message
func (sl *StructuredLogger) Error(ctx context.Context, message string, fields Fields) {
	sl.log(ctx, LevelError, message, fields)
}

// WarnWithError logs a warning message with error details
func (sl *StructuredLogger) WarnWithError(ctx context.Context, message string, err error, fields Fields) {
	sl.log(ctx, LevelWarn, message, sl.enrichWithError(fields, err))
}

// ErrorWithError logs an error message with error details
func (sl *StructuredLogger) ErrorWithError(ctx context.Context, message string, err error, fields Fields) {
	sl.log(ctx, LevelError, message, sl.enrichWithError(fields, err))
}

// enrichWithError adds the error to the field map
func (sl *StructuredLogger) enrichWithError(fields Fields, err error) Fields {
	if err == nil {
		return fields
	}
	if fields == nil {
		fields = make(Fields)
	}
	fields[FieldError] = err.Error()
	return fields
}

// SetLevel changes the minimum logged level
func (sl *StructuredLogger) SetLevel(level LogLevel) {
	sl.config.Level = level
}

// GetLevel returns the current minimum logged level
func (sl *StructuredLogger) GetLevel() LogLevel {
	return sl.config.Level
}
