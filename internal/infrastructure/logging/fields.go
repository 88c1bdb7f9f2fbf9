package logging

import (
	"context"
	"time"
)

// Fields carries structured log fields
type Fields map[string]interface{}

// LogLevel represents the available log levels
type LogLevel string

const (
	LevelDebug LogLevel = "DEBUG"
	LevelInfo  LogLevel = "INFO"
	LevelWarn  LogLevel = "WARN"
	LevelError LogLevel = "ERROR"
)

// Standard field names
const (
	FieldRequestID  = "request_id"
	FieldError      = "error"
	FieldDuration   = "duration_ms"
	FieldStatusCode = "status_code"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldSymbol     = "symbol"
	FieldPrice      = "price"
	FieldCacheKey   = "cache_key"
	FieldCacheHit   = "cache_hit"
)

// Context keys for request-scoped values
type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	StartTimeKey contextKey = "start_time"
)

// WithRequestID attaches a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithStartTime attaches a request start time to the context
func WithStartTime(ctx context.Context, startTime time.Time) context.Context {
	return context.WithValue(ctx, StartTimeKey, startTime)
}

// GetRequestID returns the request ID from the context, or empty
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// GetStartTime returns the request start time from the context, or zero
func GetStartTime(ctx context.Context) time.Time {
	if startTime, ok := ctx.Value(StartTimeKey).(time.Time); ok {
		return startTime
	}
	return time.Time{}
}
