package logging

import (
	"fmt"
	"io"
	"os"
)

// LogFormat represents the log output format
type LogFormat string

const (
	FormatJSON LogFormat = "json"
	FormatText LogFormat = "text"
)

// LoggerConfig holds the logging system configuration
type LoggerConfig struct {
	Level       LogLevel
	Format      LogFormat
	Output      io.Writer
	Service     string
	Version     string
	Environment string
}

// DefaultConfig returns the default logger configuration
func DefaultConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:       LevelInfo,
		Format:      FormatJSON,
		Output:      os.Stdout,
		Service:     "crypto-spot-service",
		Version:     "1.0.0",
		Environment: "development",
	}
}

// Validate checks the configuration values
func (c *LoggerConfig) Validate() error {
	switch c.Level {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
	default:
		return fmt.Errorf("invalid log level: %s", c.Level)
	}

	switch c.Format {
	case FormatJSON, FormatText:
	default:
		return fmt.Errorf("invalid log format: %s", c.Format)
	}

	if c.Output == nil {
		return fmt.Errorf("log output must not be nil")
	}

	return nil
}

// ParseLevel converts a configuration string into a LogLevel, defaulting to info
func ParseLevel(level string) LogLevel {
	switch level {
	case "debug", "DEBUG":
		return LevelDebug
	case "warn", "WARN", "warning":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}
