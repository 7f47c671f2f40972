// Package log provides a structured logging interface for feature selection runs.
//
// The interface is slog-compatible in shape so that callers can plug in any
// backend. The default backend is zerolog (see zerolog.go); tests use
// TestLogger, which captures JSON lines in memory.
//
// Example usage:
//
//	logger := log.GetLogger().With(
//	    log.ComponentKey, "selection",
//	    log.RunIDKey, runID,
//	)
//	logger.Info("Round committed",
//	    log.RoundKey, 1,
//	    log.DroppedFeatureKey, "x3",
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Fields are passed as alternating key/value pairs. For Error, an error value
// given as the first field is attached as the error of the record (with its
// stack trace when it carries one).
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits log records at the given level.
	// Use it to skip building expensive fields.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a textual level ("debug", "info", "warn", "error")
// into a Level. Unknown names fall back to LevelInfo and report false.
func ParseLevel(level string) (Level, bool) {
	switch level {
	case "debug", "DEBUG":
		return LevelDebug, true
	case "info", "INFO":
		return LevelInfo, true
	case "warn", "WARN", "warning":
		return LevelWarn, true
	case "error", "ERROR":
		return LevelError, true
	default:
		return LevelInfo, false
	}
}
