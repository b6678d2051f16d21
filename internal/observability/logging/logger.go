package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Supported output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// NewLogger creates a new structured logger with JSON output.
// The log level can be controlled via the LOG_LEVEL environment variable.
// Supported levels: debug, info, warn, error
// Default level: info
func NewLogger() *slog.Logger {
	return New(FormatJSON, os.Getenv("LOG_LEVEL"), os.Stdout)
}

// NewTextLogger creates a new structured logger with human-readable, colourised output.
// This is useful for local development and debugging.
func NewTextLogger() *slog.Logger {
	return New(FormatText, os.Getenv("LOG_LEVEL"), os.Stderr)
}

// New creates a logger writing to w in the given format at the given level.
// Unknown formats fall back to JSON and unknown levels to info.
func New(format, level string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)

	if format == FormatText {
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      lvl,
			AddSource:  lvl <= slog.LevelDebug,
			TimeFormat: time.Kitchen,
		}))
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: lvl,
		// Add source code location when debugging
		AddSource: lvl <= slog.LevelDebug,
	}))
}

// ParseLevel converts a level name to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithEntity returns a logger tagged with the kind and identifier of a domain entity.
func WithEntity(logger *slog.Logger, kind, id string) *slog.Logger {
	return logger.With(slog.String("entity", kind), slog.String("entity_id", id))
}

// WithFields returns a new logger with additional structured fields.
// Fields are provided as key-value pairs.
func WithFields(logger *slog.Logger, fields map[string]interface{}) *slog.Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return logger.With(args...)
}

// FromContext retrieves the logger from the context, or returns the default logger if not found.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

type contextKey string

const loggerContextKey contextKey = "logger"
