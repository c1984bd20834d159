// Package logger creates slog loggers from gnflora configuration.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gnflora/pkg/config"
)

// New creates a new slog.Logger based on the provided configuration.
// It respects the logging level and format from the config.
// Invalid values default to Info level and Text format.
func New(cfg *config.LoggingConfig) *slog.Logger {
	level := ParseLevel(cfg.Level)

	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level: level,
	}

	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

// ParseLevel converts a string log level to slog.Level.
// Valid levels: "debug", "info", "warn", "error" (case-insensitive).
// Invalid levels default to Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
