package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/gnames/gnflora/pkg/config"
	"github.com/gnames/gnflora/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		msg   string
		level string
		res   slog.Level
	}{
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning alias", "warning", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"case-insensitive", "DEBUG", slog.LevelDebug},
		{"unknown defaults to info", "verbose", slog.LevelInfo},
		{"empty defaults to info", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.res, logger.ParseLevel(tt.level), tt.msg)
	}
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	l := logger.New(&config.LoggingConfig{Level: "debug", Format: "text"})
	require.NotNil(t, l)
	assert.True(t, l.Enabled(ctx, slog.LevelDebug))

	l = logger.New(&config.LoggingConfig{Level: "error", Format: "json"})
	require.NotNil(t, l)
	assert.False(t, l.Enabled(ctx, slog.LevelInfo))
	assert.True(t, l.Enabled(ctx, slog.LevelError))
}
