package config_test

import (
	"testing"

	"github.com/gnames/gnflora/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, "compact", cfg.Output.Format)
	assert.Equal(t, 70, cfg.Output.WrapWidth)
	assert.Equal(t, 3, cfg.Search.MaxSuggestDistance)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Empty(t, cfg.DataFile)
}

func TestOptions(t *testing.T) {
	cfg := config.New(
		config.OptOutputFormat("pretty-json"),
		config.OptWrapWidth(100),
		config.OptMaxSuggestDistance(5),
		config.OptLogLevel("debug"),
		config.OptLogFormat("json"),
		config.OptDataFile("flora.csv"),
	)

	assert.Equal(t, "pretty-json", cfg.Output.Format)
	assert.Equal(t, 100, cfg.Output.WrapWidth)
	assert.Equal(t, 5, cfg.Search.MaxSuggestDistance)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "flora.csv", cfg.DataFile)
}

// TestInvalidOptions verifies bad inputs are rejected with a warning
// and the config keeps its previous, valid values.
func TestInvalidOptions(t *testing.T) {
	cfg := config.New(
		config.OptOutputFormat("xml"),
		config.OptWrapWidth(5),
		config.OptMaxSuggestDistance(-1),
		config.OptLogLevel("verbose"),
		config.OptLogFormat("binary"),
	)

	assert.Equal(t, "compact", cfg.Output.Format)
	assert.Equal(t, 70, cfg.Output.WrapWidth)
	assert.Equal(t, 3, cfg.Search.MaxSuggestDistance)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestOptionNormalization(t *testing.T) {
	cfg := config.New(
		config.OptOutputFormat("  CSV "),
		config.OptLogLevel("DEBUG"),
		config.OptLogFormat(" Json"),
	)

	assert.Equal(t, "csv", cfg.Output.Format, "format is trimmed and lowered")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

// TestToOptions verifies a config round-trips through its options, so
// file and env values pass the same validation as flags.
func TestToOptions(t *testing.T) {
	src := config.New(
		config.OptOutputFormat("tsv"),
		config.OptWrapWidth(90),
		config.OptLogLevel("warn"),
	)

	dst := config.New(src.ToOptions()...)
	assert.Equal(t, src, dst)
}

func TestUpdate(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptOutputFormat("csv")})
	assert.Equal(t, "csv", cfg.Output.Format)
}
