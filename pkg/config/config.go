// Package config provides configuration management for gnflora.
//
// This package has no I/O dependencies. Validation of option inputs
// writes user-facing warnings via gn.Warn().
//
// Precedence (highest to lowest): CLI flags > env vars > gnflora.yaml >
// defaults. The default config from New() is always valid, and all
// mutations go through Option functions.
package config

// Config represents the complete gnflora configuration.
type Config struct {
	// Output controls how matched records are printed.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// Search controls "did you mean" suggestions.
	Search SearchConfig `mapstructure:"search" yaml:"search"`

	// Logging contains log level and format settings.
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// DataFile optionally overrides the bundled dataset with an
	// external CSV file. Runtime-only, set via the --data flag.
	DataFile string `mapstructure:"-" yaml:"-"`
}

// OutputConfig controls record presentation.
type OutputConfig struct {
	// Format is one of "compact", "csv", "tsv", "compact-json",
	// "pretty-json". Compact prints the symbolic formula blocks.
	Format string `mapstructure:"format" yaml:"format"`

	// WrapWidth is the column at which explanations wrap.
	WrapWidth int `mapstructure:"wrap_width" yaml:"wrap_width"`
}

// SearchConfig controls the not-found suggestion behavior.
type SearchConfig struct {
	// MaxSuggestDistance is the largest Levenshtein distance at which
	// a "did you mean" suggestion is still offered.
	MaxSuggestDistance int `mapstructure:"max_suggest_distance" yaml:"max_suggest_distance"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `mapstructure:"level" yaml:"level"`

	// Format is "text" or "json".
	Format string `mapstructure:"format" yaml:"format"`
}

// Defaults returns the built-in configuration values.
func Defaults() *Config {
	return &Config{
		Output: OutputConfig{
			Format:    "compact",
			WrapWidth: 70,
		},
		Search: SearchConfig{
			MaxSuggestDistance: 3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// New creates a Config with defaults, modified by the given options.
func New(opts ...Option) *Config {
	cfg := Defaults()
	cfg.Update(opts)
	return cfg
}

// Update applies a slice of Option functions to the Config. Invalid
// options are rejected with warnings and the config stays valid.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts persistent fields of the Config into Option
// functions. Used to round-trip file and env values through option
// validation.
func (c *Config) ToOptions() []Option {
	var res []Option
	if s := c.Output.Format; s != "" {
		res = append(res, OptOutputFormat(s))
	}
	if i := c.Output.WrapWidth; i > 0 {
		res = append(res, OptWrapWidth(i))
	}
	if i := c.Search.MaxSuggestDistance; i > 0 {
		res = append(res, OptMaxSuggestDistance(i))
	}
	if s := c.Logging.Level; s != "" {
		res = append(res, OptLogLevel(s))
	}
	if s := c.Logging.Format; s != "" {
		res = append(res, OptLogFormat(s))
	}
	return res
}
