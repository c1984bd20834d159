package config

import (
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// knownFormats lists the accepted output formats.
var knownFormats = []string{
	"compact", "csv", "tsv", "compact-json", "pretty-json",
}

// OptOutputFormat sets the output format for matched records.
func OptOutputFormat(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if !slices.Contains(knownFormats, s) {
			gn.Warn(
				"Unknown output format <em>%s</em>, keeping <em>%s</em>",
				s, c.Output.Format,
			)
			return
		}
		c.Output.Format = s
	}
}

// OptWrapWidth sets the column at which explanations wrap.
func OptWrapWidth(i int) Option {
	return func(c *Config) {
		if i < 20 {
			gn.Warn("Wrap width %d is too narrow, keeping %d",
				i, c.Output.WrapWidth)
			return
		}
		c.Output.WrapWidth = i
	}
}

// OptMaxSuggestDistance sets the largest edit distance at which a
// "did you mean" suggestion is still offered.
func OptMaxSuggestDistance(i int) Option {
	return func(c *Config) {
		if i < 0 {
			gn.Warn("Suggestion distance cannot be negative, keeping %d",
				c.Search.MaxSuggestDistance)
			return
		}
		c.Search.MaxSuggestDistance = i
	}
}

// OptLogLevel sets the logging level.
func OptLogLevel(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		switch s {
		case "debug", "info", "warn", "error":
			c.Logging.Level = s
		default:
			gn.Warn("Unknown log level <em>%s</em>, keeping <em>%s</em>",
				s, c.Logging.Level)
		}
	}
}

// OptLogFormat sets the logging format.
func OptLogFormat(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		switch s {
		case "text", "json":
			c.Logging.Format = s
		default:
			gn.Warn("Unknown log format <em>%s</em>, keeping <em>%s</em>",
				s, c.Logging.Format)
		}
	}
}

// OptDataFile overrides the bundled dataset with an external CSV file.
func OptDataFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		c.DataFile = s
	}
}
