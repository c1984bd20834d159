// Package ioconfig provides I/O operations for loading configuration
// from files and environment variables. This is an impure package that
// handles file system operations.
package ioconfig

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gnflora/pkg/config"
	"github.com/spf13/viper"
)

// LoadResult contains the loaded configuration and metadata about the
// source it came from.
type LoadResult struct {
	Config *config.Config
	// SourcePath is the config file used, or empty for defaults.
	SourcePath string
	// Source is "file", "defaults", or "defaults+env".
	Source string
}

// Load reads configuration from a YAML file with environment variable
// overrides. If configPath is empty, the default location
// ~/.config/gnflora/gnflora.yaml is tried; a missing file is not an
// error, defaults apply.
//
// Precedence: env vars > config file > defaults. CLI flags are applied
// by the caller on top of the result.
func Load(configPath string) (*LoadResult, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix("GNFLORA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Defaults registered before reading so env vars resolve even
	// without a config file.
	defaults := config.Defaults()
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("output.wrap_width", defaults.Output.WrapWidth)
	v.SetDefault("search.max_suggest_distance", defaults.Search.MaxSuggestDistance)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)

	if configPath == "" {
		if defaultPath, err := DefaultConfigPath(); err == nil {
			if _, statErr := os.Stat(defaultPath); statErr == nil {
				configPath = defaultPath
			}
		}
	}

	res := &LoadResult{Source: "defaults"}
	if hasEnvOverride() {
		res.Source = "defaults+env"
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, LoadError(configPath, err)
		}
		res.Source = "file"
		res.SourcePath = configPath
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, LoadError(configPath, err)
	}
	res.Config = &cfg
	return res, nil
}

// DefaultConfigPath returns ~/.config/gnflora/gnflora.yaml.
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "gnflora.yaml"), nil
}

// ConfigDir returns the configuration directory for gnflora.
// Uses ~/.config/gnflora/ on all platforms for consistency.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "gnflora"), nil
}

func hasEnvOverride() bool {
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "GNFLORA_") {
			return true
		}
	}
	return false
}
