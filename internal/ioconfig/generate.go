package ioconfig

import (
	"os"
	"path/filepath"

	"github.com/gnames/gnflora/pkg/config"
	"gopkg.in/yaml.v3"
)

// configYAML is the documented default config written on first run.
// All values are commented out: uncommenting a line overrides the
// built-in default.
const configYAML = `# gnflora configuration.
# Values commented out below show the built-in defaults.

output:
  # Output format: compact, csv, tsv, compact-json, pretty-json.
  # format: compact

  # Column at which explanations wrap.
  # wrap_width: 70

search:
  # Largest edit distance at which "did you mean" is still offered.
  # max_suggest_distance: 3

logging:
  # Log level: debug, info, warn, error.
  # level: info

  # Log format: text, json.
  # format: text
`

// GenerateDefaultConfig writes the documented default config file to
// the default location. Does not overwrite an existing file.
func GenerateDefaultConfig() (string, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return "", WriteError("", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", WriteError(configPath, err)
	}
	if err := os.WriteFile(configPath, []byte(configYAML), 0644); err != nil {
		return "", WriteError(configPath, err)
	}
	return configPath, nil
}

// ValidateGeneratedConfig reads a generated config file and checks it
// is valid YAML for a Config. Used by tests.
func ValidateGeneratedConfig(configPath string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return LoadError(configPath, err)
	}
	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LoadError(configPath, err)
	}
	return nil
}
