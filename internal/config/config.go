// Package config provides configuration management for matter using Viper.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/thoreinstein/matter/internal/paths"
	"github.com/thoreinstein/matter/pkg/engine"
	"github.com/thoreinstein/matter/pkg/matter"
)

// Config represents the top-level configuration structure.
type Config struct {
	// Format selects the front matter engine: yaml, toml or json.
	Format string `mapstructure:"format" yaml:"format"`

	// Delimiter opens a front matter block. Defaults to "---".
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`

	// CloseDelimiter closes a front matter block. Empty means the
	// opening delimiter closes the block too.
	CloseDelimiter string `mapstructure:"close_delimiter" yaml:"close_delimiter"`

	// ExcerptDelimiter marks the end of the document excerpt. Excerpt
	// extraction is disabled while this is empty.
	ExcerptDelimiter string `mapstructure:"excerpt_delimiter" yaml:"excerpt_delimiter"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.Reset()

	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	if dir := os.Getenv("MATTER_CONFIG_DIR"); dir != "" {
		viper.AddConfigPath(dir)
	}
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(paths.ConfigDir())

	// Environment variable support
	viper.SetEnvPrefix("MATTER")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("format", engine.YAML.Name())
	viper.SetDefault("delimiter", matter.DefaultDelimiter)
	viper.SetDefault("close_delimiter", "")
	viper.SetDefault("excerpt_delimiter", "")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}

// Matter builds a parser from the configuration.
func (c *Config) Matter() (*matter.Matter, error) {
	eng, err := engine.ForName(c.Format)
	if err != nil {
		return nil, err
	}

	m := matter.New(eng)
	if c.Delimiter != "" {
		m.Delimiter = c.Delimiter
	}
	m.CloseDelimiter = c.CloseDelimiter
	m.ExcerptDelimiter = c.ExcerptDelimiter
	return m, nil
}
