package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"imghdr/validate"
)

// Config holds the imghdr CLI configuration.
type Config struct {
	// Scanner settings
	Workers int  `yaml:"workers"`
	Sniff   bool `yaml:"sniff"`

	// Show a progress bar when more files than this are scanned. 0 disables it.
	ProgressThreshold int `yaml:"progress_threshold"`

	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Artwork rules used by the check command
	Artwork validate.Constraints `yaml:"artwork"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Workers:           4,
		ProgressThreshold: 50,
		LogLevel:          "info",
		Artwork:           validate.DefaultArtwork(),
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the scanner cannot use.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", c.Workers)
	}
	if c.ProgressThreshold < 0 {
		return fmt.Errorf("config: progress_threshold must not be negative, got %d", c.ProgressThreshold)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	return nil
}
