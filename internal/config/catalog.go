// Package config loads the catalog's runtime configuration from environment
// variables and an optional YAML file.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds catalog settings.
// Precedence: defaults, then the YAML file (if any), then environment variables.
type Config struct {
	// Name labels the catalog in metrics and logs.
	Name string `env:"CATALOG_NAME" yaml:"name"`

	// LogFormat selects "json" or "text" output.
	LogFormat string `env:"CATALOG_LOG_FORMAT" yaml:"log_format"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" yaml:"log_level"`

	// MetricsEnabled toggles Prometheus recording.
	MetricsEnabled bool `env:"CATALOG_METRICS_ENABLED" yaml:"metrics_enabled"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Name:           "default",
		LogFormat:      "json",
		LogLevel:       "info",
		MetricsEnabled: true,
	}
}

// Load reads configuration from environment variables on top of the defaults.
func Load() (*Config, error) {
	cfg := Default()
	return finish(&cfg)
}

// LoadFile reads configuration from a YAML file, then applies environment overrides.
// The path parameter is expected to come from a trusted source.
func LoadFile(path string) (*Config, error) {
	// #nosec G304 -- path is provided by the embedding application, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return finish(&cfg)
}

func finish(cfg *Config) (*Config, error) {
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration correctness.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("CATALOG_NAME cannot be empty")
	}

	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("CATALOG_LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", c.LogLevel)
	}

	return nil
}
