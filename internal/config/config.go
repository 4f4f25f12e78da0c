// Package config loads runtime configuration for the tool runtime.
package config

import "fmt"

// Config represents the toolbelt runtime configuration
type Config struct {
	// Logging
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`

	// Metrics
	Metrics MetricsConfig `json:"metrics" mapstructure:"metrics"`

	// Builtins controls registration of the quick-start tool set
	Builtins BuiltinsConfig `json:"builtins" mapstructure:"builtins"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level   string `json:"level" mapstructure:"level"`
	File    string `json:"file" mapstructure:"file"`
	Console bool   `json:"console" mapstructure:"console"`
	Pretty  bool   `json:"pretty" mapstructure:"pretty"`
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Enabled bool `json:"enabled" mapstructure:"enabled"`
}

// BuiltinsConfig holds builtin tool registration settings
type BuiltinsConfig struct {
	Enabled bool `json:"enabled" mapstructure:"enabled"`
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			Console: true,
			Pretty:  true,
		},
		Metrics:  MetricsConfig{Enabled: true},
		Builtins: BuiltinsConfig{Enabled: true},
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "", "trace", "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	return nil
}
