// internal/config/config.go - Configuration management
package config

import (
	"github.com/spf13/viper"

	"github.com/valpere/geo_bson/internal"
)

// Config represents the complete application configuration
type Config struct {
	Input   InputConfig   `mapstructure:"input"`
	Output  OutputConfig  `mapstructure:"output"`
	Batch   BatchConfig   `mapstructure:"batch"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// InputConfig controls how input documents are parsed
type InputConfig struct {
	Canonical bool `mapstructure:"canonical"`
}

// OutputConfig contains output formatting configuration
type OutputConfig struct {
	Canonical   bool `mapstructure:"canonical"`
	Pretty      bool `mapstructure:"pretty"`
	Compression bool `mapstructure:"compression"`
}

// BatchConfig contains batch conversion configuration
type BatchConfig struct {
	Concurrency int  `mapstructure:"concurrency"`
	FailOnError bool `mapstructure:"fail_on_error"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Format  string `mapstructure:"format"`
	Output  string `mapstructure:"output"`
	Verbose bool   `mapstructure:"verbose"`
}

// Load loads configuration from the global viper instance
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom loads configuration from v, applying defaults first
func LoadFrom(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, internal.NewError(internal.ErrorCodeConfig, "failed to unmarshal configuration", err)
	}

	if config.Logging.Verbose && config.Logging.Level == "info" {
		config.Logging.Level = "debug"
	}

	if err := Validate(&config); err != nil {
		return nil, internal.NewError(internal.ErrorCodeConfig, "configuration validation failed", err)
	}

	return &config, nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	// Input defaults
	v.SetDefault("input.canonical", false)

	// Output defaults
	v.SetDefault("output.canonical", false)
	v.SetDefault("output.pretty", false)
	v.SetDefault("output.compression", false)

	// Batch defaults
	v.SetDefault("batch.concurrency", 8)
	v.SetDefault("batch.fail_on_error", false)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output", "stderr")
	v.SetDefault("logging.verbose", false)
}
