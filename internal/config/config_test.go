// internal/config/config_test.go - Unit tests for configuration loading
package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/valpere/geo_bson/internal"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(viper.New())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Batch.Concurrency != 8 {
		t.Errorf("Expected default concurrency 8, got %d", cfg.Batch.Concurrency)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected default level info, got %s", cfg.Logging.Level)
	}
	if cfg.Output.Canonical {
		t.Error("Expected relaxed output by default")
	}
}

func TestLoadFromYAML(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	yaml := `
output:
  canonical: true
  pretty: true
batch:
  concurrency: 4
  fail_on_error: true
logging:
  verbose: true
`
	if err := v.ReadConfig(strings.NewReader(yaml)); err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}

	cfg, err := LoadFrom(v)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !cfg.Output.Canonical || !cfg.Output.Pretty {
		t.Errorf("Expected canonical pretty output, got %+v", cfg.Output)
	}
	if cfg.Batch.Concurrency != 4 || !cfg.Batch.FailOnError {
		t.Errorf("Unexpected batch config %+v", cfg.Batch)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected verbose to raise level to debug, got %s", cfg.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Batch:   BatchConfig{Concurrency: 2},
			Logging: LoggingConfig{Level: "info", Format: "text", Output: "stderr"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"zero concurrency", func(c *Config) { c.Batch.Concurrency = 0 }, true},
		{"too much concurrency", func(c *Config) { c.Batch.Concurrency = 5000 }, true},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"bad output", func(c *Config) { c.Logging.Output = "file" }, true},
		{"uppercase level", func(c *Config) { c.Logging.Level = "WARN" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromInvalid(t *testing.T) {
	v := viper.New()
	v.Set("batch.concurrency", 0)

	_, err := LoadFrom(v)
	if err == nil {
		t.Fatal("Expected error for zero concurrency, got nil")
	}

	var appErr *internal.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("Expected *internal.Error, got %T", err)
	}
	if appErr.Code != internal.ErrorCodeConfig {
		t.Errorf("Expected code %s, got %s", internal.ErrorCodeConfig, appErr.Code)
	}
}
