// Package config holds all evometa configuration. Settings load from a YAML
// file with environment-variable overrides; a missing file yields defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all evometa configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Snapshot rendering
	Render RenderConfig `yaml:"render"`

	// Record decoding
	Decode DecodeConfig `yaml:"decode"`

	// Watch mode
	Watch WatchConfig `yaml:"watch"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig configures the rewrite pipeline applied to rendered output.
type RenderConfig struct {
	// Field name of the flat numeric array to reflow
	ArrayField string `yaml:"array_field"`

	// Elements per visual line in the reflowed array
	GroupSize int `yaml:"group_size"`

	// Default output path ("" writes to stdout)
	Output string `yaml:"output"`
}

// DecodeConfig configures parallel record decoding.
type DecodeConfig struct {
	// Maximum records decoded concurrently
	Parallelism int `yaml:"parallelism"`
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	// Debounce window for rapid successive writes
	Debounce string `yaml:"debounce"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "evometa",
		Version: "1.0.0",

		Render: RenderConfig{
			ArrayField: "proposalNumbers",
			GroupSize:  10,
		},

		Decode: DecodeConfig{
			Parallelism: 4,
		},

		Watch: WatchConfig{
			Debounce: "500ms",
		},

		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides lets environment variables override file settings.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("EVOMETA_ARRAY_FIELD"); v != "" {
		c.Render.ArrayField = v
	}
	if v := os.Getenv("EVOMETA_GROUP_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Render.GroupSize = n
		}
	}
	if v := os.Getenv("EVOMETA_OUTPUT"); v != "" {
		c.Render.Output = v
	}
	if v := os.Getenv("EVOMETA_PARALLELISM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Decode.Parallelism = n
		}
	}
	if v := os.Getenv("EVOMETA_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}
