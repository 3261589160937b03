// Package config loads tool configuration for the pulse CLI from a YAML
// file, merging file values over built-in defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DemoConfig controls the simulated task driven by the demo command.
type DemoConfig struct {
	// Steps is the total number of units in the simulated task.
	Steps int `yaml:"steps"`

	// Interval is the pause between updates.
	Interval time.Duration `yaml:"interval"`

	// Increment is the number of units reported per update.
	Increment int `yaml:"increment"`
}

// Config represents pulse configuration options
type Config struct {
	// Width is the number of glyph positions in the bar
	Width int `yaml:"width"`

	// Theme names a built-in theme preset
	Theme string `yaml:"theme"`

	// ThemeFile is an optional YAML theme overlay applied over Theme
	ThemeFile string `yaml:"theme_file"`

	// LogLevel sets the logging verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Demo contains simulated-task settings for the demo command
	Demo DemoConfig `yaml:"demo"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Width:    50,
		Theme:    "classic",
		LogLevel: "info",
		Demo: DemoConfig{
			Steps:     100,
			Interval:  50 * time.Millisecond,
			Increment: 1,
		},
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// A temporary struct handles the human-readable interval string.
	type yamlDemo struct {
		Steps     int    `yaml:"steps"`
		Interval  string `yaml:"interval"`
		Increment int    `yaml:"increment"`
	}
	type yamlConfig struct {
		Width     int      `yaml:"width"`
		Theme     string   `yaml:"theme"`
		ThemeFile string   `yaml:"theme_file"`
		LogLevel  string   `yaml:"log_level"`
		Demo      yamlDemo `yaml:"demo"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from the file, merging with defaults.
	if yamlCfg.Width != 0 {
		cfg.Width = yamlCfg.Width
	}
	if yamlCfg.Theme != "" {
		cfg.Theme = yamlCfg.Theme
	}
	if yamlCfg.ThemeFile != "" {
		cfg.ThemeFile = yamlCfg.ThemeFile
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.Demo.Steps != 0 {
		cfg.Demo.Steps = yamlCfg.Demo.Steps
	}
	if yamlCfg.Demo.Interval != "" {
		interval, err := time.ParseDuration(yamlCfg.Demo.Interval)
		if err != nil {
			return nil, fmt.Errorf("invalid interval format %q: %w", yamlCfg.Demo.Interval, err)
		}
		cfg.Demo.Interval = interval
	}
	if yamlCfg.Demo.Increment != 0 {
		cfg.Demo.Increment = yamlCfg.Demo.Increment
	}

	if cfg.Width <= 0 {
		return nil, fmt.Errorf("invalid width %d: must be greater than zero", cfg.Width)
	}

	return cfg, nil
}
