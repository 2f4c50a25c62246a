// Package config loads the logview configuration via viper, layering
// defaults, an optional YAML config file, and LOGVIEW_* environment
// variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete logview configuration
type Config struct {
	Capture CaptureConfig `mapstructure:"capture"`
	TUI     TUIConfig     `mapstructure:"tui"`
}

// CaptureConfig controls the capture pipeline
type CaptureConfig struct {
	// Capacity is the record capacity of the primary store and of
	// every per-source store
	Capacity int `mapstructure:"capacity"`
	// Level is the global minimum severity captured at all
	// Options: "TRACE", "DEBUG", "INFO", "WARN", "ERROR"
	Level string `mapstructure:"level"`
	// Sources lists sources to track individually at startup; each
	// gets its own store the console can scope to
	Sources []string `mapstructure:"sources"`
}

// TUIConfig controls the console behavior
type TUIConfig struct {
	// TickIntervalMs is how often the console refreshes while following
	TickIntervalMs int `mapstructure:"tick_interval_ms"`
	// TimeFormat is the Go time layout for record timestamps
	TimeFormat string `mapstructure:"time_format"`
	// ThemeFile is an optional YAML file overriding level colors
	ThemeFile string `mapstructure:"theme_file"`
}

// Default returns a Config with all default values
func Default() *Config {
	return &Config{
		Capture: CaptureConfig{
			Capacity: 1000,
			Level:    "TRACE",
		},
		TUI: TUIConfig{
			TickIntervalMs: 100,
			TimeFormat:     "15:04:05.000",
		},
	}
}

// TickInterval returns the refresh interval as a duration
func (c *TUIConfig) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// SetDefaults registers all default values with viper
func SetDefaults() {
	defaults := Default()

	// Capture defaults
	viper.SetDefault("capture.capacity", defaults.Capture.Capacity)
	viper.SetDefault("capture.level", defaults.Capture.Level)
	viper.SetDefault("capture.sources", defaults.Capture.Sources)

	// TUI defaults
	viper.SetDefault("tui.tick_interval_ms", defaults.TUI.TickIntervalMs)
	viper.SetDefault("tui.time_format", defaults.TUI.TimeFormat)
	viper.SetDefault("tui.theme_file", defaults.TUI.ThemeFile)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "logview")
	}
	// Fall back to ~/.config/logview
	home, err := os.UserHomeDir()
	if err != nil {
		return ".logview"
	}
	return filepath.Join(home, ".config", "logview")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
