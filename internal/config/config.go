// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"strings"
)

// Default values.
const (
	DefaultTaskFile  = "ToDo_Tasks.txt"
	DefaultTheme     = "matrix"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	ConfigFileName   = "todo.toml"
)

// Config holds the full configuration for todo.
type Config struct {
	// Paths
	TaskFile string `toml:"task_file"`

	// Appearance
	Theme string `toml:"theme"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogFile       string `toml:"log_file"`
	LogTimestamps bool   `toml:"log_timestamps"`

	// Directory of the executable (computed)
	BaseDir string `toml:"-"`

	// Config files that were applied, in order
	Files []string `toml:"-"`

	// Keys present in config files but not understood
	Warnings []string `toml:"-"`
}

var (
	validLogLevels  = []string{"debug", "info", "warn", "warning", "error"}
	validLogFormats = []string{"text", "logfmt", "json"}
)

// setDefaults sets default values on the config.
func setDefaults(cfg *Config) {
	cfg.TaskFile = DefaultTaskFile
	cfg.Theme = DefaultTheme
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.TaskFile) == "" {
		return fmt.Errorf("task_file is empty")
	}
	if strings.TrimSpace(c.Theme) == "" {
		return fmt.Errorf("theme is empty")
	}
	if !oneOf(c.LogLevel, validLogLevels) {
		return fmt.Errorf("invalid log_level %q (want one of %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}
	if !oneOf(c.LogFormat, validLogFormats) {
		return fmt.Errorf("invalid log_format %q (want one of %s)", c.LogFormat, strings.Join(validLogFormats, ", "))
	}
	return nil
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
