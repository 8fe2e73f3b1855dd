// Package config provides configuration types and defaults for vaxreg.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"vaxreg/internal/log"
)

// Config holds all configuration options for vaxreg.
type Config struct {
	// Language selects the output message language: "en" or "pt".
	Language string `mapstructure:"language"`

	// HashTableSize is the bucket count for the batch and user indices.
	HashTableSize int `mapstructure:"hash_table_size"`

	// MaxBatches caps how many batches can ever be registered.
	MaxBatches int `mapstructure:"max_batches"`

	// Debug enables the debug log file.
	Debug bool `mapstructure:"debug"`

	// LogFile overrides the debug log location.
	// Default: ~/.config/vaxreg/vaxreg.log
	LogFile string `mapstructure:"log_file"`
}

// Defaults returns the built-in configuration. The table size and batch
// cap match the original registry limits.
func Defaults() Config {
	return Config{
		Language:      "en",
		HashTableSize: 1009,
		MaxBatches:    1000,
		Debug:         false,
		LogFile:       "", // Derived from config dir at runtime
	}
}

// Validate checks the configuration for values the registry cannot run
// with.
func (c Config) Validate() error {
	if c.Language != "en" && c.Language != "pt" {
		return fmt.Errorf("language must be \"en\" or \"pt\", got %q", c.Language)
	}
	if c.HashTableSize < 1 {
		return fmt.Errorf("hash_table_size must be positive, got %d", c.HashTableSize)
	}
	if c.MaxBatches < 1 {
		return fmt.Errorf("max_batches must be positive, got %d", c.MaxBatches)
	}
	return nil
}

// DefaultLogFilePath returns the default path for the debug log.
// Returns ~/.config/vaxreg/vaxreg.log or empty string if home dir unavailable.
func DefaultLogFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "vaxreg", "vaxreg.log")
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Vaxreg Configuration

# Output message language: "en" (default) or "pt"
language: en

# Bucket count for the batch and user hash indices
hash_table_size: 1009

# Maximum number of batches that can ever be registered
max_batches: 1000

# Debug logging
debug: false
# log_file: ~/.config/vaxreg/vaxreg.log
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
