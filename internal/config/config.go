// Package config loads the assistant's configuration from YAML or JSON5
// files, with $include merging and environment variable expansion.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config is the root configuration.
type Config struct {
	Assistant AssistantConfig `yaml:"assistant"`
	Storage   StorageConfig   `yaml:"storage"`
	Content   ContentConfig   `yaml:"content"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// AssistantConfig controls engine-level options.
type AssistantConfig struct {
	// Name is the display name used in the REPL prompt.
	Name string `yaml:"name"`
	// Analysis attaches the message breakdown to every response.
	Analysis bool `yaml:"analysis"`
}

// StorageConfig selects where user memory lives.
type StorageConfig struct {
	// Backend is "memory" or "sqlite".
	Backend string `yaml:"backend"`
	// Path is the SQLite database file; ignored by the memory backend.
	Path string `yaml:"path"`
}

// ContentConfig points at an optional reply-content override file.
type ContentConfig struct {
	Path string `yaml:"path"`
	// Watch hot-reloads the override file on change.
	Watch bool `yaml:"watch"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	// Level is debug, info, warn, or error.
	Level string `yaml:"level"`
	// Format is "text" or "json".
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Assistant: AssistantConfig{Name: "assistant"},
		Storage:   StorageConfig{Backend: "memory"},
		Logging:   LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads the file at path over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	raw, err := loadRaw(path)
	if err != nil {
		return nil, err
	}
	if err := decodeRaw(raw, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values that a typo would otherwise turn into silent
// misbehavior.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "", "memory", "sqlite":
	default:
		return fmt.Errorf("unknown storage backend %q (want memory or sqlite)", c.Storage.Backend)
	}
	if c.Storage.Backend == "sqlite" && strings.TrimSpace(c.Storage.Path) == "" {
		return fmt.Errorf("storage.path is required for the sqlite backend")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", c.Logging.Format)
	}
	if c.Content.Path != "" {
		if _, err := os.Stat(c.Content.Path); err != nil {
			return fmt.Errorf("content file: %w", err)
		}
	}
	return nil
}
