// Package config loads the mosaic command's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mosaic/scan"
)

// ErrInvalid reports a configuration value that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Config is the on-disk configuration.
type Config struct {
	// Pattern is the mask searched for, one row per line; empty means the sea monster.
	Pattern string `yaml:"pattern,omitempty"`
	// Workers bounds the classifier pool; 0 means GOMAXPROCS.
	Workers int           `yaml:"workers"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML file over the defaults. A missing file yields the
// defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
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

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
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

// MOSAIC_WORKERS and MOSAIC_LOG_LEVEL override the file. Unparsable
// worker counts are ignored.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("MOSAIC_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Workers = n
		}
	}
	if v := os.Getenv("MOSAIC_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks every field.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalid, c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.Mask(); err != nil {
		return err
	}

	return nil
}

// Level parses Logging.Level; empty means info.
func (c *Config) Level() (zapcore.Level, error) {
	if c.Logging.Level == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return 0, fmt.Errorf("%w: logging.level: %w", ErrInvalid, err)
	}

	return lvl, nil
}

// Mask returns the configured pattern, or scan.SeaMonster when unset.
func (c *Config) Mask() (scan.Mask, error) {
	if strings.TrimSpace(c.Pattern) == "" {
		return scan.SeaMonster, nil
	}
	m, err := scan.ParseMask(strings.Split(c.Pattern, "\n"))
	if err != nil {
		return scan.Mask{}, fmt.Errorf("%w: pattern: %w", ErrInvalid, err)
	}

	return m, nil
}
