// Package config loads charstream settings from YAML files.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/chronos-tachyon/go-charstream"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config contains the settings loaded from a file.
type Config struct {
	// Encoding is an encoding label understood by charstream.ParseEncoding.
	Encoding string `yaml:"input-encoding"`

	// TabSize is the distance between tab stops.
	TabSize int `yaml:"tab-size"`

	// BlockSize is the read buffer size in bytes.
	BlockSize int `yaml:"block-size"`

	// StripBOM drops a leading byte order mark.
	StripBOM bool `yaml:"strip-bom"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log-level"`
}

// Default returns a Config with the library defaults.
func Default() *Config {
	return &Config{
		Encoding:  charstream.UTF8.String(),
		TabSize:   8,
		BlockSize: 4096,
		LogLevel:  "warn",
	}
}

// Load reads and validates a configuration file.  Settings missing from
// the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates YAML configuration.  Unknown keys are errors.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (cfg *Config) Validate() error {
	if _, err := charstream.ParseEncoding(cfg.Encoding); err != nil {
		return fmt.Errorf("%w: input-encoding: %w", ErrInvalid, err)
	}
	if cfg.TabSize < 1 {
		return fmt.Errorf("%w: tab-size must be positive, got %d", ErrInvalid, cfg.TabSize)
	}
	if cfg.BlockSize < 1 {
		return fmt.Errorf("%w: block-size must be positive, got %d", ErrInvalid, cfg.BlockSize)
	}
	if _, err := cfg.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level.
func (cfg *Config) Level() (slog.Level, error) {
	var level slog.Level
	if cfg.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log-level: %w", ErrInvalid, err)
	}
	return level, nil
}

// Options converts the configuration into charstream.Options.
func (cfg *Config) Options(reporter charstream.Reporter, log *slog.Logger) (charstream.Options, error) {
	enc, err := charstream.ParseEncoding(cfg.Encoding)
	if err != nil {
		return charstream.Options{}, fmt.Errorf("%w: input-encoding: %w", ErrInvalid, err)
	}
	return charstream.Options{
		Encoding:  enc,
		TabSize:   cfg.TabSize,
		BlockSize: cfg.BlockSize,
		Reporter:  reporter,
		Logger:    log,
		StripBOM:  cfg.StripBOM,
	}, nil
}
