// Package config provides utilities for managing the titlecase CLI configuration
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/viranchils96/titlecase/constants/envvar"
	"github.com/viranchils96/titlecase/constants/zapkey"
	"github.com/viranchils96/titlecase/log"
)

var logger = log.Logger.Named("config")

// DotEnvFile is the optional file loaded into the environment before reading values
var DotEnvFile = ".env"

// Config represents the configuration for a titlecase run
type Config struct {
	Path    string
	Text    string
	Workers int
	NFC     bool
	Verbose bool
}

// NewConfig creates a new configuration struct from the environment
func NewConfig(opts ...Option) (*Config, error) {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", DotEnvFile, err)
	}

	c := &Config{
		Path:    "-",
		Workers: envInt(envvar.Workers, runtime.NumCPU()),
		NFC:     envBool(envvar.NFC, false),
		Verbose: envBool(envvar.VerboseLogsEnabled, false),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Path == "" && c.Text == "" {
		return fmt.Errorf("either an input path or text is required")
	}
	return nil
}

func envInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		logger.Warn("Failed to parse integer", zap.Error(err), zap.String(zapkey.Key, key), zap.String(zapkey.Value, raw))
		return fallback
	}
	return v
}

func envBool(key string, fallback bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		logger.Warn("Failed to parse boolean", zap.Error(err), zap.String(zapkey.Key, key), zap.String(zapkey.Value, raw))
		return fallback
	}
	return v
}

// Option is a function that overrides a default configuration value
type Option func(*Config)

// WithPath sets the input path
func WithPath(path string) Option {
	return func(c *Config) {
		c.Path = path
	}
}

// WithText sets literal input text, which takes precedence over the path
func WithText(text string) Option {
	return func(c *Config) {
		c.Text = text
	}
}

// WithWorkers sets the number of concurrent workers
func WithWorkers(workers int) Option {
	return func(c *Config) {
		c.Workers = workers
	}
}

// WithNFC toggles Unicode NFC normalization of the input
func WithNFC(nfc bool) Option {
	return func(c *Config) {
		c.NFC = nfc
	}
}

// WithVerbose toggles debug logging
func WithVerbose(verbose bool) Option {
	return func(c *Config) {
		c.Verbose = verbose
	}
}
