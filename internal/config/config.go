// Package config provides environment-driven configuration for stackslice.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Config holds all application configuration values.
type Config struct {
	// StoreURL is a SQLite file path or a postgres:// URL.
	StoreURL string
	// Site is the tenant key rows are partitioned by. Single-tenant
	// deployments leave the default in place and the whole store
	// represents that one site.
	Site        string
	BatchSize   int
	LogLevel    string
	MetricsAddr string
}

// Load reads configuration from environment variables with sensible
// defaults. CLI flags override these afterwards.
func Load() (*Config, error) {
	cfg := &Config{
		StoreURL:    envOrDefault("STACKSLICE_DB", "stackslice.db"),
		Site:        envOrDefault("STACKSLICE_SITE", "default"),
		LogLevel:    envOrDefault("LOG_LEVEL", "info"),
		MetricsAddr: envOrDefault("STACKSLICE_METRICS_ADDR", ""),
	}

	batch, err := strconv.Atoi(envOrDefault("STACKSLICE_BATCH_SIZE", "1000"))
	if err != nil || batch < 1 {
		return nil, fmt.Errorf("STACKSLICE_BATCH_SIZE must be a positive integer")
	}
	cfg.BatchSize = batch

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.StoreURL == "" {
		return fmt.Errorf("STACKSLICE_DB must not be empty")
	}

	if c.Site == "" {
		return fmt.Errorf("STACKSLICE_SITE must not be empty")
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.LogLevel)
	}

	return nil
}

// NewLogger builds the process logger at the configured level.
func (c *Config) NewLogger() *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
