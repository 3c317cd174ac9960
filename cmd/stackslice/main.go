// Command stackslice imports Stack Exchange data dump folders into a
// relational store, one site at a time, with site-scoped idempotent
// replace semantics.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/stackslice/stackslice/internal/config"
	"github.com/stackslice/stackslice/internal/db"
	"github.com/stackslice/stackslice/internal/db/migrations"
	"github.com/stackslice/stackslice/internal/store"
)

// Build-time variables set via ldflags.
var (
	version   = "0.3.0"
	commit    = ""
	buildDate = ""
)

var (
	flagDB       string
	flagLogLevel string
	flagConfig   string
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("stackslice version %s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return fmt.Sprintf("stackslice version %s-dev", version)
}

// configFile is the optional yaml config file (~/.stackslice/config.yaml).
type configFile struct {
	DB          string `yaml:"db"`
	Site        string `yaml:"site"`
	BatchSize   int    `yaml:"batch_size"`
	LogLevel    string `yaml:"log_level"`
	MetricsAddr string `yaml:"metrics_addr"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "stackslice",
		Short:        "stackslice is a Stack Exchange data dump importer",
		Version:      versionString(),
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "store path or postgres:// URL (env: STACKSLICE_DB)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug|info|warn|error (env: LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.stackslice/config.yaml)")

	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newSitesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers configuration: flags take precedence, then env, then
// the optional yaml config file for any values still at their defaults.
func resolveConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if file, ok := readConfigFile(); ok {
		if cfg.StoreURL == "stackslice.db" && file.DB != "" {
			cfg.StoreURL = file.DB
		}
		if cfg.Site == "default" && file.Site != "" {
			cfg.Site = file.Site
		}
		if cfg.BatchSize == 1000 && file.BatchSize > 0 {
			cfg.BatchSize = file.BatchSize
		}
		if cfg.LogLevel == "info" && file.LogLevel != "" {
			cfg.LogLevel = file.LogLevel
		}
		if cfg.MetricsAddr == "" && file.MetricsAddr != "" {
			cfg.MetricsAddr = file.MetricsAddr
		}
	}

	if flagDB != "" {
		cfg.StoreURL = flagDB
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	return cfg, nil
}

func readConfigFile() (configFile, bool) {
	path := flagConfig
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return configFile{}, false
		}
		path = filepath.Join(home, ".stackslice", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return configFile{}, false
	}

	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return configFile{}, false
	}

	return file, true
}

// openStore opens the configured store, applies migrations, and returns the
// import store plus a close func.
func openStore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*store.ImportStore, func(), error) {
	sqlDB, dialect, err := db.Open(ctx, cfg.StoreURL)
	if err != nil {
		return nil, nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB, dialect, log, migrations.FS); err != nil {
		sqlDB.Close()

		return nil, nil, err
	}

	st := store.NewImportStore(store.Base{DB: sqlDB, Log: log})

	return st, func() { sqlDB.Close() }, nil
}
