// Migration runner using goose (github.com/pressly/goose/v3): up/down
// migrations in one file, native embed.FS support, and a programmatic
// provider that works for either engine by switching the dialect.
//
// Migration files live in internal/db/migrations/ and are embedded via
// //go:embed. RunMigrations applies all pending migrations at store open,
// which is what makes every entity table "created if absent" before the
// first load touches it.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

// RunMigrations applies all pending migrations from the provided filesystem.
// The fsys should contain goose-annotated SQL files (e.g. "00001_x.sql").
func RunMigrations(ctx context.Context, sqlDB *sql.DB, dialect goose.Dialect, log *logrus.Logger, fsys fs.FS) error {
	provider, err := goose.NewProvider(dialect, sqlDB, fsys)
	if err != nil {
		return fmt.Errorf("creating goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}

	for _, r := range results {
		if r.Error != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", r.Source.Version, r.Source.Path, r.Error)
		}

		log.WithFields(logrus.Fields{
			"version":  r.Source.Version,
			"file":     r.Source.Path,
			"duration": r.Duration,
		}).Info("migration applied")
	}

	if len(results) == 0 {
		log.Debug("all migrations already applied")
	}

	return nil
}
