// Package db opens the backing store and applies schema migrations.
//
// Two engines sit behind one database/sql handle: SQLite, the embedded
// default whose store URL is simply a file path, and PostgreSQL via the
// pgx stdlib driver, selected when the store URL carries a postgres://
// scheme. All store-layer SQL is written once, portable to both.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as database/sql driver
	_ "github.com/mattn/go-sqlite3"    // register the embedded engine
	"github.com/pressly/goose/v3"
)

// Open connects to the store named by storeURL and verifies the connection.
// The caller owns the returned handle; exactly one import process is
// expected to run against a given store at a time.
func Open(ctx context.Context, storeURL string) (*sql.DB, goose.Dialect, error) {
	driver, dsn, dialect := driverFor(storeURL)

	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, "", fmt.Errorf("opening store %s: %w", storeURL, err)
	}

	if driver == "sqlite3" {
		// SQLite serializes writers; a single connection avoids lock
		// contention between the loader and count queries.
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()

		return nil, "", fmt.Errorf("pinging store: %w", err)
	}

	return sqlDB, dialect, nil
}

// driverFor maps a store URL to a registered driver and DSN. A postgres://
// or postgresql:// scheme selects pgx; anything else is a SQLite file path.
func driverFor(storeURL string) (driver, dsn string, dialect goose.Dialect) {
	if strings.HasPrefix(storeURL, "postgres://") || strings.HasPrefix(storeURL, "postgresql://") {
		return "pgx", storeURL, goose.DialectPostgres
	}

	return "sqlite3", storeURL + "?_busy_timeout=5000", goose.DialectSQLite3
}
