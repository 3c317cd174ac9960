// Package store is the single data-access layer for the import pipeline.
//
// ImportStore owns the replace-then-load write path (one transaction per
// entity type per site), row-count introspection, and the import-run
// journal. It speaks portable SQL over database/sql so the same code path
// serves the embedded SQLite engine and PostgreSQL.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultQueryTimeout = 30 * time.Second

// Base contains shared dependencies for the store: the single store handle
// acquired once per run, and the logger. Passed in explicitly; there is no
// ambient process-wide connection.
type Base struct {
	DB  *sql.DB
	Log *logrus.Logger
}

// ImportStore provides site-scoped loads and introspection over the six
// dump entity tables.
type ImportStore struct {
	Base
}

// NewImportStore creates an ImportStore with the given shared base.
func NewImportStore(base Base) *ImportStore {
	return &ImportStore{Base: base}
}

// withTimeout creates a context with the default per-statement timeout.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultQueryTimeout)
}
