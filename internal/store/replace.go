package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/stackslice/stackslice/internal/models"
)

// maxInsertParams caps the bound parameters of one multi-row INSERT.
// SQLite's variable limit (32766 since 3.32) is the tighter of the two
// engines; staying under it bounds statement size on both.
const maxInsertParams = 30000

// Load is one in-flight replace-then-load for a single site and entity
// type. The delete issued by Replace and every Insert happen inside the
// same transaction, so a failure mid-load rolls back to the row set the
// site had before this run started.
type Load struct {
	tx     *sql.Tx
	spec   models.TableSpec
	site   string
	prefix string // INSERT INTO <table> (site, cols...) VALUES
	rows   int64
}

// Replace begins the load of one entity type for one site: it opens a
// transaction and deletes every existing row of that entity for the site,
// making the subsequent load idempotent rather than additive. Rows of other
// sites are untouched.
func (s *ImportStore) Replace(ctx context.Context, site string, spec models.TableSpec) (*Load, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning %s load for site %q: %w", spec.Entity, site, err)
	}

	delCtx, cancel := withTimeout(ctx)
	defer cancel()

	if _, err := tx.ExecContext(delCtx, "DELETE FROM "+spec.Table+" WHERE site = $1", site); err != nil {
		tx.Rollback() //nolint:errcheck // best-effort rollback on setup failure.

		return nil, fmt.Errorf("clearing %s rows for site %q: %w", spec.Entity, site, err)
	}

	return &Load{
		tx:     tx,
		spec:   spec,
		site:   site,
		prefix: "INSERT INTO " + spec.Table + " (site, " + strings.Join(spec.Columns, ", ") + ") VALUES ",
	}, nil
}

// Insert appends a batch of bound rows inside the open transaction. Each
// call is one multi-row INSERT round trip, split only when the batch would
// exceed the engine parameter limit. Row values are in spec.Columns order;
// the site key is bound here.
func (l *Load) Insert(ctx context.Context, batch [][]any) error {
	if len(batch) == 0 {
		return nil
	}

	ncols := len(l.spec.Columns) + 1 // plus site
	chunkRows := maxInsertParams / ncols

	for start := 0; start < len(batch); start += chunkRows {
		end := start + chunkRows
		if end > len(batch) {
			end = len(batch)
		}

		if err := l.insertChunk(ctx, batch[start:end], ncols); err != nil {
			return err
		}
	}

	return nil
}

func (l *Load) insertChunk(ctx context.Context, rows [][]any, ncols int) error {
	valueParts := make([]string, 0, len(rows))
	args := make([]any, 0, len(rows)*ncols)

	for i, row := range rows {
		base := i * ncols

		placeholders := make([]string, ncols)
		for j := range placeholders {
			placeholders[j] = fmt.Sprintf("$%d", base+j+1)
		}

		valueParts = append(valueParts, "("+strings.Join(placeholders, ", ")+")")
		args = append(args, l.site)
		args = append(args, row...)
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if _, err := l.tx.ExecContext(ctx, l.prefix+strings.Join(valueParts, ", "), args...); err != nil {
		return fmt.Errorf("inserting %s batch for site %q: %w", l.spec.Entity, l.site, err)
	}

	l.rows += int64(len(rows))

	return nil
}

// Commit finalizes the load and returns the number of rows it inserted.
func (l *Load) Commit() (int64, error) {
	if err := l.tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing %s load for site %q: %w", l.spec.Entity, l.site, err)
	}

	return l.rows, nil
}

// Rollback abandons the load, restoring the site's previous row set.
// Safe to call after Commit; the later call is a no-op error that is
// discarded.
func (l *Load) Rollback() {
	l.tx.Rollback() //nolint:errcheck // best-effort; no-op after commit.
}
