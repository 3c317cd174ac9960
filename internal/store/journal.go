package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is one import_runs journal entry: the outcome of loading one entity
// type for one site. The journal is append-only and written outside the
// load transaction, so failed runs are recorded too.
type Run struct {
	ID         uuid.UUID
	Site       string
	Entity     string
	Rows       int64
	StartedAt  time.Time
	FinishedAt time.Time
	Status     string // "ok" or "failed"
	Error      string
}

// RecordRun appends one journal entry. Callers treat failures here as
// log-worthy, never as import failures.
func (s *ImportStore) RecordRun(ctx context.Context, run Run) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var errText *string
	if run.Error != "" {
		errText = &run.Error
	}

	if _, err := s.DB.ExecContext(ctx, `
		INSERT INTO import_runs (id, site, entity, row_count, started_at, finished_at, status, error)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		run.ID.String(), run.Site, run.Entity, run.Rows,
		run.StartedAt.UTC(), run.FinishedAt.UTC(), run.Status, errText,
	); err != nil {
		return fmt.Errorf("recording import run %s: %w", run.ID, err)
	}

	return nil
}

// SiteRuns returns the journal entries for one site, newest first.
func (s *ImportStore) SiteRuns(ctx context.Context, site string) ([]Run, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, site, entity, row_count, started_at, finished_at, status, error
		FROM import_runs
		WHERE site = $1
		ORDER BY started_at DESC, id`, site)
	if err != nil {
		return nil, fmt.Errorf("querying import runs for site %q: %w", site, err)
	}
	defer rows.Close()

	var runs []Run

	for rows.Next() {
		var (
			run     Run
			id      string
			errText *string
		)

		if err := rows.Scan(&id, &run.Site, &run.Entity, &run.Rows,
			&run.StartedAt, &run.FinishedAt, &run.Status, &errText); err != nil {
			return nil, fmt.Errorf("scanning import run: %w", err)
		}

		run.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parsing import run id %q: %w", id, err)
		}

		if errText != nil {
			run.Error = *errText
		}

		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating import runs: %w", err)
	}

	return runs, nil
}
