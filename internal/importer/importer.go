// Package importer drives the streaming import pipeline: for each entity
// type of one site, replace (delete old site rows) → stream rows from the
// dump file → coerce fields → batch → bulk insert, all inside one
// transaction per entity type.
//
// The pipeline is deliberately single-threaded and synchronous: one file,
// one entity type, one site at a time. The embedded store engine serializes
// writers anyway, so parallelism would only add coordination.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/stackslice/stackslice/internal/dump"
	"github.com/stackslice/stackslice/internal/metrics"
	"github.com/stackslice/stackslice/internal/models"
	"github.com/stackslice/stackslice/internal/store"
)

// DefaultBatchSize is the bulk-insert threshold used when no option
// overrides it.
const DefaultBatchSize = 1000

// Counts maps entity type to imported row count.
type Counts map[string]int64

// Importer sequences per-entity imports against one store handle.
type Importer struct {
	store     *store.ImportStore
	log       *logrus.Logger
	batchSize int
}

// Option configures an Importer.
type Option func(*Importer)

// WithBatchSize overrides the bulk-insert threshold. Values below 1 are
// raised to 1.
func WithBatchSize(n int) Option {
	return func(im *Importer) {
		if n < 1 {
			n = 1
		}
		im.batchSize = n
	}
}

// New creates an Importer over the given store.
func New(st *store.ImportStore, log *logrus.Logger, opts ...Option) *Importer {
	im := &Importer{
		store:     st,
		log:       log,
		batchSize: DefaultBatchSize,
	}

	for _, opt := range opts {
		opt(im)
	}

	return im
}

// ImportSite imports all six entity types for one site, in fixed order,
// and returns the per-entity row counts. Fail-fast within the site: the
// first entity failure aborts the remaining entity types, returning the
// counts of the entities that had already committed alongside the error.
func (im *Importer) ImportSite(ctx context.Context, site, dataDir string) (Counts, error) {
	if err := checkDataDir(dataDir); err != nil {
		return nil, err
	}

	im.log.WithFields(logrus.Fields{"site": site, "data_dir": dataDir}).Info("starting site import")

	counts := make(Counts, len(models.Entities))

	for _, spec := range models.Entities {
		n, err := im.importEntity(ctx, site, spec, dataDir)
		if err != nil {
			return counts, err
		}

		counts[spec.Entity] = n
	}

	im.log.WithField("site", site).Info("completed site import")

	return counts, nil
}

// ImportEntity imports a single entity type for one site and returns its
// row count.
func (im *Importer) ImportEntity(ctx context.Context, site, entity, dataDir string) (int64, error) {
	spec, ok := models.EntityByName(entity)
	if !ok {
		return 0, fmt.Errorf("unknown entity type %q", entity)
	}

	if err := checkDataDir(dataDir); err != nil {
		return 0, err
	}

	return im.importEntity(ctx, site, spec, dataDir)
}

// importEntity runs one replace-then-load. A missing dump file is an absent
// optional entity type: zero rows, no error, and no replace, so the site's
// previously imported rows for that entity survive a partial dump folder.
func (im *Importer) importEntity(ctx context.Context, site string, spec models.TableSpec, dataDir string) (int64, error) {
	started := time.Now()
	runID := uuid.New()
	logf := im.log.WithFields(logrus.Fields{"site": site, "entity": spec.Entity, "run_id": runID})

	r, err := dump.Open(filepath.Join(dataDir, spec.File))
	if errors.Is(err, fs.ErrNotExist) {
		logf.WithField("file", spec.File).Warn("dump file absent, skipping entity")

		return 0, nil
	}

	if err != nil {
		return 0, im.fail(ctx, runID, site, spec, started, fmt.Errorf("opening %s: %w", spec.File, err))
	}
	defer r.Close()

	load, err := im.store.Replace(ctx, site, spec)
	if err != nil {
		return 0, im.fail(ctx, runID, site, spec, started, err)
	}

	b := newBatch(im.batchSize, func(ctx context.Context, rows [][]any) error {
		return load.Insert(ctx, rows)
	})

	for {
		row, err := r.Next()
		if err == io.EOF {
			break
		}

		if err != nil {
			load.Rollback()

			return 0, im.fail(ctx, runID, site, spec, started, fmt.Errorf("parsing %s: %w", spec.File, err))
		}

		if err := b.Add(ctx, spec.Bind(row)); err != nil {
			load.Rollback()

			return 0, im.fail(ctx, runID, site, spec, started, err)
		}
	}

	if err := b.Flush(ctx); err != nil {
		load.Rollback()

		return 0, im.fail(ctx, runID, site, spec, started, err)
	}

	n, err := load.Commit()
	if err != nil {
		return 0, im.fail(ctx, runID, site, spec, started, err)
	}

	elapsed := time.Since(started)
	logf.WithFields(logrus.Fields{"rows": n, "duration": elapsed}).Info("entity imported")
	metrics.RowsImported.WithLabelValues(site, spec.Entity).Add(float64(n))
	metrics.EntityImportDuration.WithLabelValues(spec.Entity).Observe(elapsed.Seconds())

	im.journal(ctx, store.Run{
		ID: runID, Site: site, Entity: spec.Entity, Rows: n,
		StartedAt: started, FinishedAt: time.Now(), Status: "ok",
	})

	return n, nil
}

// fail wraps an entity-level failure into a typed error, records it in the
// journal and metrics, and returns the wrapped error for propagation.
func (im *Importer) fail(ctx context.Context, runID uuid.UUID, site string, spec models.TableSpec, started time.Time, err error) error {
	metrics.ImportErrors.WithLabelValues(site, spec.Entity).Inc()

	im.journal(ctx, store.Run{
		ID: runID, Site: site, Entity: spec.Entity,
		StartedAt: started, FinishedAt: time.Now(),
		Status: "failed", Error: err.Error(),
	})

	return &Error{Site: site, Entity: spec.Entity, Err: err}
}

// journal records a run entry best-effort; journal failures are logged and
// never affect the import outcome.
func (im *Importer) journal(ctx context.Context, run store.Run) {
	if err := im.store.RecordRun(ctx, run); err != nil {
		im.log.WithError(err).WithFields(logrus.Fields{
			"site": run.Site, "entity": run.Entity,
		}).Warn("failed to record import run")
	}
}

func checkDataDir(dataDir string) error {
	info, err := os.Stat(dataDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrDataDirMissing, dataDir)
	}

	return nil
}
