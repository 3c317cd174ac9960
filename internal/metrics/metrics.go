// Package metrics defines Prometheus metrics for the import pipeline.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RowsImported = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stackslice_rows_imported_total",
			Help: "Rows imported, by site and entity type",
		},
		[]string{"site", "entity"},
	)

	EntityImportDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stackslice_entity_import_duration_seconds",
			Help:    "Wall time of one entity type's import",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 14),
		},
		[]string{"entity"},
	)

	ImportErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stackslice_import_errors_total",
			Help: "Failed entity imports, by site and entity type",
		},
		[]string{"site", "entity"},
	)

	BatchesFlushed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "stackslice_batches_flushed_total",
			Help: "Bulk insert round trips issued",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RowsImported, EntityImportDuration, ImportErrors, BatchesFlushed,
	)
}
