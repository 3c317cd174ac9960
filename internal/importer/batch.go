package importer

import (
	"context"

	"github.com/stackslice/stackslice/internal/metrics"
)

// batch accumulates bound rows and hands them to a flush func in groups of
// at most size rows, so one store round trip carries a whole batch and peak
// memory is bounded by the batch size rather than the file size. Correct
// for any size >= 1, for partial final batches, and for streams whose total
// is an exact multiple of the size.
type batch struct {
	size  int
	rows  [][]any
	flush func(context.Context, [][]any) error
}

func newBatch(size int, flush func(context.Context, [][]any) error) *batch {
	if size < 1 {
		size = 1
	}

	return &batch{
		size:  size,
		rows:  make([][]any, 0, size),
		flush: flush,
	}
}

// Add buffers one row, flushing when the buffer reaches the batch size.
func (b *batch) Add(ctx context.Context, row []any) error {
	b.rows = append(b.rows, row)
	if len(b.rows) < b.size {
		return nil
	}

	return b.Flush(ctx)
}

// Flush drains the buffered remainder. With nothing buffered it is a no-op.
func (b *batch) Flush(ctx context.Context) error {
	if len(b.rows) == 0 {
		return nil
	}

	rows := b.rows
	b.rows = make([][]any, 0, b.size)

	if err := b.flush(ctx, rows); err != nil {
		return err
	}

	metrics.BatchesFlushed.Inc()

	return nil
}
