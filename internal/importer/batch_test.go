package importer

import (
	"context"
	"errors"
	"testing"
)

// countingFlush records each flush's row count.
func countingFlush(flushes *[]int) func(context.Context, [][]any) error {
	return func(_ context.Context, rows [][]any) error {
		*flushes = append(*flushes, len(rows))
		return nil
	}
}

func feed(t *testing.T, b *batch, n int) {
	t.Helper()

	ctx := context.Background()

	for i := 0; i < n; i++ {
		if err := b.Add(ctx, []any{i}); err != nil {
			t.Fatalf("Add row %d: %v", i, err)
		}
	}

	if err := b.Flush(ctx); err != nil {
		t.Fatalf("final Flush: %v", err)
	}
}

func TestBatchFlushBoundaries(t *testing.T) {
	tests := []struct {
		name string
		rows int
		want []int
	}{
		// One below the threshold: everything rides the final flush.
		{"partial", 999, []int{999}},
		// Exact multiple: flushed on threshold, final flush is a no-op.
		{"exact", 1000, []int{1000}},
		// One over: threshold flush plus a remainder of one.
		{"overflow", 1001, []int{1000, 1}},
		{"empty", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flushes []int

			b := newBatch(1000, countingFlush(&flushes))
			feed(t, b, tt.rows)

			if len(flushes) != len(tt.want) {
				t.Fatalf("got %d flushes %v, want %v", len(flushes), flushes, tt.want)
			}

			total := 0
			for i, n := range flushes {
				if n != tt.want[i] {
					t.Errorf("flush %d carried %d rows, want %d", i, n, tt.want[i])
				}
				total += n
			}

			if total != tt.rows {
				t.Errorf("flushed %d rows total, want %d", total, tt.rows)
			}
		})
	}
}

func TestBatchThresholdOne(t *testing.T) {
	var flushes []int

	b := newBatch(1, countingFlush(&flushes))
	feed(t, b, 3)

	if len(flushes) != 3 {
		t.Fatalf("got %d flushes, want 3 (one per row)", len(flushes))
	}
}

func TestBatchClampsInvalidSize(t *testing.T) {
	var flushes []int

	b := newBatch(0, countingFlush(&flushes))
	feed(t, b, 2)

	if len(flushes) != 2 {
		t.Fatalf("got %d flushes, want 2 (size clamped to 1)", len(flushes))
	}
}

func TestBatchPropagatesFlushError(t *testing.T) {
	wantErr := errors.New("insert failed")
	b := newBatch(2, func(context.Context, [][]any) error { return wantErr })

	ctx := context.Background()

	if err := b.Add(ctx, []any{1}); err != nil {
		t.Fatalf("first Add: %v", err)
	}

	if err := b.Add(ctx, []any{2}); !errors.Is(err, wantErr) {
		t.Fatalf("second Add: got %v, want flush error", err)
	}
}
