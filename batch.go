package spatialhash

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/spatialhash/quantize"
)

// Item pairs a point with its payload for batch insertion.
type Item[C quantize.Number, P comparable] struct {
	Point   []C
	Payload P
}

// BatchAdd inserts many items at once. The quantization of all points runs in
// parallel across worker goroutines (pure computation, no shared state); the
// bucket map is then mutated serially on the calling goroutine, preserving the
// single-writer model.
//
// The batch is all-or-nothing: a dimension mismatch in any item or a context
// cancellation aborts the whole call before any mutation happens.
func (ix *Index[C, P]) BatchAdd(ctx context.Context, items []Item[C, P]) error {
	start := time.Now()

	if len(items) == 0 {
		ix.opts.metrics.RecordBatchAdd(0, 0, time.Since(start))
		return nil
	}

	cells := make([]quantize.Cell, len(items))

	g, ctx := errgroup.WithContext(ctx)
	workers := runtime.GOMAXPROCS(0)
	if workers > len(items) {
		workers = len(items)
	}
	chunk := (len(items) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(items))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				cell, err := ix.grid.Quantize(items[i].Point)
				if err != nil {
					return err
				}
				cells[i] = cell
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		ix.opts.metrics.RecordBatchAdd(len(items), len(items), time.Since(start))
		return err
	}

	for i, item := range items {
		ix.insert(cells[i], item.Point, item.Payload)
	}

	ix.opts.metrics.RecordBatchAdd(len(items), 0, time.Since(start))
	ix.opts.logger.WithCellCount(len(items)).Debug("batch add")
	return nil
}
