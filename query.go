package spatialhash

import (
	"time"

	"github.com/hupe1980/spatialhash/quantize"
)

// QueryBoundingBox returns the payloads of all entries inside the axis-aligned
// box spanned by lower and upper (inclusive on both ends). Candidate cells
// come from the range enumerator; every candidate entry is re-verified with
// the exact elementwise bounds test, so grid granularity never produces false
// positives.
//
// Results are not deduplicated: an entry inserted with a radius appears once
// per probed cell it is member of. Result order is unspecified.
func QueryBoundingBox[C quantize.Number, P comparable](ix *Index[C, P], lower, upper []C) ([]P, error) {
	start := time.Now()

	cells, err := ix.grid.CellsInRange(lower, upper)
	if err != nil {
		ix.opts.metrics.RecordQuery(time.Since(start), err)
		return nil, err
	}

	var result []P
	for _, cell := range cells {
		for _, e := range ix.Bucket(cell) {
			if quantize.WithinBounds(e.Point, lower, upper) {
				result = append(result, e.Payload)
			}
		}
	}

	ix.opts.metrics.RecordQuery(time.Since(start), nil)
	return result, nil
}

// QueryWithinDistance returns the payloads of all entries whose exact squared
// Euclidean distance to center is <= radius² (strict algebraic comparison, no
// epsilon). The candidate cells circumscribe the sphere with its bounding box,
// so the exact distance filter here is what makes the result precise.
//
// Same non-dedup and ordering caveats as QueryBoundingBox.
func QueryWithinDistance[C quantize.Number, P comparable](ix *Index[C, P], center []C, radius C) ([]P, error) {
	start := time.Now()

	cells, err := ix.grid.CellsWithinDistance(center, radius)
	if err != nil {
		ix.opts.metrics.RecordQuery(time.Since(start), err)
		return nil, err
	}

	radiusSquared := radius * radius

	var result []P
	for _, cell := range cells {
		for _, e := range ix.Bucket(cell) {
			if quantize.SquaredDistance(e.Point, center) <= radiusSquared {
				result = append(result, e.Payload)
			}
		}
	}

	ix.opts.metrics.RecordQuery(time.Since(start), nil)
	return result, nil
}

// Unique deduplicates payloads by identity, preserving first-seen order.
// Convenience for callers consuming multi-cell query results.
func Unique[P comparable](payloads []P) []P {
	if len(payloads) < 2 {
		return payloads
	}
	seen := make(map[P]struct{}, len(payloads))
	out := payloads[:0:0]
	for _, p := range payloads {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
