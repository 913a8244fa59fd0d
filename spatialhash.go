package spatialhash

import (
	"iter"
	"slices"
	"time"

	"github.com/hupe1980/spatialhash/quantize"
)

// Entry pairs a stored point with its payload. The point is the original,
// unquantized coordinate; the payload is an opaque, non-owning reference to
// caller-owned data (or struct{} for index-only use). The caller must remove
// an entry before destroying the object its payload refers to.
type Entry[C quantize.Number, P comparable] struct {
	Point   []C
	Payload P
}

// bucket is the ordered entry collection of one grid cell. Buckets exist only
// while they hold entries; the last removal prunes the bucket from the map.
type bucket[C quantize.Number, P comparable] struct {
	cell    quantize.Cell
	entries []Entry[C, P]
}

// Index is an n-dimensional spatial hash. It owns its bucket map and stored
// point copies exclusively; payload references are non-owning.
//
// Index is not internally synchronized (single-writer model, see package doc).
type Index[C quantize.Number, P comparable] struct {
	grid    *quantize.Grid[C]
	buckets map[quantize.Key]*bucket[C, P]
	size    int
	opts    options
}

// New creates an empty index with the given dimension count and cell
// precision. Precision must be a positive power of two and dimensions must be
// > 0; violations are configuration errors reported immediately.
func New[C quantize.Number, P comparable](dimensions int, precision int64, optFns ...Option) (*Index[C, P], error) {
	grid, err := quantize.NewGrid[C](dimensions, precision)
	if err != nil {
		return nil, err
	}

	opts := applyOptions(optFns)
	opts.logger = opts.logger.WithDimensions(dimensions).WithPrecision(precision)

	return &Index[C, P]{
		grid:    grid,
		buckets: make(map[quantize.Key]*bucket[C, P]),
		opts:    opts,
	}, nil
}

// Grid returns the quantization grid backing the index.
func (ix *Index[C, P]) Grid() *quantize.Grid[C] { return ix.grid }

// Len returns the total number of stored entries. Entries inserted with a
// radius count once per cell they are member of.
func (ix *Index[C, P]) Len() int { return ix.size }

// CellCount returns the number of non-empty cells.
func (ix *Index[C, P]) CellCount() int { return len(ix.buckets) }

// Add appends (point, payload) to the cell containing point, creating the
// bucket if absent. No dedup: adding the same point twice yields two entries.
func (ix *Index[C, P]) Add(point []C, payload P) error {
	start := time.Now()

	cell, err := ix.grid.Quantize(point)
	if err != nil {
		ix.opts.metrics.RecordAdd(time.Since(start), err)
		return err
	}
	ix.insert(cell, point, payload)

	ix.opts.metrics.RecordAdd(time.Since(start), nil)
	ix.opts.logger.Debug("add", "cell", cell.String())
	return nil
}

// AddWithRadius appends (point, payload) to every cell overlapped by the
// axis-aligned box [point-radius, point+radius], so queries centered in a
// neighboring cell still find the object. The touched cells are returned;
// callers keep them to avoid recomputation on the matching remove/move.
//
// The number of overlapped cells is bounded by (2*radius/precision + 1)^D.
func (ix *Index[C, P]) AddWithRadius(point []C, payload P, radius C) ([]quantize.Cell, error) {
	start := time.Now()

	cells, err := ix.grid.CellsWithinDistance(point, radius)
	if err != nil {
		ix.opts.metrics.RecordAdd(time.Since(start), err)
		return nil, err
	}
	for _, cell := range cells {
		ix.insert(cell, point, payload)
	}

	ix.opts.metrics.RecordAdd(time.Since(start), nil)
	ix.opts.logger.WithCellCount(len(cells)).Debug("add with radius")
	return cells, nil
}

// Query returns the full bucket containing point's cell, or an empty result
// if none exists. The result holds candidates sharing the cell, not
// necessarily points coincident with the query; use the package-level query
// helpers for exact filtering.
//
// The returned slice is a read-only view owned by the index. It must not be
// mutated and is invalidated by subsequent index mutations.
func (ix *Index[C, P]) Query(point []C) ([]Entry[C, P], error) {
	start := time.Now()

	cell, err := ix.grid.Quantize(point)
	if err != nil {
		ix.opts.metrics.RecordQuery(time.Since(start), err)
		return nil, err
	}

	var entries []Entry[C, P]
	if b, ok := ix.buckets[cell.Key()]; ok {
		entries = b.entries
	}

	ix.opts.metrics.RecordQuery(time.Since(start), nil)
	return entries, nil
}

// Bucket returns the entries of the given cell, if any. Same view semantics
// as Query.
func (ix *Index[C, P]) Bucket(cell quantize.Cell) []Entry[C, P] {
	if b, ok := ix.buckets[cell.Key()]; ok {
		return b.entries
	}
	return nil
}

// Buckets iterates over all non-empty cells and their entries, in no
// particular order. The index must not be mutated during iteration.
func (ix *Index[C, P]) Buckets() iter.Seq2[quantize.Cell, []Entry[C, P]] {
	return func(yield func(quantize.Cell, []Entry[C, P]) bool) {
		for _, b := range ix.buckets {
			if !yield(b.cell, b.entries) {
				return
			}
		}
	}
}

// RemoveAt removes the first entry in point's bucket whose stored point
// matches point — exactly for integer coordinates, within an absolute
// machine-epsilon tolerance for floating point ones. Reports whether an
// entry was removed; removing from an absent bucket is not an error.
func (ix *Index[C, P]) RemoveAt(point []C) (bool, error) {
	start := time.Now()

	_, removed, err := ix.takeAt(point)

	ix.opts.metrics.RecordRemove(time.Since(start), err)
	return removed, err
}

// Remove removes the first entry in point's bucket whose payload equals
// payload. Reports whether an entry was removed.
func (ix *Index[C, P]) Remove(payload P, point []C) (bool, error) {
	start := time.Now()

	cell, err := ix.grid.Quantize(point)
	if err != nil {
		ix.opts.metrics.RecordRemove(time.Since(start), err)
		return false, err
	}
	removed := ix.removeFirst(cell.Key(), func(e Entry[C, P]) bool {
		return e.Payload == payload
	})

	ix.opts.metrics.RecordRemove(time.Since(start), nil)
	return removed, nil
}

// RemoveWithRadius recomputes the cells overlapped by [point-radius,
// point+radius] and removes the first payload-matching entry from each,
// pruning emptied buckets. Reports whether at least one removal occurred.
func (ix *Index[C, P]) RemoveWithRadius(payload P, point []C, radius C) (bool, error) {
	start := time.Now()

	cells, err := ix.grid.CellsWithinDistance(point, radius)
	if err != nil {
		ix.opts.metrics.RecordRemove(time.Since(start), err)
		return false, err
	}

	removed := false
	for _, cell := range cells {
		if ix.removeFirst(cell.Key(), func(e Entry[C, P]) bool { return e.Payload == payload }) {
			removed = true
		}
	}

	ix.opts.metrics.RecordRemove(time.Since(start), nil)
	return removed, nil
}

// Move relocates the first coordinate-matching entry from oldPoint's bucket
// to newPoint's bucket, carrying its payload along. Fast path: when both
// points quantize to the same cell no mutation occurs and Move reports false
// — the entry already resides in the only relevant bucket. The fast path
// deliberately leaves the stored exact coordinates untouched.
//
// Otherwise Move reports whether the underlying removal succeeded.
func (ix *Index[C, P]) Move(oldPoint, newPoint []C) (bool, error) {
	start := time.Now()

	same, err := ix.grid.SameCell(oldPoint, newPoint)
	if err != nil {
		ix.opts.metrics.RecordMove(time.Since(start), err)
		return false, err
	}
	if same {
		ix.opts.metrics.RecordMove(time.Since(start), nil)
		return false, nil
	}

	entry, removed, err := ix.takeAt(oldPoint)
	if err != nil || !removed {
		ix.opts.metrics.RecordMove(time.Since(start), err)
		return false, err
	}

	cell, err := ix.grid.Quantize(newPoint)
	if err != nil {
		// Unreachable once oldPoint validated; both share the index dimension.
		ix.opts.metrics.RecordMove(time.Since(start), err)
		return false, err
	}
	ix.insert(cell, newPoint, entry.Payload)

	ix.opts.metrics.RecordMove(time.Since(start), nil)
	return true, nil
}

// MovePayload relocates the entry identified by payload from oldPoint's
// bucket to newPoint's bucket. Same fast-path semantics as Move.
func (ix *Index[C, P]) MovePayload(payload P, oldPoint, newPoint []C) (bool, error) {
	start := time.Now()

	same, err := ix.grid.SameCell(oldPoint, newPoint)
	if err != nil {
		ix.opts.metrics.RecordMove(time.Since(start), err)
		return false, err
	}
	if same {
		ix.opts.metrics.RecordMove(time.Since(start), nil)
		return false, nil
	}

	removed, err := ix.Remove(payload, oldPoint)
	if err != nil || !removed {
		ix.opts.metrics.RecordMove(time.Since(start), err)
		return false, err
	}
	if err := ix.Add(newPoint, payload); err != nil {
		ix.opts.metrics.RecordMove(time.Since(start), err)
		return false, err
	}

	ix.opts.metrics.RecordMove(time.Since(start), nil)
	return true, nil
}

// MoveWithRadius updates the cell memberships of a radius-sized object,
// returning the cell set for the new position. Early-outs, cheapest first:
// identical coordinates return the existing cell set untouched; when old and
// new cell sets are set-equal no mutation occurs either. Otherwise the
// payload is removed from every vacated cell and inserted into every newly
// covered one.
func (ix *Index[C, P]) MoveWithRadius(payload P, radius C, oldPoint, newPoint []C) ([]quantize.Cell, error) {
	start := time.Now()

	if len(oldPoint) == len(newPoint) && pointsMatch(oldPoint, newPoint) {
		cells, err := ix.grid.CellsWithinDistance(oldPoint, radius)
		ix.opts.metrics.RecordMove(time.Since(start), err)
		return cells, err
	}

	same, err := ix.grid.SameCell(oldPoint, newPoint)
	if err != nil {
		ix.opts.metrics.RecordMove(time.Since(start), err)
		return nil, err
	}
	if same {
		// Same home cell, but the covered neighborhoods may still differ.
		newCells, err := ix.grid.CellsWithinDistance(newPoint, radius)
		if err != nil {
			ix.opts.metrics.RecordMove(time.Since(start), err)
			return nil, err
		}
		oldCells, err := ix.grid.CellsWithinDistance(oldPoint, radius)
		if err != nil {
			ix.opts.metrics.RecordMove(time.Since(start), err)
			return nil, err
		}
		if cellsEqual(oldCells, newCells) {
			ix.opts.metrics.RecordMove(time.Since(start), nil)
			return newCells, nil
		}
	}

	if _, err := ix.RemoveWithRadius(payload, oldPoint, radius); err != nil {
		ix.opts.metrics.RecordMove(time.Since(start), err)
		return nil, err
	}
	cells, err := ix.AddWithRadius(newPoint, payload, radius)

	ix.opts.metrics.RecordMove(time.Since(start), err)
	return cells, err
}

// CellSet builds a set over the given cells using the index's configured
// hasher. Convenience for callers tracking the cell memberships returned by
// the radius operations.
func (ix *Index[C, P]) CellSet(cells ...quantize.Cell) *quantize.CellSet {
	return quantize.NewCellSet(ix.opts.hasher, cells...)
}

// Clear drops all buckets.
func (ix *Index[C, P]) Clear() {
	ix.buckets = make(map[quantize.Key]*bucket[C, P])
	ix.size = 0
}

// insert appends an entry to cell's bucket, creating the bucket if needed.
// The point is copied; the index owns its stored coordinates by value.
func (ix *Index[C, P]) insert(cell quantize.Cell, point []C, payload P) {
	key := cell.Key()
	b, ok := ix.buckets[key]
	if !ok {
		b = &bucket[C, P]{cell: cell}
		ix.buckets[key] = b
	}
	b.entries = append(b.entries, Entry[C, P]{
		Point:   slices.Clone(point),
		Payload: payload,
	})
	ix.size++
}

// takeAt removes and returns the first coordinate-matching entry of point's
// bucket.
func (ix *Index[C, P]) takeAt(point []C) (Entry[C, P], bool, error) {
	var zero Entry[C, P]

	cell, err := ix.grid.Quantize(point)
	if err != nil {
		return zero, false, err
	}

	key := cell.Key()
	b, ok := ix.buckets[key]
	if !ok {
		return zero, false, nil
	}
	for i, e := range b.entries {
		if pointsMatch(e.Point, point) {
			ix.deleteEntry(key, b, i)
			return e, true, nil
		}
	}
	return zero, false, nil
}

// removeFirst removes the first entry of key's bucket accepted by match,
// pruning the bucket if it empties.
func (ix *Index[C, P]) removeFirst(key quantize.Key, match func(Entry[C, P]) bool) bool {
	b, ok := ix.buckets[key]
	if !ok {
		return false
	}
	for i, e := range b.entries {
		if match(e) {
			ix.deleteEntry(key, b, i)
			return true
		}
	}
	return false
}

// cellsEqual compares two enumerator outputs elementwise. The range walk is
// deterministic, so equal coverage yields identical slices in identical
// order; the comparison is exact and collision-free.
func cellsEqual(a, b []quantize.Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func (ix *Index[C, P]) deleteEntry(key quantize.Key, b *bucket[C, P], i int) {
	b.entries = slices.Delete(b.entries, i, i+1)
	ix.size--
	if len(b.entries) == 0 {
		delete(ix.buckets, key)
	}
}
