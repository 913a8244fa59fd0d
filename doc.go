// Package spatialhash provides an embedded n-dimensional spatial hash index
// for Go.
//
// Points (or axis-aligned regions with a radius of influence) in a continuous
// coordinate space are bucketed into grid cells, so bounding-box and radius
// queries cost time proportional to the candidates they touch rather than the
// total population:
//
//   - Generic over coordinate type (any integer or float) and payload type
//   - Power-of-two cell size with branch-free fixed-point quantization
//   - Radius-extent insertion: an object is member of every cell its bounding
//     region overlaps, so neighbor-cell queries never miss it
//   - Exact secondary filters (inclusive bounds, squared distance) remove the
//     false positives of grid granularity
//   - Recursive composition: an index can be the payload of another index
//
// # Quick Start
//
// Create a 2-dimensional index over float64 coordinates with *Player payloads
// and a cell edge length of 16:
//
//	idx, err := spatialhash.New[float64, *Player](2, 16)
//	if err != nil {
//	    panic(err)
//	}
//
//	_ = idx.Add([]float64{24.4, 20.0}, alice)
//	_ = idx.Add([]float64{30.2, 18.1}, bob)
//
//	near, _ := spatialhash.QueryWithinDistance(idx, []float64{25, 20}, 10)
//	inBox, _ := spatialhash.QueryBoundingBox(idx, []float64{0, 0}, []float64{30, 40})
//
// Objects with spatial extent replicate into every overlapped cell:
//
//	cells, _ := idx.AddWithRadius([]float64{15, 15}, door, 4)
//	// keep cells to hand back to RemoveWithRadius/MoveWithRadius
//
// # Semantics worth knowing
//
// Queries return candidates' payloads without deduplication: an entry inserted
// with a radius appears once per probed cell it is member of. Dedupe by payload
// identity (see Unique) when uniqueness matters.
//
// Coordinate matching in RemoveAt and Move uses an absolute machine-epsilon
// tolerance for floating point types. The tolerance is not scaled to the
// coordinate magnitude: it is effectively exact for large values and loose for
// tiny ones.
//
// The move fast path (old and new point share a cell) performs no mutation and
// leaves the stored exact coordinates untouched.
//
// # Concurrency
//
// The index is not internally synchronized. It follows a single-writer model:
// concurrent readers are safe only while no writer is active, and any
// concurrent mutation requires external synchronization by the caller.
// BatchAdd parallelizes only the pure quantization phase; all map mutation
// stays on the calling goroutine.
package spatialhash
