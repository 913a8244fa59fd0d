// Package quantize implements the fixed-point grid arithmetic that backs the
// spatial hash index: coordinate quantization, cell keys, cell hashing and
// grid-cell enumeration for range and radius queries.
//
// A Grid partitions continuous n-dimensional space into axis-aligned cubic
// cells whose edge length (the precision) is a power of two. Quantizing a
// coordinate truncates it to int64 and clears its low log2(precision) bits,
// so two coordinates land in the same cell iff they share the same half-open
// interval [k*precision, (k+1)*precision). For negative values the masking
// extends through two's complement arithmetic, which rounds toward negative
// infinity: with precision 8, -10 quantizes to -16.
//
// Cells are identified two ways:
//
//   - Cell/Key: the composite of all quantized coordinates, packed into an
//     opaque comparable Key. Structural equality, collision-free; this is
//     what the index uses as its bucket map key.
//   - Hasher: a scalar 64-bit hash mixed from the quantized coordinates in
//     dimension order. Distinct cells may collide; a collision only merges
//     two candidate sets and is always corrected by the exact filters in the
//     query helpers. Used by CellSet and available for caller bookkeeping.
//
// Radius enumeration circumscribes the hypersphere with its bounding
// hypercube, so the number of enumerated cells grows as
// O((2*radius/precision + 1)^D). In high dimensions the cube-to-sphere
// volume ratio inflates the candidate set accordingly; keep precision large
// relative to typical radii if D is big.
package quantize
