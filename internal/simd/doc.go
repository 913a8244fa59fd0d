// Package simd selects hardware-tuned kernels for the exact geometric
// filters applied to bucket candidates.
//
// Kernel selection happens once at package init based on detected CPU
// features, with an optional SPATIALHASH_SIMD environment override
// (generic, neon, avx2, avx512). All kernels share one contract with the
// generic scalar fallback and are verified by the same tests; they are a
// pure performance optimization with no semantic effect.
package simd
