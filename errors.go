package spatialhash

import "github.com/hupe1980/spatialhash/quantize"

// Configuration mistakes (bad precision or dimensionality) surface as the
// quantize package's error types; the aliases below let callers match them
// without importing quantize. Not-found conditions are never errors: they are
// empty results or a false return.
type (
	// ErrInvalidPrecision indicates a precision that is not a positive power of two.
	ErrInvalidPrecision = quantize.ErrInvalidPrecision

	// ErrInvalidDimension indicates an invalid configured dimension count.
	ErrInvalidDimension = quantize.ErrInvalidDimension

	// ErrDimensionMismatch indicates a point whose length does not match the
	// index's fixed dimension count.
	ErrDimensionMismatch = quantize.ErrDimensionMismatch
)
