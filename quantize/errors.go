package quantize

import "fmt"

// ErrInvalidPrecision indicates a precision that is not a positive power of two.
type ErrInvalidPrecision struct {
	Precision int64
}

func (e *ErrInvalidPrecision) Error() string {
	return fmt.Sprintf("invalid precision: %d (must be a positive power of two)", e.Precision)
}

// ErrInvalidDimension indicates an invalid configured dimension count.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

// ErrDimensionMismatch indicates a point whose length does not match the
// grid's configured dimension count.
type ErrDimensionMismatch struct {
	Expected int // Expected dimensions
	Actual   int // Actual dimensions
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
