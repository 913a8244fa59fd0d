package quantize

import "math/bits"

// Number is the constraint for coordinate scalar types. Any integer or
// floating point type may be used as a coordinate.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Value quantizes a single coordinate to the grid defined by precision.
//
// The value is converted to int64 (truncating toward zero for floating point
// input) and its low log2(precision) bits are cleared. Bit masking is used
// instead of division; for negative inputs the two's complement mask rounds
// toward negative infinity.
//
// Precondition: precision is a positive power of two. Callers go through
// Grid, which validates precision at construction; Value itself does not
// re-check on the hot path.
//
// Value is monotonic: a <= b implies Value(a) <= Value(b).
func Value[C Number](value C, precision int64) int64 {
	return int64(value) &^ (precision - 1)
}

// Point quantizes every coordinate of point, returning the containing cell.
func Point[C Number](point []C, precision int64) Cell {
	cell := make(Cell, len(point))
	for i, v := range point {
		cell[i] = Value(v, precision)
	}
	return cell
}

// Shift returns log2(precision), the number of low bits cleared by Value.
func Shift(precision int64) uint {
	return uint(bits.TrailingZeros64(uint64(precision)))
}

// ValidatePrecision reports whether precision is usable as a grid cell size.
func ValidatePrecision(precision int64) error {
	if precision <= 0 || precision&(precision-1) != 0 {
		return &ErrInvalidPrecision{Precision: precision}
	}
	return nil
}
