package quantize

import "github.com/hupe1980/spatialhash/internal/simd"

// SquaredDistance returns the squared Euclidean distance between two points
// of equal length. The arithmetic runs in the coordinate type, matching the
// exact comparison the radius query helper performs; narrow integer types can
// overflow for widely separated points, which callers avoid by sizing the
// coordinate type to their space.
//
// Plain []float32 and []float64 slices take a hardware-tuned kernel.
func SquaredDistance[C Number](a, b []C) C {
	switch av := any(a).(type) {
	case []float32:
		return C(simd.SquaredL2F32(av, any(b).([]float32)))
	case []float64:
		return C(simd.SquaredL2F64(av, any(b).([]float64)))
	}

	var total C
	for i := range a {
		d := a[i] - b[i]
		if b[i] > a[i] {
			// Keeps the difference non-negative for unsigned types.
			d = b[i] - a[i]
		}
		total += d * d
	}
	return total
}

// WithinBounds reports whether every coordinate of point lies inside the
// closed interval [lower_i, upper_i]. This is the exact bounding-box filter
// applied to bucket candidates after the coarse quantized lookup.
func WithinBounds[C Number](point, lower, upper []C) bool {
	for i := range point {
		if point[i] < lower[i] || point[i] > upper[i] {
			return false
		}
	}
	return true
}
