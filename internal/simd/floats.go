package simd

var (
	squaredL2F32Impl = squaredL2F32Generic
	squaredL2F64Impl = squaredL2F64Generic
)

// initKernels binds kernel implementations for the active ISA. Called from
// initCapabilities after feature detection (and by tests to re-bind after
// forcing an ISA).
func initKernels() {
	switch activeISA {
	case NEON, AVX2, AVX512:
		// Wide cores hide the latency of independent accumulator chains;
		// the 4-way unrolled kernels saturate them without asm.
		squaredL2F32Impl = squaredL2F32Unroll4
		squaredL2F64Impl = squaredL2F64Unroll4
	default:
		squaredL2F32Impl = squaredL2F32Generic
		squaredL2F64Impl = squaredL2F64Generic
	}
}

// SquaredL2F32 calculates the squared L2 distance between two float32 points.
//
// SAFETY: This function assumes len(a) == len(b).
// It does NOT perform bounds checks for performance reasons.
// Callers MUST ensure lengths match to avoid buffer over-reads.
func SquaredL2F32(a, b []float32) float32 {
	return squaredL2F32Impl(a, b)
}

// SquaredL2F64 calculates the squared L2 distance between two float64 points.
//
// SAFETY: This function assumes len(a) == len(b).
// It does NOT perform bounds checks for performance reasons.
// Callers MUST ensure lengths match to avoid buffer over-reads.
func SquaredL2F64(a, b []float64) float64 {
	return squaredL2F64Impl(a, b)
}

func squaredL2F32Generic(a, b []float32) float32 {
	var total float32
	for i := range a {
		d := a[i] - b[i]
		total += d * d
	}
	return total
}

func squaredL2F64Generic(a, b []float64) float64 {
	var total float64
	for i := range a {
		d := a[i] - b[i]
		total += d * d
	}
	return total
}

func squaredL2F32Unroll4(a, b []float32) float32 {
	var s0, s1, s2, s3 float32
	i := 0
	for ; i+4 <= len(a); i += 4 {
		d0 := a[i] - b[i]
		d1 := a[i+1] - b[i+1]
		d2 := a[i+2] - b[i+2]
		d3 := a[i+3] - b[i+3]
		s0 += d0 * d0
		s1 += d1 * d1
		s2 += d2 * d2
		s3 += d3 * d3
	}
	for ; i < len(a); i++ {
		d := a[i] - b[i]
		s0 += d * d
	}
	return s0 + s1 + s2 + s3
}

func squaredL2F64Unroll4(a, b []float64) float64 {
	var s0, s1, s2, s3 float64
	i := 0
	for ; i+4 <= len(a); i += 4 {
		d0 := a[i] - b[i]
		d1 := a[i+1] - b[i+1]
		d2 := a[i+2] - b[i+2]
		d3 := a[i+3] - b[i+3]
		s0 += d0 * d0
		s1 += d1 * d1
		s2 += d2 * d2
		s3 += d3 * d3
	}
	for ; i < len(a); i++ {
		d := a[i] - b[i]
		s0 += d * d
	}
	return s0 + s1 + s2 + s3
}
