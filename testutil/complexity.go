package testutil

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Complexity classifies empirical growth of execution time with input size,
// from fastest to slowest.
type Complexity int

const (
	// ComplexityError means the estimation failed (bad input).
	ComplexityError Complexity = iota
	// O1 is constant time.
	O1
	// OLogN is logarithmic time.
	OLogN
	// ON is linear time.
	ON
	// ONLogN is linearithmic time.
	ONLogN
	// ON2 is quadratic time.
	ON2
	// OUnknown means no candidate model fit the samples.
	OUnknown
)

// String returns the conventional Big-O notation for the class.
func (c Complexity) String() string {
	switch c {
	case ComplexityError:
		return "error"
	case O1:
		return "O(1)"
	case OLogN:
		return "O(log n)"
	case ON:
		return "O(n)"
	case ONLogN:
		return "O(n log n)"
	case ON2:
		return "O(n^2)"
	default:
		return "unknown"
	}
}

// MeasureExecutionTime returns the seconds taken by fn for one input size.
// setup runs before each timed execution and is excluded from the
// measurement. Wall-clock sampling is fuzzy (scheduler, caches, co-tenants),
// so the run repeats `repetitions` times and the lowest time wins; callers
// compare the result against the next-greater complexity class rather than an
// absolute bound.
func MeasureExecutionTime(setup, fn func(n int), n, repetitions int) float64 {
	if repetitions < 1 {
		repetitions = 1
	}
	best := math.MaxFloat64
	for i := 0; i < repetitions; i++ {
		if setup != nil {
			setup(n)
		}
		start := time.Now()
		fn(n)
		elapsed := time.Since(start).Seconds()
		if elapsed < best {
			best = elapsed
		}
	}
	return best
}

// EstimateComplexity classifies how times grow with sizes by fitting each
// candidate growth model with least squares and keeping the best-correlated
// one. At least three samples are required; mismatched or too-short inputs
// return ComplexityError.
func EstimateComplexity(sizes []int, times []float64) Complexity {
	if len(sizes) != len(times) || len(sizes) < 3 {
		return ComplexityError
	}
	for _, t := range times {
		if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
			return ComplexityError
		}
	}

	// Constant time shows as low dispersion relative to the mean, which no
	// regression against a growing model can capture.
	mean, std := stat.MeanStdDev(times, nil)
	if mean == 0 {
		return O1
	}
	if std/mean < 0.35 {
		return O1
	}

	candidates := []struct {
		class Complexity
		model func(n float64) float64
	}{
		{OLogN, math.Log2},
		{ON, func(n float64) float64 { return n }},
		{ONLogN, func(n float64) float64 { return n * math.Log2(n) }},
		{ON2, func(n float64) float64 { return n * n }},
	}

	best := OUnknown
	bestR2 := 0.0
	x := make([]float64, len(sizes))
	for _, cand := range candidates {
		for i, n := range sizes {
			x[i] = cand.model(float64(n))
		}
		alpha, beta := stat.LinearRegression(x, times, nil, false)
		if beta <= 0 {
			// Time shrinking with size means noise, not growth.
			continue
		}
		r2 := stat.RSquared(x, times, nil, alpha, beta)
		if r2 > bestR2 {
			bestR2 = r2
			best = cand.class
		}
	}
	if bestR2 < 0.5 {
		return OUnknown
	}
	return best
}
