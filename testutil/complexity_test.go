package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEstimateComplexity(t *testing.T) {
	sizes := []int{100, 1_000, 10_000, 100_000}

	t.Run("Constant", func(t *testing.T) {
		assert.Equal(t, O1, EstimateComplexity(sizes, []float64{1.0, 1.02, 0.98, 1.01}))
	})

	t.Run("Linear", func(t *testing.T) {
		assert.Equal(t, ON, EstimateComplexity(sizes, []float64{0.001, 0.01, 0.1, 1.0}))
	})

	t.Run("Quadratic", func(t *testing.T) {
		assert.Equal(t, ON2, EstimateComplexity(sizes, []float64{0.0001, 0.01, 1.0, 100.0}))
	})

	t.Run("TooFewSamples", func(t *testing.T) {
		assert.Equal(t, ComplexityError, EstimateComplexity([]int{1, 2}, []float64{1, 2}))
	})

	t.Run("MismatchedLengths", func(t *testing.T) {
		assert.Equal(t, ComplexityError, EstimateComplexity(sizes, []float64{1, 2, 3}))
	})

	t.Run("InvalidTimes", func(t *testing.T) {
		assert.Equal(t, ComplexityError, EstimateComplexity(sizes, []float64{1, -2, 3, 4}))
	})

	t.Run("AllZero", func(t *testing.T) {
		assert.Equal(t, O1, EstimateComplexity(sizes, []float64{0, 0, 0, 0}))
	})
}

func TestComplexity_String(t *testing.T) {
	assert.Equal(t, "O(1)", O1.String())
	assert.Equal(t, "O(log n)", OLogN.String())
	assert.Equal(t, "O(n)", ON.String())
	assert.Equal(t, "O(n log n)", ONLogN.String())
	assert.Equal(t, "O(n^2)", ON2.String())
	assert.Equal(t, "unknown", OUnknown.String())
	assert.Equal(t, "error", ComplexityError.String())
}

func TestMeasureExecutionTime(t *testing.T) {
	setups := 0
	elapsed := MeasureExecutionTime(
		func(int) { setups++ },
		func(int) { time.Sleep(time.Millisecond) },
		10, 3,
	)
	assert.Equal(t, 3, setups)
	assert.Greater(t, elapsed, 0.0)
	assert.Less(t, elapsed, 1.0)
}
