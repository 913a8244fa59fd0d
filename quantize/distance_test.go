package quantize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquaredDistance(t *testing.T) {
	t.Run("Float64", func(t *testing.T) {
		assert.InDelta(t, 25.0, SquaredDistance([]float64{0, 0}, []float64{3, 4}), 1e-12)
		assert.InDelta(t, 0.0, SquaredDistance([]float64{1.5, -2.5}, []float64{1.5, -2.5}), 1e-12)
	})

	t.Run("Float32", func(t *testing.T) {
		assert.InDelta(t, 25.0, float64(SquaredDistance([]float32{0, 3}, []float32{4, 0})), 1e-5)
	})

	t.Run("Int", func(t *testing.T) {
		assert.Equal(t, 50, SquaredDistance([]int{-3, 4}, []int{2, 9}))
	})

	t.Run("UnsignedIsSymmetric", func(t *testing.T) {
		a := []uint32{1, 10}
		b := []uint32{4, 2}
		assert.Equal(t, uint32(73), SquaredDistance(a, b))
		assert.Equal(t, SquaredDistance(a, b), SquaredDistance(b, a))
	})
}

func TestWithinBounds(t *testing.T) {
	lower := []float64{0, 0}
	upper := []float64{30, 40}

	assert.True(t, WithinBounds([]float64{24.4, 20.0}, lower, upper))
	// Bounds are inclusive on both ends.
	assert.True(t, WithinBounds([]float64{0, 40}, lower, upper))
	assert.True(t, WithinBounds([]float64{30, 0}, lower, upper))

	assert.False(t, WithinBounds([]float64{30.2, 18.1}, lower, upper))
	assert.False(t, WithinBounds([]float64{-0.1, 20}, lower, upper))
}
