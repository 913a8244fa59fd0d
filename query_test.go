package spatialhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryBoundingBox(t *testing.T) {
	newIndex := func(t *testing.T) *Index[float64, *testObject] {
		t.Helper()
		idx, err := New[float64, *testObject](2, 16)
		require.NoError(t, err)
		return idx
	}

	t.Run("ExactFilterOverridesCellGranularity", func(t *testing.T) {
		idx := newIndex(t)

		a := &testObject{1, "a"}
		b := &testObject{2, "b"}
		c := &testObject{3, "c"}
		require.NoError(t, idx.Add([]float64{24.4, 20.0}, a))
		require.NoError(t, idx.Add([]float64{30.2, 18.1}, b))
		require.NoError(t, idx.Add([]float64{50.0, 40.0}, c))

		// a and b share cell (16,16); c lives in (48,32).
		got, err := QueryBoundingBox(idx, []float64{0, 0}, []float64{31, 40})
		require.NoError(t, err)
		assert.ElementsMatch(t, []*testObject{a, b}, got)

		// Tightening the upper x bound to 30 drops b (30.2 > 30) even though
		// its cell is still probed.
		got, err = QueryBoundingBox(idx, []float64{0, 0}, []float64{30, 40})
		require.NoError(t, err)
		assert.ElementsMatch(t, []*testObject{a}, got)

		// c's cell is outside the probed range either way.
		got, err = QueryBoundingBox(idx, []float64{0, 0}, []float64{47, 40})
		require.NoError(t, err)
		assert.NotContains(t, got, c)
	})

	t.Run("BoundsAreInclusive", func(t *testing.T) {
		idx := newIndex(t)

		edge := &testObject{1, "edge"}
		require.NoError(t, idx.Add([]float64{30, 40}, edge))

		got, err := QueryBoundingBox(idx, []float64{0, 0}, []float64{30, 40})
		require.NoError(t, err)
		assert.ElementsMatch(t, []*testObject{edge}, got)
	})

	t.Run("EmptyRegion", func(t *testing.T) {
		idx := newIndex(t)
		require.NoError(t, idx.Add([]float64{500, 500}, &testObject{1, "far"}))

		got, err := QueryBoundingBox(idx, []float64{0, 0}, []float64{100, 100})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("RadiusEntriesAppearPerCell", func(t *testing.T) {
		idx := newIndex(t)

		obj := &testObject{1, "wide"}
		cells, err := idx.AddWithRadius([]float64{15, 15}, obj, 4)
		require.NoError(t, err)
		require.Len(t, cells, 4)

		got, err := QueryBoundingBox(idx, []float64{0, 0}, []float64{31, 31})
		require.NoError(t, err)
		// No dedup: one hit per member cell probed.
		assert.Len(t, got, 4)

		assert.Equal(t, []*testObject{obj}, Unique(got))
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		idx := newIndex(t)

		_, err := QueryBoundingBox(idx, []float64{0}, []float64{1, 1})
		var dmErr *ErrDimensionMismatch
		require.ErrorAs(t, err, &dmErr)
	})
}

func TestQueryWithinDistance(t *testing.T) {
	t.Run("StrictSquaredDistanceBoundary", func(t *testing.T) {
		idx, err := New[float64, *testObject](2, 16)
		require.NoError(t, err)

		obj := &testObject{1, "pt"}
		require.NoError(t, idx.Add([]float64{3, 4}, obj))

		// Distance from origin is exactly 5: included at radius 5,
		// excluded just below.
		got, err := QueryWithinDistance(idx, []float64{0, 0}, 5)
		require.NoError(t, err)
		assert.ElementsMatch(t, []*testObject{obj}, got)

		got, err = QueryWithinDistance(idx, []float64{0, 0}, 4.999)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("CornerCandidateRejected", func(t *testing.T) {
		idx, err := New[float64, *testObject](2, 16)
		require.NoError(t, err)

		// (7,7) sits in the corner of the cell the search box probes, but
		// its distance to the origin (~9.9) exceeds the radius.
		corner := &testObject{1, "corner"}
		require.NoError(t, idx.Add([]float64{7, 7}, corner))

		got, err := QueryWithinDistance(idx, []float64{0, 0}, 7)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("IntCoordinates", func(t *testing.T) {
		idx, err := New[int, *testObject](2, 8)
		require.NoError(t, err)

		near := &testObject{1, "near"}
		far := &testObject{2, "far"}
		require.NoError(t, idx.Add([]int{1, 1}, near))
		require.NoError(t, idx.Add([]int{10, 10}, far))

		got, err := QueryWithinDistance(idx, []int{0, 0}, 3)
		require.NoError(t, err)
		assert.ElementsMatch(t, []*testObject{near}, got)
	})

	t.Run("EmptyIndex", func(t *testing.T) {
		idx, err := New[float64, *testObject](3, 16)
		require.NoError(t, err)

		got, err := QueryWithinDistance(idx, []float64{0, 0, 0}, 100)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		idx, err := New[float64, *testObject](2, 16)
		require.NoError(t, err)

		_, err = QueryWithinDistance(idx, []float64{0, 0, 0}, 5)
		var dmErr *ErrDimensionMismatch
		require.ErrorAs(t, err, &dmErr)
	})
}

func TestUnique(t *testing.T) {
	a := &testObject{1, "a"}
	b := &testObject{2, "b"}

	assert.Equal(t, []*testObject{a, b}, Unique([]*testObject{a, b, a, a, b}))
	assert.Equal(t, []*testObject{a}, Unique([]*testObject{a}))
	assert.Empty(t, Unique([]*testObject(nil)))
}
