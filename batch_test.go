package spatialhash

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/spatialhash/testutil"
)

func TestBatchAdd(t *testing.T) {
	t.Run("InsertsAllItems", func(t *testing.T) {
		idx, err := New[float64, int](3, 16)
		require.NoError(t, err)

		rng := testutil.NewRNG(42)
		points := testutil.RandomPoints(rng, 500, 3, 1000)

		items := make([]Item[float64, int], len(points))
		for i, p := range points {
			items[i] = Item[float64, int]{Point: p, Payload: i}
		}

		require.NoError(t, idx.BatchAdd(context.Background(), items))
		assert.Equal(t, 500, idx.Len())

		// Spot check: each sampled item is findable at its own point.
		for _, i := range []int{0, 123, 499} {
			entries, err := idx.Query(points[i])
			require.NoError(t, err)

			found := false
			for _, e := range entries {
				if e.Payload == items[i].Payload {
					found = true
					break
				}
			}
			assert.True(t, found, "item %d missing from its bucket", i)
		}
	})

	t.Run("AllOrNothingOnDimensionMismatch", func(t *testing.T) {
		idx, err := New[float64, int](2, 16)
		require.NoError(t, err)

		items := []Item[float64, int]{
			{Point: []float64{1, 1}, Payload: 1},
			{Point: []float64{2, 2, 2}, Payload: 2}, // wrong dimension
			{Point: []float64{3, 3}, Payload: 3},
		}

		var dmErr *ErrDimensionMismatch
		require.ErrorAs(t, idx.BatchAdd(context.Background(), items), &dmErr)
		assert.Equal(t, 0, idx.Len(), "failed batch must not mutate the index")
		assert.Equal(t, 0, idx.CellCount())
	})

	t.Run("CancelledContext", func(t *testing.T) {
		idx, err := New[float64, int](2, 16)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		items := []Item[float64, int]{{Point: []float64{1, 1}, Payload: 1}}
		require.ErrorIs(t, idx.BatchAdd(ctx, items), context.Canceled)
		assert.Equal(t, 0, idx.Len())
	})

	t.Run("RecordsTimedMetrics", func(t *testing.T) {
		mc := &BasicMetricsCollector{}
		idx, err := New[float64, int](2, 16, WithMetricsCollector(mc))
		require.NoError(t, err)

		items := []Item[float64, int]{
			{Point: []float64{1, 1}, Payload: 1},
			{Point: []float64{2, 2}, Payload: 2},
			{Point: []float64{30, 30}, Payload: 3},
		}
		require.NoError(t, idx.BatchAdd(context.Background(), items))

		stats := mc.GetStats()
		assert.Equal(t, int64(1), stats.BatchAddCount)
		assert.Equal(t, int64(3), stats.BatchAddItems)
		assert.Equal(t, int64(0), stats.BatchAddFailed)
		assert.GreaterOrEqual(t, stats.BatchAddAvgNanos, int64(0))
	})

	t.Run("EmptyBatch", func(t *testing.T) {
		idx, err := New[float64, int](2, 16)
		require.NoError(t, err)
		require.NoError(t, idx.BatchAdd(context.Background(), nil))
		assert.Equal(t, 0, idx.Len())
	})
}
