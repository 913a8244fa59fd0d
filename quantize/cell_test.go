package quantize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell_Key(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		for _, cell := range []Cell{{0}, {-16, 32}, {1, -1, 1 << 40}, {0, 0, 0, 0}} {
			require.Equal(t, cell, cell.Key().Cell())
		}
	})

	t.Run("StructuralEquality", func(t *testing.T) {
		assert.Equal(t, Cell{16, 16}.Key(), Cell{16, 16}.Key())
		assert.NotEqual(t, Cell{16, 16}.Key(), Cell{16, 32}.Key())
		// Dimension order matters.
		assert.NotEqual(t, Cell{0, 16}.Key(), Cell{16, 0}.Key())
	})
}

func TestCell_Equal(t *testing.T) {
	assert.True(t, Cell{1, 2, 3}.Equal(Cell{1, 2, 3}))
	assert.False(t, Cell{1, 2, 3}.Equal(Cell{1, 2, 4}))
	assert.False(t, Cell{1, 2}.Equal(Cell{1, 2, 3}))
}

func TestCell_String(t *testing.T) {
	assert.Equal(t, "(16,-32)", Cell{16, -32}.String())
	assert.Equal(t, "(0)", Cell{0}.String())
}

func TestHashers(t *testing.T) {
	hashers := map[string]Hasher{
		"mix": MixHasher{},
		"xx":  XXHasher{},
	}

	for name, h := range hashers {
		t.Run(name, func(t *testing.T) {
			// Deterministic within a run.
			assert.Equal(t, h.Sum(Cell{16, 32}), h.Sum(Cell{16, 32}))

			// Order-sensitive: permuting dimensions changes the hash.
			assert.NotEqual(t, h.Sum(Cell{16, 32}), h.Sum(Cell{32, 16}))

			assert.NotEqual(t, h.Sum(Cell{0, 0}), h.Sum(Cell{0, 16}))
		})
	}
}
