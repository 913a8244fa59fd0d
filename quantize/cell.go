package quantize

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Cell is the quantized coordinate of one grid cell, one int64 per dimension.
type Cell []int64

// Key packs the cell into an opaque comparable value suitable as a map key.
//
// Two cells produce the same Key iff they are elementwise equal, so Key-based
// lookups are collision-free, unlike the scalar Hasher variant. The encoding
// is little-endian and fixed-width; it is an in-process identifier, not a
// persisted format.
func (c Cell) Key() Key {
	b := make([]byte, 8*len(c))
	for i, q := range c {
		binary.LittleEndian.PutUint64(b[i*8:], uint64(q))
	}
	return Key(b)
}

// Equal reports elementwise equality.
func (c Cell) Equal(other Cell) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the cell.
func (c Cell) Clone() Cell {
	out := make(Cell, len(c))
	copy(out, c)
	return out
}

func (c Cell) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, q := range c {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", q)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Key is a packed cell identifier. See Cell.Key.
type Key string

// Cell unpacks the key back into its quantized coordinates.
func (k Key) Cell() Cell {
	cell := make(Cell, len(k)/8)
	for i := range cell {
		cell[i] = int64(binary.LittleEndian.Uint64([]byte(k[i*8 : i*8+8])))
	}
	return cell
}

// Hasher derives a scalar 64-bit hash from a cell. Hashes are deterministic
// within one process run but are not stable across runs, builds or platforms.
//
// Distinct cells may collide. A collision merges two grid cells into one
// candidate set, which can only inflate query candidates, never corrupt the
// exact-filtered results.
type Hasher interface {
	Sum(c Cell) uint64
}

// MixHasher is the default Hasher. It folds each quantized coordinate into a
// running seed with a golden-ratio mixing step, so the result is sensitive to
// dimension order. The per-index dimension order is fixed at construction, so
// this is safe.
type MixHasher struct{}

// Sum implements Hasher.
func (MixHasher) Sum(c Cell) uint64 {
	var seed uint64
	for _, q := range c {
		seed ^= uint64(q) + 0x9e3779b97f4a7c15 + (seed << 6) + (seed >> 2)
	}
	return seed
}

// XXHasher hashes the packed cell bytes with xxHash64. A drop-in alternative
// to MixHasher with stronger avalanche behavior for adversarial coordinate
// distributions.
type XXHasher struct{}

// Sum implements Hasher.
func (XXHasher) Sum(c Cell) uint64 {
	b := make([]byte, 8*len(c))
	for i, q := range c {
		binary.LittleEndian.PutUint64(b[i*8:], uint64(q))
	}
	return xxhash.Sum64(b)
}
