package quantize

import "github.com/RoaringBitmap/roaring/v2/roaring64"

// CellSet is a compressed set of cells identified by their scalar hash.
//
// It backs the set-equality fast path of radius moves and gives callers a
// compact way to track the cells returned by radius insertions. Because
// membership is keyed by Hasher output, two distinct cells that collide are
// indistinguishable to the set; this carries the same approximation as the
// scalar-hash bucket key variant and never affects exact-filtered queries.
type CellSet struct {
	bm     *roaring64.Bitmap
	hasher Hasher
}

// NewCellSet creates a set over the given cells. A nil hasher selects
// MixHasher.
func NewCellSet(hasher Hasher, cells ...Cell) *CellSet {
	if hasher == nil {
		hasher = MixHasher{}
	}
	s := &CellSet{
		bm:     roaring64.New(),
		hasher: hasher,
	}
	for _, c := range cells {
		s.Add(c)
	}
	return s
}

// Add inserts a cell.
func (s *CellSet) Add(c Cell) {
	s.bm.Add(s.hasher.Sum(c))
}

// Remove deletes a cell.
func (s *CellSet) Remove(c Cell) {
	s.bm.Remove(s.hasher.Sum(c))
}

// Contains reports membership.
func (s *CellSet) Contains(c Cell) bool {
	return s.bm.Contains(s.hasher.Sum(c))
}

// Cardinality returns the number of distinct cell hashes in the set.
func (s *CellSet) Cardinality() uint64 {
	return s.bm.GetCardinality()
}

// Equal reports whether both sets contain exactly the same cell hashes.
func (s *CellSet) Equal(other *CellSet) bool {
	return s.bm.Equals(other.bm)
}

// Clone returns a deep copy sharing the same hasher.
func (s *CellSet) Clone() *CellSet {
	return &CellSet{
		bm:     s.bm.Clone(),
		hasher: s.hasher,
	}
}
