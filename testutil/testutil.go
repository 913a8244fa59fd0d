package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// RandomPoints generates n pseudo-random points of the given dimensionality,
// with every coordinate uniform in [-scale, scale).
func RandomPoints(rng *RNG, n, dimensions int, scale float64) [][]float64 {
	points := make([][]float64, n)
	for i := range points {
		p := make([]float64, dimensions)
		for d := range p {
			p[d] = (rng.Float64()*2 - 1) * scale
		}
		points[i] = p
	}
	return points
}

// RandomPointsF32 is RandomPoints for float32 coordinates.
func RandomPointsF32(rng *RNG, n, dimensions int, scale float32) [][]float32 {
	points := make([][]float32, n)
	for i := range points {
		p := make([]float32, dimensions)
		for d := range p {
			p[d] = (rng.Float32()*2 - 1) * scale
		}
		points[i] = p
	}
	return points
}
