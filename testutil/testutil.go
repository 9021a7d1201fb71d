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

// Bool returns a pseudo-random bit.
func (r *RNG) Bool() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(2) == 1
}

// Bits returns n pseudo-random bits.
func (r *RNG) Bits(n int) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = r.rand.Intn(2) == 1
	}
	return bits
}

// Markers converts bits to a bit-marker argument list, randomly picking a
// marker kind (bool, int, float64) per position. Useful for exercising the
// truthiness rule with mixed literal kinds.
func (r *RNG) Markers(bits []bool) []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	markers := make([]any, len(bits))
	for i, b := range bits {
		switch r.rand.Intn(3) {
		case 0:
			markers[i] = b
		case 1:
			if b {
				markers[i] = 1
			} else {
				markers[i] = 0
			}
		default:
			if b {
				markers[i] = 0.5
			} else {
				markers[i] = 0.0
			}
		}
	}
	return markers
}
