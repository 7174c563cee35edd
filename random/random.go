package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand/v2"
	"sync"
)

// DefaultSeed is the seed used when a reproducible source is requested
// without an explicit seed.
const DefaultSeed uint64 = 0x6b6d65616e73

// Source is the random number generator consumed by the clustering engine.
type Source interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64

	// IntN returns a pseudo-random number in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// Rand is a PCG-backed Source. It is safe for concurrent use.
type Rand struct {
	mu   sync.Mutex
	pcg  *rand.PCG
	rand *rand.Rand
	seed uint64
}

// New creates a reproducible Rand with the specified seed.
func New(seed uint64) *Rand {
	pcg := rand.NewPCG(seed, seed^DefaultSeed)
	return &Rand{
		pcg:  pcg,
		rand: rand.New(pcg),
		seed: seed,
	}
}

// NewEntropy creates a Rand seeded from the operating system's entropy pool.
func NewEntropy() *Rand {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return New(rand.Uint64())
	}
	return New(binary.LittleEndian.Uint64(b[:]))
}

// Seed returns the initial seed.
func (r *Rand) Seed() uint64 {
	return r.seed
}

// Reset rewinds the generator to its initial seed.
func (r *Rand) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pcg.Seed(r.seed, r.seed^DefaultSeed)
}

// Float64 implements Source.
func (r *Rand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// IntN implements Source.
func (r *Rand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.IntN(n)
}

// Uniform returns a pseudo-random number in [lo, hi).
func (r *Rand) Uniform(lo, hi float64) float64 {
	return Uniform(r, lo, hi)
}

// Uniform draws a value in [lo, hi) from src. If lo == hi, lo is returned.
// The result stays finite for any finite bounds, even when hi-lo overflows.
func Uniform(src Source, lo, hi float64) float64 {
	u := src.Float64()
	if lo == hi {
		return lo
	}
	v := lo*(1-u) + hi*u
	if v >= hi {
		v = math.Nextafter(hi, lo)
	}
	return max(v, lo)
}
