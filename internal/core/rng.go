package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Coin returns true with probability p.
func (r *RNG) Coin(p float64) bool {
	return r.r.Float64() < p
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Float32 returns a uniform value in [0, 1).
func (r *RNG) Float32() float32 { return r.r.Float32() }

// Uniform returns a value in [lo, hi).
func (r *RNG) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*r.r.Float64()
}

// FillUniform fills buf with independent values in [0, 1).
func (r *RNG) FillUniform(buf []float32) {
	for i := range buf {
		buf[i] = r.r.Float32()
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
