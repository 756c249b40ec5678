package flame

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
)

// Sampler selects how a particle's pseudorandom stream is produced.
type Sampler int

const (
	// SamplerHash chains Hash2/Hash1 exactly like the shader the flames were
	// first rendered with, so frames match it value for value.
	SamplerHash Sampler = iota
	// SamplerPCG seeds a PCG generator from the particle and frame seeds.
	// Statistically uniform, not visually identical to SamplerHash.
	SamplerPCG
)

func (s Sampler) String() string {
	switch s {
	case SamplerHash:
		return "hash"
	case SamplerPCG:
		return "pcg"
	default:
		return fmt.Sprintf("sampler(%d)", int(s))
	}
}

// ParseSampler maps a sampler name to its value.
func ParseSampler(name string) (Sampler, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "hash":
		return SamplerHash, nil
	case "pcg":
		return SamplerPCG, nil
	default:
		return 0, fmt.Errorf("unknown sampler %q (want hash or pcg)", name)
	}
}

// Sequence is the deterministic scalar stream of one particle for one frame.
// It is a value type so the engine can keep one per particle on the stack.
type Sequence struct {
	sampler Sampler
	global  float32
	prev    float32
	n       int
	pcg     rand.PCG
}

// NewSequence starts the stream for a particle seed under a frame seed.
func NewSequence(sampler Sampler, particleSeed, globalSeed float32) Sequence {
	s := Sequence{sampler: sampler, global: globalSeed, prev: particleSeed}
	if sampler == SamplerPCG {
		s.pcg.Seed(uint64(math.Float32bits(particleSeed)), uint64(math.Float32bits(globalSeed))^0x9e3779b97f4a7c15)
	}
	return s
}

// Next returns the next value in [0, 1).
func (s *Sequence) Next() float32 {
	if s.sampler == SamplerPCG {
		return float32(s.pcg.Uint64()>>40) * (1.0 / (1 << 24))
	}
	switch s.n {
	case 0:
		s.prev = Hash2(s.prev, s.global)
	case 1, 2:
		s.prev = Hash1(s.prev)
	default:
		s.prev = Hash2(s.prev, s.global)
	}
	s.n++
	return s.prev
}
