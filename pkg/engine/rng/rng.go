// Package rng provides the seedable random source handed to every generator.
package rng

import (
	"math/rand/v2"
	"time"
)

// Source is a deterministic random source. A Source is not safe for
// concurrent use; each generation run owns its own.
type Source struct {
	seed int64
	r    *rand.Rand
}

// New creates a deterministic source using the provided seed.
func New(seed int64) *Source {
	return &Source{seed: seed, r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewSeed returns a time-based seed for runs that do not ask for one.
func NewSeed() int64 {
	return time.Now().UnixNano()
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() int64 { return s.seed }

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (s *Source) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.IntN(n)
}

// IntRange returns a random int in [lo, hi], both inclusive.
// It returns lo when hi < lo.
func (s *Source) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.IntN(hi-lo+1)
}

// Float64 returns a random float in [0, 1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Chance returns true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.r.Float64() < p
}

// Bool returns a random boolean value.
func (s *Source) Bool() bool {
	return s.r.IntN(2) == 1
}

// Rand exposes the underlying rand.Rand for advanced use.
func (s *Source) Rand() *rand.Rand { return s.r }
