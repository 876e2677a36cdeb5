// Package rng provides the random source used for spawn directions,
// enemy fire chance and power-up heading jitter.
package rng

import (
	"math/rand/v2"
	"time"
)

// Source samples uniform floats.
type Source interface {
	// Range returns a uniform value in [lo, hi).
	Range(lo, hi float64) float64
}

// Rand is a seeded Source.
type Rand struct {
	r *rand.Rand
}

// New creates a Source seeded from the current time.
func New() *Rand {
	return NewSeeded(uint64(time.Now().UnixNano()))
}

// NewSeeded creates a deterministic Source. Equal seeds produce equal sequences.
func NewSeeded(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Range returns a uniform value in [lo, hi). If hi <= lo it returns lo.
func (s *Rand) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Float64()*(hi-lo)
}

// Sequence replays fixed values, cycling when exhausted. Values outside
// [lo, hi) are returned as-is so tests can force exact outcomes.
type Sequence struct {
	Values []float64
	next   int
}

// NewSequence creates a Sequence over values.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{Values: values}
}

// Range returns the next scripted value, or lo when there are none.
func (s *Sequence) Range(lo, hi float64) float64 {
	if len(s.Values) == 0 {
		return lo
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}
