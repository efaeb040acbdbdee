// Package testing provides test doubles for the metrics package.
package testing

import (
	"math"
	"sync"
)

// Sequence is a deterministic metrics.Source that cycles through fixed
// fractions. Values outside [0, 1) are clamped into range; 1 and above
// become the largest float64 below 1.
type Sequence struct {
	mu     sync.Mutex
	values []float64
	next   int

	// Calls counts how many values have been drawn.
	Calls int
}

// NewSequence creates a Sequence over values. With no values it always
// returns 0.
func NewSequence(values ...float64) *Sequence {
	clamped := make([]float64, len(values))
	for i, v := range values {
		switch {
		case v < 0:
			v = 0
		case v >= 1:
			v = math.Nextafter(1, 0)
		}
		clamped[i] = v
	}
	return &Sequence{values: clamped}
}

// Float64 returns the next value in the cycle.
func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Calls++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}
