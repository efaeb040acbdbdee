package metrics

import (
	"math/rand"
	"time"
)

// Source supplies uniformly distributed values in [0, 1).
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a pseudo-random Source. A zero seed is replaced with the
// current time so each run differs; any other seed is reproducible.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
