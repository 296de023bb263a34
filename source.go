package shufflebag

import (
	"math/rand"
	"time"
)

// Source produces the random indices a bag uses to pick items. Intn must
// return a uniformly distributed int in the half-open range [0, n), and may
// assume n > 0.
//
// Implementations do not need to be safe for concurrent use; the owning bag
// only ever calls Intn while holding its own lock.
type Source interface {
	Intn(n int) int
}

// rngSource wraps math/rand so that a bag can be given seed-based,
// reproducible behavior.
type rngSource struct {
	rng *rand.Rand
}

// NewSource creates a pseudo-random Source from a seed. Two sources created
// with the same seed produce the same sequence of indices.
func NewSource(rngSeed int64) Source {
	return &rngSource{
		rng: rand.New(rand.NewSource(rngSeed)),
	}
}

// newDefaultSource creates the time-seeded source used by New.
func newDefaultSource() Source {
	return NewSource(time.Now().UnixNano())
}

func (s *rngSource) Intn(n int) int {
	return s.rng.Intn(n)
}
