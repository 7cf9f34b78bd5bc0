package selector

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source draws uniform integers in [0, n). It does not need to be
// cryptographically secure.
type Source interface {
	IntN(n int) int
}

// lockedSource serialises access to a *rand.Rand, which is not safe for
// concurrent use.
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// NewSeededSource returns a deterministic source for the given seed.
func NewSeededSource(seed uint64) Source {
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewSource returns a source seeded from the clock.
func NewSource() Source {
	return NewSeededSource(uint64(time.Now().UnixNano()))
}
