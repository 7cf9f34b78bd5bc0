// Package selector implements priority-weighted advertisement selection.
package selector

import (
	"sort"

	"tribe-pulse-ads/internal/core/domain"
)

// Selector picks one advertisement from a catalog snapshot. It never
// mutates the records it is given.
type Selector struct {
	src Source
}

// New returns a Selector drawing from src. A nil src is replaced by a
// clock-seeded source.
func New(src Source) *Selector {
	if src == nil {
		src = NewSource()
	}
	return &Selector{src: src}
}

// NewSeeded returns a Selector with a deterministic source.
func NewSeeded(seed uint64) *Selector {
	return New(NewSeededSource(seed))
}

// Select returns an active advertisement drawn with probability
// proportional to its weight. With preferPremium set the draw is limited
// to premium-eligible records when at least one of them is selectable.
// The boolean is false when nothing can be drawn; no draw is made then.
func (s *Selector) Select(catalog []domain.Advertisement, preferPremium bool) (domain.Advertisement, bool) {
	pool := make([]domain.Advertisement, 0, len(catalog))
	for _, a := range catalog {
		if a.IsActive {
			pool = append(pool, a)
		}
	}
	if len(pool) == 0 {
		return domain.Advertisement{}, false
	}

	if preferPremium {
		premium := make([]domain.Advertisement, 0, len(pool))
		for _, a := range pool {
			// zero-weight premium records would leave an undrawable pool
			if a.PremiumEligible() && a.Weight() > 0 {
				premium = append(premium, a)
			}
		}
		if len(premium) > 0 {
			pool = premium
		}
	}

	return s.draw(pool)
}

// draw samples from pool using cumulative weights and a binary search,
// which matches a uniform draw over the pool expanded by weight.
func (s *Selector) draw(pool []domain.Advertisement) (domain.Advertisement, bool) {
	cumulative := make([]int, len(pool))
	total := 0
	for i, a := range pool {
		total += a.Weight()
		cumulative[i] = total
	}
	if total == 0 {
		return domain.Advertisement{}, false
	}

	n := s.src.IntN(total)
	i := sort.Search(len(cumulative), func(i int) bool { return cumulative[i] > n })
	return pool[i], true
}
