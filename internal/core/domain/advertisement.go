package domain

import "time"

// Priority bounds. Records outside the range are kept in the catalog but
// carry zero weight, so the selector can never draw them.
const (
	MinPriority     = 1
	MaxPriority     = 5
	PremiumPriority = 4
)

// Advertisement is a reel advertisement together with its cumulative
// counters. Records are created and mutated by the store; the core only
// reads snapshots and asks the store for atomic increments.
type Advertisement struct {
	ID         string
	ContentURL string
	IsActive   bool
	Priority   int
	IsPremium  bool

	Impressions int64
	Clicks      int64
	// UniqueClicks maps a user id to the time of that user's latest click.
	UniqueClicks     map[string]time.Time
	DailyImpressions map[Day]int64
	DailyClicks      map[Day]int64
	// Segments is reserved for audience segmentation and is not read by
	// selection.
	Segments map[string]SegmentMetrics
}

// SegmentMetrics holds per-segment counters.
type SegmentMetrics struct {
	Clicks      int64 `json:"clicks"`
	Impressions int64 `json:"impressions"`
}

// Weight returns the selection weight of the record: its priority when in
// [MinPriority, MaxPriority], zero otherwise.
func (a Advertisement) Weight() int {
	if a.Priority < MinPriority || a.Priority > MaxPriority {
		return 0
	}
	return a.Priority
}

// PremiumEligible reports whether the record belongs to the premium pool.
func (a Advertisement) PremiumEligible() bool {
	if a.IsPremium {
		return true
	}
	return a.Priority >= PremiumPriority && a.Priority <= MaxPriority
}

// Validate checks the invariants catalog ingestion relies on.
func (a Advertisement) Validate() error {
	if a.ID == "" {
		return ErrMalformedAd
	}
	if a.Impressions < 0 || a.Clicks < 0 {
		return ErrMalformedAd
	}
	return nil
}
