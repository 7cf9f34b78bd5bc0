package domain

import "time"

// Stats is a read-only snapshot of an advertisement's counters. Daily
// buckets are limited to the requested range.
type Stats struct {
	AdID             string
	Impressions      int64
	Clicks           int64
	UniqueClicks     int64
	DailyImpressions map[Day]int64
	DailyClicks      map[Day]int64
}

// StatsReq selects the daily buckets returned with Stats. Zero From/To
// mean unbounded.
type StatsReq struct {
	AdID string
	From Day
	To   Day
}

// InRange reports whether d falls inside the request range.
func (r StatsReq) InRange(d Day) bool {
	if !r.From.IsZero() && d.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && r.To.Before(d) {
		return false
	}
	return true
}

// Rotation is what the reel shows after a mount or an advance. Ad is nil
// when no advertisement is available.
type Rotation struct {
	SessionID string
	Ad        *Advertisement
	ShownAt   time.Time
}
