package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tribe-pulse-ads/internal/core/domain"
	"tribe-pulse-ads/internal/core/port"
)

// Tracker persists impression and click counters. Every write goes
// through the store's atomic increment; failed writes are returned to the
// caller and never retried here.
type Tracker struct {
	store port.CounterStore
	now   func() time.Time
}

// NewTracker returns a tracker writing to store.
func NewTracker(store port.CounterStore) *Tracker {
	return &Tracker{store: store, now: time.Now}
}

// RecordImpression increments the total and today's impression counters
// of the advertisement. Both increments are issued even if one fails.
func (t *Tracker) RecordImpression(ctx context.Context, adID string) error {
	day := domain.DayOf(t.now())
	return errors.Join(
		t.increment(ctx, adID, domain.ImpressionsField()),
		t.increment(ctx, adID, domain.DailyImpressionsField(day)),
	)
}

// RecordClick increments the total and today's click counters and stamps
// the user's entry in the unique-click map. Repeated clicks by one user
// keep a single map entry.
func (t *Tracker) RecordClick(ctx context.Context, adID, userID string) error {
	if userID == "" {
		return domain.ErrMissingUser
	}
	day := domain.DayOf(t.now())
	var uniqueErr error
	if err := t.store.TouchUniqueClick(ctx, adID, userID); err != nil {
		uniqueErr = fmt.Errorf("touch unique click %s/%s: %w", adID, userID, err)
	}
	return errors.Join(
		t.increment(ctx, adID, domain.ClicksField()),
		t.increment(ctx, adID, domain.DailyClicksField(day)),
		uniqueErr,
	)
}

func (t *Tracker) increment(ctx context.Context, adID string, f domain.Field) error {
	if err := t.store.Increment(ctx, adID, f, 1); err != nil {
		return fmt.Errorf("increment %s of %s: %w", f.Path(), adID, err)
	}
	return nil
}
