package usecase

import (
	"context"
	"log/slog"
	"time"

	"tribe-pulse-ads/internal/core/domain"
	"tribe-pulse-ads/internal/core/port"
	"tribe-pulse-ads/internal/core/selector"
	"tribe-pulse-ads/internal/metrics"
)

// Options configures an AdUseCase. Zero values are usable: a clock-seeded
// selector, a discarding logger, no metrics and no session eviction.
type Options struct {
	Selector   *selector.Selector
	Logger     *slog.Logger
	Metrics    *metrics.Metrics
	SessionTTL time.Duration
}

// AdUseCase provides business logic for ad selection and reel sessions.
// It orchestrates the selector, the tracker and the repository to
// implement port.AdUseCase.
type AdUseCase struct {
	repo     port.AdRepository
	selector *selector.Selector
	metrics  *metrics.Metrics
	reels    *Reels
}

// NewAdUseCase creates a new usecase backed by repo.
func NewAdUseCase(repo port.AdRepository, opts Options) *AdUseCase {
	sel := opts.Selector
	if sel == nil {
		sel = selector.New(nil)
	}
	tracker := NewTracker(repo)
	return &AdUseCase{
		repo:     repo,
		selector: sel,
		metrics:  opts.Metrics,
		reels:    NewReels(repo, sel, tracker, opts.Logger, opts.Metrics, opts.SessionTTL),
	}
}

// SelectAd runs a selection against the current catalog without tracking
// it. It returns nil when no advertisement is available.
func (u *AdUseCase) SelectAd(ctx context.Context, preferPremium bool) (*domain.Advertisement, error) {
	catalog, err := u.repo.ListAds(ctx)
	if err != nil {
		return nil, err
	}
	chosen, ok := u.selector.Select(catalog, preferPremium)
	u.metrics.ObserveSelection(ok)
	if !ok {
		return nil, nil
	}
	return &chosen, nil
}

// OpenReel starts a viewing session.
func (u *AdUseCase) OpenReel(ctx context.Context, preferPremium bool) (domain.Rotation, error) {
	return u.reels.Open(ctx, preferPremium)
}

// AdvanceReel handles a swipe in the given session.
func (u *AdUseCase) AdvanceReel(ctx context.Context, sessionID string, dir port.Direction) (domain.Rotation, error) {
	return u.reels.Advance(ctx, sessionID, dir)
}

// TapReel handles a tap. Anonymous viewers are never tracked.
func (u *AdUseCase) TapReel(ctx context.Context, sessionID string, viewer domain.Viewer) (bool, error) {
	return u.reels.Tap(ctx, sessionID, viewer)
}

// CloseReel unmounts a session.
func (u *AdUseCase) CloseReel(_ context.Context, sessionID string) error {
	return u.reels.Close(sessionID)
}

// GetStats returns the counters of one advertisement.
func (u *AdUseCase) GetStats(ctx context.Context, req domain.StatsReq) (*domain.Stats, error) {
	if req.AdID == "" {
		return nil, domain.ErrAdNotFound
	}
	if !req.From.IsZero() && !req.To.IsZero() && req.To.Before(req.From) {
		return nil, domain.ErrInvalidRange
	}
	return u.repo.GetStats(ctx, req)
}

// Run evicts idle reel sessions every interval until ctx is done.
func (u *AdUseCase) Run(ctx context.Context, interval time.Duration) {
	u.reels.Run(ctx, interval)
}

// Shutdown closes every reel session and drains in-flight tracking
// writes.
func (u *AdUseCase) Shutdown(ctx context.Context) error {
	return u.reels.Shutdown(ctx)
}
