package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"tribe-pulse-ads/internal/core/domain"
	"tribe-pulse-ads/internal/core/port"
	"tribe-pulse-ads/internal/core/selector"
	"tribe-pulse-ads/internal/metrics"
)

// ErrUnmounted is returned by a controller after Unmount.
var ErrUnmounted = errors.New("reel unmounted")

// Controller drives one reel viewing session. It is Empty until a
// selection succeeds and Showing afterwards; every transition into
// Showing records exactly one impression. Tracking writes run in the
// background and never block or undo a transition.
type Controller struct {
	catalog       port.CatalogSource
	selector      *selector.Selector
	tracker       *Tracker
	logger        *slog.Logger
	metrics       *metrics.Metrics
	preferPremium bool
	now           func() time.Time

	mu       sync.Mutex
	current  *domain.Advertisement
	shownAt  time.Time
	unmount  bool
	inflight *sync.WaitGroup
}

// NewController returns a controller in the Empty state.
func NewController(
	catalog port.CatalogSource,
	sel *selector.Selector,
	tracker *Tracker,
	logger *slog.Logger,
	m *metrics.Metrics,
	preferPremium bool,
) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		catalog:       catalog,
		selector:      sel,
		tracker:       tracker,
		logger:        logger,
		metrics:       m,
		preferPremium: preferPremium,
		now:           time.Now,
		inflight:      &sync.WaitGroup{},
	}
}

// Mount performs the initial selection. With nothing to show the
// controller stays Empty and returns nil.
func (c *Controller) Mount(ctx context.Context) (*domain.Advertisement, error) {
	return c.rotate(ctx)
}

// Advance handles a swipe. Both directions pick a fresh advertisement
// independently of what was shown before, so repeats are possible. When
// nothing is selectable any more the controller falls back to Empty.
func (c *Controller) Advance(ctx context.Context, _ port.Direction) (*domain.Advertisement, error) {
	return c.rotate(ctx)
}

// Tap records a click for the displayed advertisement. Without a
// displayed advertisement or an authenticated viewer nothing is recorded
// and the tracker is not called. Tap never changes state.
func (c *Controller) Tap(ctx context.Context, viewer domain.Viewer) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.unmount {
		return false, ErrUnmounted
	}
	if c.current == nil || !viewer.Authenticated() {
		return false, nil
	}
	adID, userID := c.current.ID, viewer.UserID
	c.dispatch(ctx, metrics.KindClick, func(ctx context.Context) error {
		return c.tracker.RecordClick(ctx, adID, userID)
	})
	return true, nil
}

// Current returns the displayed advertisement and when it was shown.
func (c *Controller) Current() (*domain.Advertisement, time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current, c.shownAt
}

// Unmount stops the controller from issuing new tracking writes. Writes
// already in flight complete on their own.
func (c *Controller) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unmount = true
}

// Wait blocks until every tracking write issued so far has finished.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

func (c *Controller) rotate(ctx context.Context) (*domain.Advertisement, error) {
	c.mu.Lock()
	closed := c.unmount
	c.mu.Unlock()
	if closed {
		return nil, ErrUnmounted
	}

	catalog, err := c.catalog.ListAds(ctx)
	if err != nil {
		return nil, err
	}
	chosen, ok := c.selector.Select(catalog, c.preferPremium)
	c.metrics.ObserveSelection(ok)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unmount {
		return nil, ErrUnmounted
	}
	if !ok {
		c.current = nil
		c.shownAt = time.Time{}
		return nil, nil
	}

	c.current = &chosen
	c.shownAt = c.now()
	adID := chosen.ID
	c.dispatch(ctx, metrics.KindImpression, func(ctx context.Context) error {
		return c.tracker.RecordImpression(ctx, adID)
	})
	return c.current, nil
}

// dispatch runs write in the background. It must be called with c.mu
// held so Unmount and Wait observe every issued write.
func (c *Controller) dispatch(ctx context.Context, kind string, write func(context.Context) error) {
	if c.unmount {
		return
	}
	ctx = context.WithoutCancel(ctx)
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		err := write(ctx)
		c.metrics.ObserveTracking(kind, err)
		if err != nil {
			c.logger.Warn("tracking write failed",
				slog.String("kind", kind),
				slog.Any("error", err),
			)
		}
	}()
}
