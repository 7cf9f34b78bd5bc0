package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"tribe-pulse-ads/internal/core/domain"
	"tribe-pulse-ads/internal/core/port"
	"tribe-pulse-ads/internal/core/selector"
	"tribe-pulse-ads/internal/metrics"
)

type reelSession struct {
	ctrl     *Controller
	lastSeen time.Time
}

// Reels keeps the open viewing sessions, one Controller each, keyed by a
// random session id. Sessions idle for longer than ttl are unmounted by
// Sweep.
type Reels struct {
	catalog  port.CatalogSource
	selector *selector.Selector
	tracker  *Tracker
	logger   *slog.Logger
	metrics  *metrics.Metrics
	ttl      time.Duration
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*reelSession
	// inflight is shared by every controller of the registry.
	inflight sync.WaitGroup
}

// NewReels returns an empty registry.
func NewReels(
	catalog port.CatalogSource,
	sel *selector.Selector,
	tracker *Tracker,
	logger *slog.Logger,
	m *metrics.Metrics,
	ttl time.Duration,
) *Reels {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Reels{
		catalog:  catalog,
		selector: sel,
		tracker:  tracker,
		logger:   logger,
		metrics:  m,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*reelSession),
	}
}

// Open mounts a new session. The session is registered even when nothing
// is available, so the client can keep swiping.
func (r *Reels) Open(ctx context.Context, preferPremium bool) (domain.Rotation, error) {
	ctrl := NewController(r.catalog, r.selector, r.tracker, r.logger, r.metrics, preferPremium)
	ctrl.now = r.now
	ctrl.inflight = &r.inflight
	ad, err := ctrl.Mount(ctx)
	if err != nil {
		return domain.Rotation{}, err
	}

	id := uuid.NewString()
	r.mu.Lock()
	r.sessions[id] = &reelSession{ctrl: ctrl, lastSeen: r.now()}
	r.mu.Unlock()
	r.metrics.SessionOpened()

	_, shownAt := ctrl.Current()
	return domain.Rotation{SessionID: id, Ad: ad, ShownAt: shownAt}, nil
}

// Advance rotates the session's advertisement.
func (r *Reels) Advance(ctx context.Context, id string, dir port.Direction) (domain.Rotation, error) {
	ctrl, err := r.touch(id)
	if err != nil {
		return domain.Rotation{}, err
	}
	ad, err := ctrl.Advance(ctx, dir)
	if errors.Is(err, ErrUnmounted) {
		return domain.Rotation{}, port.ErrSessionNotFound
	}
	if err != nil {
		return domain.Rotation{}, err
	}
	_, shownAt := ctrl.Current()
	return domain.Rotation{SessionID: id, Ad: ad, ShownAt: shownAt}, nil
}

// Tap forwards a tap to the session.
func (r *Reels) Tap(ctx context.Context, id string, viewer domain.Viewer) (bool, error) {
	ctrl, err := r.touch(id)
	if err != nil {
		return false, err
	}
	tracked, err := ctrl.Tap(ctx, viewer)
	if errors.Is(err, ErrUnmounted) {
		return false, port.ErrSessionNotFound
	}
	return tracked, err
}

// Close unmounts and forgets the session.
func (r *Reels) Close(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if ok {
		r.release(id, s)
	}
	r.mu.Unlock()
	if !ok {
		return port.ErrSessionNotFound
	}
	return nil
}

// Len returns the number of open sessions.
func (r *Reels) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep unmounts sessions idle for longer than the TTL and returns how
// many were removed. A non-positive TTL disables eviction.
func (r *Reels) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			r.release(id, s)
			n++
		}
	}
	return n
}

// Run sweeps idle sessions every interval until ctx is done.
func (r *Reels) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.Debug("evicted idle reel sessions", slog.Int("count", n))
			}
		case <-ctx.Done():
			return
		}
	}
}

// Shutdown unmounts every session and waits for in-flight tracking
// writes of open and already closed sessions, or for ctx to be done. It
// must be called once request handling has stopped.
func (r *Reels) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	for id, s := range r.sessions {
		r.release(id, s)
	}
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		r.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Reels) touch(id string) (*Controller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, port.ErrSessionNotFound
	}
	s.lastSeen = r.now()
	return s.ctrl, nil
}

// release must be called with r.mu held.
func (r *Reels) release(id string, s *reelSession) {
	s.ctrl.Unmount()
	delete(r.sessions, id)
	r.metrics.SessionClosed()
}
