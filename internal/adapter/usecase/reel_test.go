package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tribe-pulse-ads/internal/core/domain"
	"tribe-pulse-ads/internal/core/port"
	"tribe-pulse-ads/internal/core/port/mocks"
	"tribe-pulse-ads/internal/core/selector"
	"tribe-pulse-ads/internal/metrics"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestReels(t *testing.T, ttl time.Duration, m *metrics.Metrics) (*Reels, *mocks.MockAdRepository, *fakeClock) {
	repo := mocks.NewMockAdRepository(t)
	clock := &fakeClock{now: fixedNow}
	tr := NewTracker(repo)
	tr.now = clock.Now
	r := NewReels(repo, selector.NewSeeded(7), tr, nil, m, ttl)
	r.now = clock.Now
	t.Cleanup(func() { _ = r.Shutdown(context.Background()) })
	return r, repo, clock
}

func TestReelsOpenRegistersSession(t *testing.T) {
	m := metrics.New("test")
	r, repo, _ := newTestReels(t, 0, m)
	repo.EXPECT().ListAds(mock.Anything).Return(singleAd, nil).Once()
	repo.EXPECT().Increment(mock.Anything, "ad-1", mock.Anything, int64(1)).Return(nil).Twice()

	rot, err := r.Open(context.Background(), false)
	require.NoError(t, err)
	_, err = uuid.Parse(rot.SessionID)
	require.NoError(t, err)
	require.NotNil(t, rot.Ad)
	assert.Equal(t, "ad-1", rot.Ad.ID)
	assert.Equal(t, fixedNow, rot.ShownAt)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OpenSessions))
}

func TestReelsOpenWithEmptyCatalogKeepsSession(t *testing.T) {
	r, repo, _ := newTestReels(t, 0, nil)
	repo.EXPECT().ListAds(mock.Anything).Return(nil, nil).Once()

	rot, err := r.Open(context.Background(), true)
	require.NoError(t, err)
	assert.Nil(t, rot.Ad)
	assert.NotEmpty(t, rot.SessionID)
	assert.Equal(t, 1, r.Len())
}

func TestReelsUnknownSession(t *testing.T) {
	r, _, _ := newTestReels(t, 0, nil)
	ctx := context.Background()

	_, err := r.Advance(ctx, "missing", port.DirectionLeft)
	require.ErrorIs(t, err, port.ErrSessionNotFound)
	_, err = r.Tap(ctx, "missing", domain.Viewer{UserID: "u"})
	require.ErrorIs(t, err, port.ErrSessionNotFound)
	require.ErrorIs(t, r.Close("missing"), port.ErrSessionNotFound)
}

func TestReelsCloseForgetsSession(t *testing.T) {
	m := metrics.New("test")
	r, repo, _ := newTestReels(t, 0, m)
	repo.EXPECT().ListAds(mock.Anything).Return(singleAd, nil).Once()
	repo.EXPECT().Increment(mock.Anything, "ad-1", mock.Anything, int64(1)).Return(nil).Twice()

	ctx := context.Background()
	rot, err := r.Open(ctx, false)
	require.NoError(t, err)
	require.NoError(t, r.Close(rot.SessionID))

	_, err = r.Advance(ctx, rot.SessionID, port.DirectionRight)
	require.ErrorIs(t, err, port.ErrSessionNotFound)
	assert.Zero(t, r.Len())
	assert.Zero(t, testutil.ToFloat64(m.OpenSessions))
}

func TestReelsSweepEvictsIdleSessions(t *testing.T) {
	r, repo, clock := newTestReels(t, time.Minute, nil)
	repo.EXPECT().ListAds(mock.Anything).Return(singleAd, nil)
	repo.EXPECT().Increment(mock.Anything, "ad-1", mock.Anything, int64(1)).Return(nil)

	ctx := context.Background()
	idle, err := r.Open(ctx, false)
	require.NoError(t, err)
	clock.Advance(45 * time.Second)
	busy, err := r.Open(ctx, false)
	require.NoError(t, err)

	clock.Advance(30 * time.Second)
	_, err = r.Advance(ctx, busy.SessionID, port.DirectionLeft)
	require.NoError(t, err)

	assert.Equal(t, 1, r.Sweep())
	_, err = r.Tap(ctx, idle.SessionID, domain.Viewer{})
	require.ErrorIs(t, err, port.ErrSessionNotFound)
	_, err = r.Tap(ctx, busy.SessionID, domain.Viewer{})
	require.NoError(t, err)
}

func TestReelsSweepDisabledWithoutTTL(t *testing.T) {
	r, repo, clock := newTestReels(t, 0, nil)
	repo.EXPECT().ListAds(mock.Anything).Return(nil, nil).Once()

	_, err := r.Open(context.Background(), false)
	require.NoError(t, err)
	clock.Advance(24 * time.Hour)
	assert.Zero(t, r.Sweep())
	assert.Equal(t, 1, r.Len())
}

func TestReelsShutdownDrainsInFlightWrites(t *testing.T) {
	r, repo, _ := newTestReels(t, 0, nil)
	release := make(chan struct{})
	var written sync.WaitGroup
	written.Add(2)

	repo.EXPECT().ListAds(mock.Anything).Return(singleAd, nil).Once()
	repo.EXPECT().Increment(mock.Anything, "ad-1", mock.Anything, int64(1)).
		RunAndReturn(func(context.Context, string, domain.Field, int64) error {
			<-release
			written.Done()
			return nil
		}).Twice()

	_, err := r.Open(context.Background(), false)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, r.Shutdown(ctx), context.DeadlineExceeded)
	assert.Zero(t, r.Len())

	close(release)
	require.NoError(t, r.Shutdown(context.Background()))
	written.Wait()
}
