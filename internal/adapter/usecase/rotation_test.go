package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

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

func isField(kind domain.FieldKind) interface{} {
	return mock.MatchedBy(func(f domain.Field) bool { return f.Kind == kind })
}

func newTestController(t *testing.T, m *metrics.Metrics) (*Controller, *mocks.MockAdRepository) {
	repo := mocks.NewMockAdRepository(t)
	tr := NewTracker(repo)
	tr.now = func() time.Time { return fixedNow }
	ctrl := NewController(repo, selector.NewSeeded(1), tr, nil, m, false)
	t.Cleanup(ctrl.Wait)
	return ctrl, repo
}

var singleAd = []domain.Advertisement{{ID: "ad-1", ContentURL: "https://cdn/1.mp4", Priority: 3, IsActive: true}}

func TestMountEmptyCatalogStaysEmpty(t *testing.T) {
	ctrl, repo := newTestController(t, nil)
	repo.EXPECT().ListAds(mock.Anything).Return(nil, nil).Once()

	ad, err := ctrl.Mount(context.Background())
	require.NoError(t, err)
	assert.Nil(t, ad)

	ctrl.Wait()
	repo.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	cur, _ := ctrl.Current()
	assert.Nil(t, cur)
}

func TestMountRecordsExactlyOneImpression(t *testing.T) {
	ctrl, repo := newTestController(t, nil)
	repo.EXPECT().ListAds(mock.Anything).Return(singleAd, nil).Once()
	repo.EXPECT().Increment(mock.Anything, "ad-1", isField(domain.FieldImpressions), int64(1)).Return(nil).Once()
	repo.EXPECT().Increment(mock.Anything, "ad-1", isField(domain.FieldDailyImpressions), int64(1)).Return(nil).Once()

	ad, err := ctrl.Mount(context.Background())
	require.NoError(t, err)
	require.NotNil(t, ad)
	assert.Equal(t, "ad-1", ad.ID)

	ctrl.Wait()
	repo.AssertNumberOfCalls(t, "Increment", 2)
}

func TestAdvanceBothDirectionsRecordFreshImpressions(t *testing.T) {
	ctrl, repo := newTestController(t, nil)
	repo.EXPECT().ListAds(mock.Anything).Return(singleAd, nil).Times(3)
	repo.EXPECT().Increment(mock.Anything, "ad-1", isField(domain.FieldImpressions), int64(1)).Return(nil).Times(3)
	repo.EXPECT().Increment(mock.Anything, "ad-1", isField(domain.FieldDailyImpressions), int64(1)).Return(nil).Times(3)

	ctx := context.Background()
	_, err := ctrl.Mount(ctx)
	require.NoError(t, err)
	for _, dir := range []port.Direction{port.DirectionLeft, port.DirectionRight} {
		ad, err := ctrl.Advance(ctx, dir)
		require.NoError(t, err)
		require.NotNil(t, ad)
		// repeats are allowed
		assert.Equal(t, "ad-1", ad.ID)
	}
	ctrl.Wait()
}

func TestAdvanceToEmptyCatalogFallsBackToEmpty(t *testing.T) {
	ctrl, repo := newTestController(t, nil)
	repo.EXPECT().ListAds(mock.Anything).Return(singleAd, nil).Once()
	repo.EXPECT().ListAds(mock.Anything).Return([]domain.Advertisement{{ID: "ad-1", Priority: 3}}, nil).Once()
	repo.EXPECT().Increment(mock.Anything, "ad-1", mock.Anything, int64(1)).Return(nil).Twice()

	ctx := context.Background()
	_, err := ctrl.Mount(ctx)
	require.NoError(t, err)

	ad, err := ctrl.Advance(ctx, port.DirectionLeft)
	require.NoError(t, err)
	assert.Nil(t, ad)
	cur, shownAt := ctrl.Current()
	assert.Nil(t, cur)
	assert.True(t, shownAt.IsZero())
	ctrl.Wait()
}

func TestAdvanceKeepsStateOnCatalogError(t *testing.T) {
	ctrl, repo := newTestController(t, nil)
	boom := errors.New("catalog down")
	repo.EXPECT().ListAds(mock.Anything).Return(singleAd, nil).Once()
	repo.EXPECT().ListAds(mock.Anything).Return(nil, boom).Once()
	repo.EXPECT().Increment(mock.Anything, "ad-1", mock.Anything, int64(1)).Return(nil).Twice()

	ctx := context.Background()
	_, err := ctrl.Mount(ctx)
	require.NoError(t, err)

	_, err = ctrl.Advance(ctx, port.DirectionRight)
	require.ErrorIs(t, err, boom)
	cur, _ := ctrl.Current()
	require.NotNil(t, cur)
	assert.Equal(t, "ad-1", cur.ID)
	ctrl.Wait()
}

func TestTapWithoutUserNeverTracks(t *testing.T) {
	ctrl, repo := newTestController(t, nil)
	repo.EXPECT().ListAds(mock.Anything).Return(singleAd, nil).Once()
	repo.EXPECT().Increment(mock.Anything, "ad-1", isField(domain.FieldImpressions), int64(1)).Return(nil).Once()
	repo.EXPECT().Increment(mock.Anything, "ad-1", isField(domain.FieldDailyImpressions), int64(1)).Return(nil).Once()

	ctx := context.Background()
	_, err := ctrl.Mount(ctx)
	require.NoError(t, err)

	tracked, err := ctrl.Tap(ctx, domain.Viewer{})
	require.NoError(t, err)
	assert.False(t, tracked)

	ctrl.Wait()
	repo.AssertNotCalled(t, "TouchUniqueClick", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything, isField(domain.FieldClicks), mock.Anything)
}

func TestTapWithoutAdNeverTracks(t *testing.T) {
	ctrl, repo := newTestController(t, nil)
	repo.EXPECT().ListAds(mock.Anything).Return(nil, nil).Once()

	ctx := context.Background()
	_, err := ctrl.Mount(ctx)
	require.NoError(t, err)

	tracked, err := ctrl.Tap(ctx, domain.Viewer{UserID: "u-1"})
	require.NoError(t, err)
	assert.False(t, tracked)
	ctrl.Wait()
	repo.AssertNotCalled(t, "TouchUniqueClick", mock.Anything, mock.Anything, mock.Anything)
}

func TestTapRecordsClickWithoutChangingState(t *testing.T) {
	ctrl, repo := newTestController(t, nil)
	repo.EXPECT().ListAds(mock.Anything).Return(singleAd, nil).Once()
	repo.EXPECT().Increment(mock.Anything, "ad-1", isField(domain.FieldImpressions), int64(1)).Return(nil).Once()
	repo.EXPECT().Increment(mock.Anything, "ad-1", isField(domain.FieldDailyImpressions), int64(1)).Return(nil).Once()
	repo.EXPECT().Increment(mock.Anything, "ad-1", isField(domain.FieldClicks), int64(1)).Return(nil).Once()
	repo.EXPECT().Increment(mock.Anything, "ad-1", isField(domain.FieldDailyClicks), int64(1)).Return(nil).Once()
	repo.EXPECT().TouchUniqueClick(mock.Anything, "ad-1", "u-1").Return(nil).Once()

	ctx := context.Background()
	_, err := ctrl.Mount(ctx)
	require.NoError(t, err)
	before, shownAt := ctrl.Current()

	tracked, err := ctrl.Tap(ctx, domain.Viewer{UserID: "u-1"})
	require.NoError(t, err)
	assert.True(t, tracked)

	after, shownAfter := ctrl.Current()
	assert.Same(t, before, after)
	assert.Equal(t, shownAt, shownAfter)
	ctrl.Wait()
}

func TestTrackingFailureDoesNotAffectDisplay(t *testing.T) {
	m := metrics.New("test")
	ctrl, repo := newTestController(t, m)
	repo.EXPECT().ListAds(mock.Anything).Return(singleAd, nil).Once()
	repo.EXPECT().Increment(mock.Anything, "ad-1", mock.Anything, int64(1)).Return(errors.New("write failed")).Twice()

	ad, err := ctrl.Mount(context.Background())
	require.NoError(t, err)
	require.NotNil(t, ad)

	ctrl.Wait()
	cur, _ := ctrl.Current()
	assert.Equal(t, "ad-1", cur.ID)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TrackingWrites.WithLabelValues(metrics.KindImpression, "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Selections.WithLabelValues("shown")))
}

func TestTrackingSurvivesCanceledRequestContext(t *testing.T) {
	m := metrics.New("test")
	ctrl, repo := newTestController(t, m)
	repo.EXPECT().ListAds(mock.Anything).Return(singleAd, nil).Once()
	repo.EXPECT().Increment(mock.Anything, "ad-1", mock.Anything, int64(1)).
		RunAndReturn(func(ctx context.Context, _ string, _ domain.Field, _ int64) error {
			return ctx.Err()
		}).Twice()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ad, err := ctrl.Mount(ctx)
	require.NoError(t, err)
	require.NotNil(t, ad)

	ctrl.Wait()
	assert.Equal(t, 0.0, testutil.ToFloat64(m.TrackingWrites.WithLabelValues(metrics.KindImpression, "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TrackingWrites.WithLabelValues(metrics.KindImpression, "ok")))
}

func TestUnmountStopsNewWrites(t *testing.T) {
	ctrl, repo := newTestController(t, nil)
	repo.EXPECT().ListAds(mock.Anything).Return(singleAd, nil).Once()
	repo.EXPECT().Increment(mock.Anything, "ad-1", mock.Anything, int64(1)).Return(nil).Twice()

	ctx := context.Background()
	_, err := ctrl.Mount(ctx)
	require.NoError(t, err)
	ctrl.Unmount()

	_, err = ctrl.Advance(ctx, port.DirectionLeft)
	require.ErrorIs(t, err, ErrUnmounted)
	_, err = ctrl.Tap(ctx, domain.Viewer{UserID: "u-1"})
	require.ErrorIs(t, err, ErrUnmounted)

	ctrl.Wait()
	repo.AssertNumberOfCalls(t, "ListAds", 1)
	repo.AssertNumberOfCalls(t, "Increment", 2)
}
