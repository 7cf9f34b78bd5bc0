package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tribe-pulse-ads/internal/core/domain"
	"tribe-pulse-ads/internal/core/port"
	"tribe-pulse-ads/internal/core/port/mocks"
)

const testSecret = "test-secret"

func newTestHandler(t *testing.T) (*mocks.MockAdUseCase, http.Handler) {
	t.Helper()
	svc := mocks.NewMockAdUseCase(t)
	h := NewHandler(svc, nil, Options{
		JWTSecret: testSecret,
		Metrics: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("# metrics"))
		}),
	})
	return svc, h.Router()
}

func signToken(t *testing.T, secret, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSelectReturnsAd(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.EXPECT().SelectAd(mock.Anything, true).
		Return(&domain.Advertisement{ID: "ad-1", ContentURL: "https://cdn/1.mp4", Priority: 5, IsActive: true}, nil)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/ads/select?premium=true", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body adResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "ad-1", body.ID)
	assert.Equal(t, "https://cdn/1.mp4", body.ContentURL)
	assert.Equal(t, 5, body.Priority)
}

func TestSelectNoContent(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.EXPECT().SelectAd(mock.Anything, false).Return(nil, nil)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/ads/select", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSelectRejectsBadFlag(t *testing.T) {
	_, router := newTestHandler(t)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/ads/select?premium=maybe", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSelectInternalError(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.EXPECT().SelectAd(mock.Anything, false).Return(nil, errors.New("db down"))

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/ads/select", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}

func TestOpenReel(t *testing.T) {
	svc, router := newTestHandler(t)
	shownAt := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	svc.EXPECT().OpenReel(mock.Anything, true).Return(domain.Rotation{
		SessionID: "sess-1",
		Ad:        &domain.Advertisement{ID: "ad-9", Priority: 4},
		ShownAt:   shownAt,
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reel/sessions", strings.NewReader(`{"prefer_premium":true}`))
	rec := serve(router, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body rotationResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "sess-1", body.SessionID)
	require.NotNil(t, body.Ad)
	assert.Equal(t, "ad-9", body.Ad.ID)
	require.NotNil(t, body.ShownAt)
	assert.True(t, shownAt.Equal(*body.ShownAt))
}

func TestOpenReelEmptyShowsPlaceholder(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.EXPECT().OpenReel(mock.Anything, false).Return(domain.Rotation{SessionID: "sess-2"}, nil)

	rec := serve(router, httptest.NewRequest(http.MethodPost, "/api/v1/reel/sessions", nil))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"session_id":"sess-2","ad":null}`, rec.Body.String())
}

func TestAdvanceReel(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.EXPECT().AdvanceReel(mock.Anything, "sess-1", port.DirectionLeft).
		Return(domain.Rotation{SessionID: "sess-1", Ad: &domain.Advertisement{ID: "ad-2"}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reel/sessions/sess-1/advance", strings.NewReader(`{"direction":"left"}`))
	rec := serve(router, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ad-2"`)
}

func TestAdvanceReelRejectsUnknownDirection(t *testing.T) {
	_, router := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reel/sessions/sess-1/advance", strings.NewReader(`{"direction":"up"}`))
	rec := serve(router, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdvanceUnknownSession(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.EXPECT().AdvanceReel(mock.Anything, "gone", port.DirectionRight).
		Return(domain.Rotation{}, port.ErrSessionNotFound)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reel/sessions/gone/advance", strings.NewReader(`{"direction":"right"}`))
	rec := serve(router, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTapAuthenticatedViewer(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.EXPECT().TapReel(mock.Anything, "sess-1", domain.Viewer{UserID: "user-42"}).Return(true, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reel/sessions/sess-1/tap", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "user-42"))
	rec := serve(router, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tracked":true}`, rec.Body.String())
}

func TestTapAnonymousViewer(t *testing.T) {
	cases := map[string]string{
		"no header":    "",
		"wrong secret": "Bearer " + signToken(t, "other-secret", "user-42"),
		"garbage":      "Bearer not-a-jwt",
		"empty sub":    "Bearer " + signToken(t, testSecret, ""),
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			svc, router := newTestHandler(t)
			svc.EXPECT().TapReel(mock.Anything, "sess-1", domain.Viewer{}).Return(false, nil)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/reel/sessions/sess-1/tap", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := serve(router, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"tracked":false}`, rec.Body.String())
		})
	}
}

func TestCloseReel(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.EXPECT().CloseReel(mock.Anything, "sess-1").Return(nil)

	rec := serve(router, httptest.NewRequest(http.MethodDelete, "/api/v1/reel/sessions/sess-1", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestStats(t *testing.T) {
	svc, router := newTestHandler(t)
	from, _ := domain.ParseDay("2026-03-01")
	to, _ := domain.ParseDay("2026-03-31")
	day, _ := domain.ParseDay("2026-03-15")
	svc.EXPECT().GetStats(mock.Anything, domain.StatsReq{AdID: "ad-1", From: from, To: to}).
		Return(&domain.Stats{
			AdID:             "ad-1",
			Impressions:      10,
			Clicks:           3,
			UniqueClicks:     2,
			DailyImpressions: map[domain.Day]int64{day: 10},
			DailyClicks:      map[domain.Day]int64{day: 3},
		}, nil)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/ads/ad-1/stats?from=2026-03-01&to=2026-03-31", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"ad_id":"ad-1","impressions":10,"clicks":3,"unique_clicks":2,
		"daily_impressions":{"2026-03-15":10},
		"daily_clicks":{"2026-03-15":3}
	}`, rec.Body.String())
}

func TestStatsErrors(t *testing.T) {
	t.Run("bad date", func(t *testing.T) {
		_, router := newTestHandler(t)
		rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/ads/ad-1/stats?from=15.03.2026", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
	t.Run("inverted range", func(t *testing.T) {
		svc, router := newTestHandler(t)
		svc.EXPECT().GetStats(mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidRange)
		rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/ads/ad-1/stats?from=2026-03-31&to=2026-03-01", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
	t.Run("unknown ad", func(t *testing.T) {
		svc, router := newTestHandler(t)
		svc.EXPECT().GetStats(mock.Anything, mock.Anything).Return(nil, domain.ErrAdNotFound)
		rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/ads/nope/stats", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHealthAndMetrics(t *testing.T) {
	_, router := newTestHandler(t)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "# metrics")
}
