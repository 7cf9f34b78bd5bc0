package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"tribe-pulse-ads/internal/core/domain"
	"tribe-pulse-ads/internal/core/port"
)

type adResponse struct {
	ID         string `json:"id"`
	ContentURL string `json:"content_url"`
	Priority   int    `json:"priority"`
	IsPremium  bool   `json:"is_premium"`
}

func newAdResponse(ad *domain.Advertisement) *adResponse {
	if ad == nil {
		return nil
	}
	return &adResponse{
		ID:         ad.ID,
		ContentURL: ad.ContentURL,
		Priority:   ad.Priority,
		IsPremium:  ad.IsPremium,
	}
}

// rotationResponse carries a null ad while the reel shows the placeholder.
type rotationResponse struct {
	SessionID string      `json:"session_id"`
	Ad        *adResponse `json:"ad"`
	ShownAt   *time.Time  `json:"shown_at,omitempty"`
}

func newRotationResponse(rot domain.Rotation) rotationResponse {
	resp := rotationResponse{SessionID: rot.SessionID, Ad: newAdResponse(rot.Ad)}
	if !rot.ShownAt.IsZero() {
		shownAt := rot.ShownAt.UTC()
		resp.ShownAt = &shownAt
	}
	return resp
}

type statsResponse struct {
	AdID             string               `json:"ad_id"`
	Impressions      int64                `json:"impressions"`
	Clicks           int64                `json:"clicks"`
	UniqueClicks     int64                `json:"unique_clicks"`
	DailyImpressions map[domain.Day]int64 `json:"daily_impressions"`
	DailyClicks      map[domain.Day]int64 `json:"daily_clicks"`
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// encoding should rarely fail; the status is already sent
		logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps domain errors onto status codes. Unknown errors are
// logged and reported as 500.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrAdNotFound), errors.Is(err, port.ErrSessionNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidRange):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.Error(op+" error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
