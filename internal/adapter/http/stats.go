package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tribe-pulse-ads/internal/core/domain"
)

// handleStats returns the counters of one advertisement. Optional `from`
// and `to` query parameters (YYYY-MM-DD, inclusive) bound the per-day
// buckets. Invalid parameters result in HTTP 400 and unknown ids in 404.
func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	var (
		q   = r.URL.Query()
		req = domain.StatsReq{AdID: chi.URLParam(r, "id")}
		err error
	)

	if from := q.Get("from"); from != "" {
		req.From, err = domain.ParseDay(from)
		if err != nil {
			http.Error(w, "invalid 'from' date", http.StatusBadRequest)
			return
		}
	}
	if to := q.Get("to"); to != "" {
		req.To, err = domain.ParseDay(to)
		if err != nil {
			http.Error(w, "invalid 'to' date", http.StatusBadRequest)
			return
		}
	}

	stats, err := h.svc.GetStats(r.Context(), req)
	if err != nil {
		h.writeError(w, "stats", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, statsResponse{
		AdID:             stats.AdID,
		Impressions:      stats.Impressions,
		Clicks:           stats.Clicks,
		UniqueClicks:     stats.UniqueClicks,
		DailyImpressions: stats.DailyImpressions,
		DailyClicks:      stats.DailyClicks,
	})
}
