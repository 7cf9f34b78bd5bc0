package httpadapter

import (
	"net/http"
	"strconv"
)

// handleSelect runs a one-off selection without tracking it. The optional
// `premium` query parameter overrides the configured preference. If no
// advertisement is available it returns HTTP 204 No Content.
func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	preferPremium := h.preferPremium
	if raw := r.URL.Query().Get("premium"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			http.Error(w, "invalid 'premium' flag", http.StatusBadRequest)
			return
		}
		preferPremium = v
	}

	ad, err := h.svc.SelectAd(r.Context(), preferPremium)
	if err != nil {
		h.writeError(w, "select ad", err)
		return
	}
	if ad == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, newAdResponse(ad))
}
