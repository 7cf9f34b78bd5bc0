package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type tapResponse struct {
	Tracked bool `json:"tracked"`
}

// handleTapReel records a click on the displayed advertisement for the
// authenticated viewer. Anonymous taps are accepted but not tracked.
func (h *Handler) handleTapReel(w http.ResponseWriter, r *http.Request) {
	tracked, err := h.svc.TapReel(r.Context(), chi.URLParam(r, "id"), viewerFrom(r.Context()))
	if err != nil {
		h.writeError(w, "tap reel", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, tapResponse{Tracked: tracked})
}
