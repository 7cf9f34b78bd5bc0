package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tribe-pulse-ads/internal/core/port"
)

type openReelRequest struct {
	PreferPremium *bool `json:"prefer_premium"`
}

type advanceReelRequest struct {
	Direction port.Direction `json:"direction"`
}

// handleOpenReel starts a viewing session. The body is optional; without
// prefer_premium the configured default applies. The response always
// carries the session id, with a null ad when nothing can be shown.
func (h *Handler) handleOpenReel(w http.ResponseWriter, r *http.Request) {
	var req openReelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	preferPremium := h.preferPremium
	if req.PreferPremium != nil {
		preferPremium = *req.PreferPremium
	}

	rot, err := h.svc.OpenReel(r.Context(), preferPremium)
	if err != nil {
		h.writeError(w, "open reel", err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, newRotationResponse(rot))
}

// handleAdvanceReel handles a swipe. The direction must be "left" or
// "right".
func (h *Handler) handleAdvanceReel(w http.ResponseWriter, r *http.Request) {
	var req advanceReelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if !req.Direction.Valid() {
		http.Error(w, "invalid direction", http.StatusBadRequest)
		return
	}

	rot, err := h.svc.AdvanceReel(r.Context(), chi.URLParam(r, "id"), req.Direction)
	if err != nil {
		h.writeError(w, "advance reel", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, newRotationResponse(rot))
}

// handleCloseReel unmounts a session.
func (h *Handler) handleCloseReel(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.CloseReel(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, "close reel", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
