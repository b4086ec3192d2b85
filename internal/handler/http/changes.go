package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"addonpair/internal/utils"
	"addonpair/models"
)

// changeStatus reports pending/confirmed/rejected for the queried change.
// An unknown id — including a change dropped by session teardown — answers
// 200 with status not_found rather than a 404, so pollers treat it as a
// regular terminal state.
func (h *Handler) changeStatus(w http.ResponseWriter, r *http.Request) {
	changeID := chi.URLParam(r, "changeID")

	resolution, ok := h.ledger.Status(changeID)
	if !ok {
		utils.WriteJSON(w, models.ChangeStatusResponse{Status: models.StatusNotFound}, http.StatusOK)
		return
	}

	utils.WriteJSON(w, models.ChangeStatusResponse{Status: string(resolution)}, http.StatusOK)
}
