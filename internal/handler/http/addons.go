package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"addonpair/internal/ledger"
	"addonpair/internal/logger"
	"addonpair/internal/utils"
	"addonpair/models"
)

func (h *Handler) listAddons(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	addons, err := h.addons(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listAddons").Msg("error reading addon list")
		utils.WriteJSON(w, models.ErrorResponse{Error: "error reading addon list"}, http.StatusInternalServerError)
		return
	}
	if addons == nil {
		addons = []models.AddonRef{}
	}

	utils.WriteJSON(w, models.AddonsResponse{Addons: addons}, http.StatusOK)
}

func (h *Handler) proposeAddons(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ProposeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.proposeAddons").Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	change, d, err := h.services.ProposalService.Propose(r.Context(), req.URLs)
	if err != nil {
		if errors.Is(err, ledger.ErrBusy) {
			log.Warn().Str("func", "*Handler.proposeAddons").Msg("rejected proposal, another change is pending")
			utils.WriteJSON(w, models.ErrorResponse{Error: "busy"}, http.StatusConflict)
			return
		}

		log.Err(err).Str("func", "*Handler.proposeAddons").Msg("error staging proposal")
		utils.WriteJSON(w, models.ErrorResponse{Error: "error staging proposal"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ProposeResponse{
		ChangeID: change.ID,
		Added:    d.Added,
		Removed:  d.Removed,
	}, http.StatusCreated)
}
