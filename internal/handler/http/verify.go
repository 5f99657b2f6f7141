package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/veridict/veridict/internal/logger"
	"github.com/veridict/veridict/internal/utils"
	"github.com/veridict/veridict/models"
)

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	verification, err := h.services.VerificationService.Verify(ctx, req)
	if err != nil {
		h.writeError(w, r, err, "verification failed")
		return
	}

	log.Debug().
		Str("id", verification.ID).
		Str("status", string(verification.Status)).
		Int("confidence", verification.Confidence).
		Msg("content verified")

	utils.WriteJSON(w, models.VerifyResponseOf(verification), http.StatusOK)
}

func (h *Handler) verifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	req := models.HistoryRequest{
		UserID: r.URL.Query().Get("userId"),
	}
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		limit, err := strconv.ParseUint(rawLimit, 10, 64)
		if err != nil {
			log.Err(err).Str("limit", rawLimit).Msg("invalid limit query parameter")
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		req.Limit = limit
	}

	summaries, err := h.services.VerificationService.History(ctx, req)
	if err != nil {
		h.writeError(w, r, err, "history listing failed")
		return
	}

	utils.WriteJSON(w, summaries, http.StatusOK)
}
