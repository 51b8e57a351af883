package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Reznov00/wallet-keeper/internal/logger"
	"github.com/Reznov00/wallet-keeper/internal/service"
	"github.com/Reznov00/wallet-keeper/internal/utils"
	"github.com/Reznov00/wallet-keeper/models"
)

// verifyEmail issues a one-time code for an e-mail that is not registered yet.
func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.OTPRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(errInvalidJSON)
		utils.WriteError(w, errInvalidJSON, http.StatusBadRequest)
		return
	}

	otp, err := h.services.OTPService.Issue(r.Context(), request)
	if err != nil {
		status := 0
		if errors.Is(err, service.ErrUserAlreadyExists) {
			status = http.StatusForbidden
		}
		h.respondError(w, r, err, status)
		return
	}

	utils.WriteJSON(w, otp, http.StatusOK)
}
