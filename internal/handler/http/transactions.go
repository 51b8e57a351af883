package http

import (
	"encoding/json"
	"net/http"

	"github.com/Reznov00/wallet-keeper/internal/logger"
	"github.com/Reznov00/wallet-keeper/internal/utils"
	"github.com/Reznov00/wallet-keeper/models"
)

// sendTokens signs a value transfer. The signed payload is returned to the
// caller and is not broadcast.
func (h *Handler) sendTokens(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var descriptor models.TransactionDescriptor
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&descriptor); err != nil {
		log.Err(err).Msg(errInvalidJSON)
		utils.WriteError(w, errInvalidJSON, http.StatusBadRequest)
		return
	}

	signed, err := h.services.TransactionService.SendTokens(r.Context(), descriptor)
	if err != nil {
		h.respondError(w, r, err, 0)
		return
	}

	log.Info().Str("transaction_hash", signed.TransactionHash).Msg("transaction signed")
	utils.WriteJSON(w, models.DataResponse{Success: true, Data: signed}, http.StatusCreated)
}
