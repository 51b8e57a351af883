package http

import (
	"encoding/json"
	"net/http"

	"github.com/Reznov00/wallet-keeper/internal/logger"
	"github.com/Reznov00/wallet-keeper/internal/utils"
	"github.com/Reznov00/wallet-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		h.respondError(w, r, err, 0)
		return
	}

	utils.WriteJSON(w, models.ListResponse{Success: true, Count: len(users), Data: users}, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err, 0)
		return
	}

	utils.WriteJSON(w, models.DataResponse{Success: true, Data: user}, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg(errInvalidJSON)
		utils.WriteError(w, errInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		h.respondError(w, r, err, 0)
		return
	}

	utils.WriteJSON(w, models.DataResponse{Success: true, Data: user}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.services.UserService.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, r, err, 0)
		return
	}

	utils.WriteJSON(w, models.DataResponse{Success: true}, http.StatusOK)
}
