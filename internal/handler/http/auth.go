package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Reznov00/wallet-keeper/internal/logger"
	"github.com/Reznov00/wallet-keeper/internal/service"
	"github.com/Reznov00/wallet-keeper/internal/utils"
	"github.com/Reznov00/wallet-keeper/models"
	"github.com/go-chi/chi/v5"
)

const errInvalidJSON = "Invalid JSON was passed"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(errInvalidJSON)
		utils.WriteError(w, errInvalidJSON, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		h.respondError(w, r, err, 0)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(errInvalidJSON)
		utils.WriteError(w, errInvalidJSON, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		status := 0
		// login answers missing credentials with 403
		if errors.Is(err, service.ErrInvalidDataProvided) {
			status = http.StatusForbidden
		}
		h.respondError(w, r, err, status)
		return
	}

	log.Debug().Str("user_id", token.UserID()).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}

// checkAuth reports the user a bearer token was issued for, including the
// custodial key of the wallet.
func (h *Handler) checkAuth(w http.ResponseWriter, r *http.Request) {
	tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
	if err != nil {
		h.respondError(w, r, err, http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.Authenticate(r.Context(), tokenString)
	if err != nil {
		h.respondError(w, r, err, 0)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Authenticated: true,
		User:          models.NewAuthProjection(user),
	}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(errInvalidJSON)
		utils.WriteError(w, errInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.ChangePassword(ctx, chi.URLParam(r, "id"), request)
	if err != nil {
		h.respondError(w, r, err, 0)
		return
	}

	utils.WriteJSON(w, models.DataResponse{Success: true, Data: user}, http.StatusOK)
}
