package http

import (
	"errors"
	"net/http"

	"github.com/Reznov00/wallet-keeper/internal/service"
	"github.com/Reznov00/wallet-keeper/internal/store"
)

// errorStatusMap holds the default status of every service and store
// sentinel. Handlers override entries where a route answers differently.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrUserAlreadyExists:     http.StatusBadRequest,
	service.ErrUserNotFound:          http.StatusNotFound,
	service.ErrWrongPassword:         http.StatusUnauthorized,
	service.ErrTokenIsExpired:        http.StatusUnauthorized,
	service.ErrTokenIsInvalid:        http.StatusUnauthorized,
	service.ErrTooManyOTPRequests:    http.StatusTooManyRequests,
	service.ErrMailDelivery:          http.StatusInternalServerError,
	service.ErrSigningFailed:         http.StatusInternalServerError,
	service.ErrTokenCreationFailed:   http.StatusInternalServerError,
	service.ErrPasswordCheckFailed:   http.StatusInternalServerError,
	service.ErrWalletCreation:        http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// errorMessageMap holds the client-facing text of errors whose own message
// is not meant for callers.
var errorMessageMap = map[error]string{
	service.ErrUserAlreadyExists: "User already exists",
	service.ErrUserNotFound:      "User not found",
	service.ErrWrongPassword:     "Wrong password",
	service.ErrTokenIsExpired:    "Token expired",
	service.ErrTokenIsInvalid:    "Invalid token",
	service.ErrMailDelivery:      "Could not send verification mail",
	service.ErrSigningFailed:     "Could not sign transaction",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text sent to the client for err. Internal
// failures never leak their cause.
func messageFromError(err error, status int) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	if status >= http.StatusInternalServerError {
		return http.StatusText(http.StatusInternalServerError)
	}
	return err.Error()
}
