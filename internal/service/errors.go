package service

import (
	"errors"
	"fmt"

	"github.com/Reznov00/wallet-keeper/internal/store"
)

var (
	// ErrInvalidDataProvided wraps every input validation failure.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrWrongPassword     = errors.New("wrong password")

	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrPasswordCheckFailed = errors.New("password check failed")
	ErrWalletCreation      = errors.New("wallet creation failed")

	ErrTooManyOTPRequests = errors.New("too many verification requests")
	ErrMailDelivery       = errors.New("verification mail could not be sent")

	ErrSigningFailed = errors.New("transaction signing failed")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)

// mapStoreError translates repository sentinels into service sentinels and
// wraps anything else with msg.
func mapStoreError(err error, msg string) error {
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		return ErrUserNotFound
	case errors.Is(err, store.ErrUserAlreadyExists):
		return ErrUserAlreadyExists
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
