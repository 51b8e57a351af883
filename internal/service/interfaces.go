// Package service implements the business logic of wallet-keeper: account
// registration and login, bearer token lifecycle, e-mail OTP issuance, user
// administration, and transaction signing.
//
// Services depend only on the interfaces of the store, crypto and adapter
// packages, and report failures through the sentinel errors in errors.go so
// that the transport layer can map them with [errors.Is].
package service

import (
	"context"

	"github.com/Reznov00/wallet-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenService issues and verifies stateless bearer tokens.
type TokenService interface {
	// Issue returns a token for user that expires after the configured
	// duration.
	Issue(ctx context.Context, user models.User) (models.Token, error)

	// Verify checks the signature, issuer and expiry of tokenString.
	// Expired tokens yield ErrTokenIsExpired; anything else that fails
	// yields ErrTokenIsInvalid.
	Verify(ctx context.Context, tokenString string) (models.Claims, error)
}

// AuthService handles credentials: registration, login, token checks and
// password changes.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.Token, error)
	Login(ctx context.Context, request models.LoginRequest) (models.Token, error)

	// Authenticate verifies tokenString and returns the current state of the
	// user it was issued for.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)

	ChangePassword(ctx context.Context, userID string, request models.ChangePasswordRequest) (models.User, error)
}

// OTPService issues one-time codes that gate registration.
type OTPService interface {
	Issue(ctx context.Context, request models.OTPRequest) (models.OTP, error)
}

// UserService exposes administrative operations on user records.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
	UpdateUser(ctx context.Context, userID string, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

// TransactionService signs value transfers on behalf of a caller.
type TransactionService interface {
	SendTokens(ctx context.Context, descriptor models.TransactionDescriptor) (models.SignedTransaction, error)
}

// AppInfoService reports build information of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
