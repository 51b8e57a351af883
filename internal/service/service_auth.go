package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Reznov00/wallet-keeper/internal/crypto"
	"github.com/Reznov00/wallet-keeper/internal/logger"
	"github.com/Reznov00/wallet-keeper/internal/store"
	"github.com/Reznov00/wallet-keeper/internal/utils"
	"github.com/Reznov00/wallet-keeper/internal/validators"
	"github.com/Reznov00/wallet-keeper/models"
)

// authService is the concrete implementation of [AuthService].
// It handles registration with wallet bootstrap, credential verification,
// token checks and password changes. All state is read-only after
// construction.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	hasher  crypto.PasswordHasher
	wallets crypto.WalletProvisioner
	tokens  TokenService

	validator validators.Validator
	ids       *utils.UUIDGenerator

	logger *logger.Logger
}

// NewAuthService constructs a new [AuthService] wired to its collaborators.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	wallets crypto.WalletProvisioner,
	tokens TokenService,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		wallets:        wallets,
		tokens:         tokens,
		validator:      validators.NewUserValidator(),
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// RegisterUser creates a new account with a freshly provisioned wallet and
// returns a token for it.
//
// Returns:
//   - ErrInvalidDataProvided if name, email or password is missing or malformed.
//   - ErrUserAlreadyExists if the email is taken. No wallet is created then.
//   - ErrWalletCreation or ErrPasswordCheckFailed on crypto failures.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	email := validators.NormalizeEmail(request.Email)

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		return models.Token{}, ErrUserAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	wallet, err := a.wallets.Create()
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("wallet creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrWalletCreation, err)
	}

	digest, err := a.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("password hashing failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrPasswordCheckFailed, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		ID:            a.ids.Generate(),
		Name:          request.Name,
		Email:         email,
		Password:      digest,
		WalletAddress: wallet.Address,
		PrivateKey:    wallet.PrivateKey,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("user creation ended with error")
		return models.Token{}, mapStoreError(err, "user creation ended with error")
	}

	log.Info().Str("user_id", user.ID).Str("wallet", user.WalletAddress).Msg("user registered")

	return a.tokens.Issue(ctx, user)
}

// Login authenticates by email and password and returns a fresh token.
//
// Returns:
//   - ErrInvalidDataProvided if email or password is missing.
//   - ErrUserNotFound if no user has the email.
//   - ErrWrongPassword if the password does not match.
//   - ErrPasswordCheckFailed if the stored digest cannot be checked.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, validators.NormalizeEmail(request.Email))
	if err != nil {
		return models.Token{}, mapStoreError(err, "user search by email failed")
	}

	ok, err := a.hasher.Verify(request.Password, user.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("user_id", user.ID).Msg("password check failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrPasswordCheckFailed, err)
	}
	if !ok {
		log.Info().Str("user_id", user.ID).Msg("wrong password")
		return models.Token{}, ErrWrongPassword
	}

	return a.tokens.Issue(ctx, user)
}

// Authenticate returns the user a valid token was issued for. A token whose
// user no longer exists is invalid.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	claims, err := a.tokens.Verify(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, claims.UserID())
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrTokenIsInvalid
		}
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// ChangePassword replaces the password of userID after checking the old one.
//
// The new digest is computed before the old password is checked. Nothing is
// persisted unless the old password matches.
func (a *authService) ChangePassword(ctx context.Context, userID string, request models.ChangePasswordRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, mapStoreError(err, "user search by id failed")
	}

	digest, err := a.hasher.Hash(request.New)
	if err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordCheckFailed, err)
	}

	ok, err := a.hasher.Verify(request.Old, user.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Msg("password check failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordCheckFailed, err)
	}
	if !ok {
		return models.User{}, ErrWrongPassword
	}

	updated, err := a.userRepository.UpdatePassword(ctx, userID, digest)
	if err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Msg("password update failed")
		return models.User{}, mapStoreError(err, "password update failed")
	}

	log.Info().Str("user_id", userID).Msg("password changed")

	return updated, nil
}
