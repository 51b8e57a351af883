package service

import (
	"context"
	"fmt"

	"github.com/Reznov00/wallet-keeper/internal/logger"
	"github.com/Reznov00/wallet-keeper/internal/store"
	"github.com/Reznov00/wallet-keeper/internal/validators"
	"github.com/Reznov00/wallet-keeper/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		logger:         logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}
	return users, nil
}

func (s *userService) GetUser(ctx context.Context, userID string) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, mapStoreError(err, "user search by id failed")
	}
	return user, nil
}

// UpdateUser changes the name and/or email of a user. Concurrent updates are
// not versioned: the last write wins.
func (s *userService) UpdateUser(ctx context.Context, userID string, update models.UserUpdate) (models.User, error) {
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if update.Email != nil {
		email := validators.NormalizeEmail(*update.Email)
		update.Email = &email
	}

	user, err := s.userRepository.UpdateUser(ctx, userID, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.UpdateUser").Str("user_id", userID).Msg("user update failed")
		return models.User{}, mapStoreError(err, "user update failed")
	}

	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		return mapStoreError(err, "user deletion failed")
	}

	logger.FromContext(ctx).Info().Str("user_id", userID).Msg("user deleted")
	return nil
}
