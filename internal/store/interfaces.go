package store

import (
	"context"

	"github.com/Reznov00/wallet-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository persists wallet owners. Lookups are by id or by the unique
// lower-cased email. Writes are atomic per row and the last write wins.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id string, update models.UserUpdate) (models.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) (models.User, error)
	DeleteUser(ctx context.Context, id string) error
}
