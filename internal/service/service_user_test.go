package service

import (
	"context"
	"testing"

	"github.com/Reznov00/wallet-keeper/internal/logger"
	"github.com/Reznov00/wallet-keeper/internal/mock"
	"github.com/Reznov00/wallet-keeper/internal/store"
	"github.com/Reznov00/wallet-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserSvc(t *testing.T) (UserService, *mock.MockUserRepository) {
	t.Helper()
	users := mock.NewMockUserRepository(gomock.NewController(t))
	return NewUserService(users, logger.Nop()), users
}

func TestUserService_ListUsers(t *testing.T) {
	svc, users := newTestUserSvc(t)
	ctx := context.Background()

	users.EXPECT().ListUsers(ctx).Return([]models.User{{ID: "a"}, {ID: "b"}}, nil)

	list, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	svc, users := newTestUserSvc(t)
	ctx := context.Background()

	users.EXPECT().FindUserByID(ctx, "x").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.GetUser(ctx, "x")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_UpdateUser_NormalizesEmail(t *testing.T) {
	svc, users := newTestUserSvc(t)
	ctx := context.Background()
	email := "Bob@Example.com"

	users.EXPECT().UpdateUser(ctx, "u1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, u models.UserUpdate) (models.User, error) {
			require.NotNil(t, u.Email)
			assert.Equal(t, "bob@example.com", *u.Email)
			assert.Nil(t, u.Name)
			return models.User{ID: "u1", Email: *u.Email}, nil
		},
	)

	user, err := svc.UpdateUser(ctx, "u1", models.UserUpdate{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", user.Email)
}

func TestUserService_UpdateUser_Empty(t *testing.T) {
	svc, _ := newTestUserSvc(t)

	_, err := svc.UpdateUser(context.Background(), "u1", models.UserUpdate{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUserService_UpdateUser_EmailTaken(t *testing.T) {
	svc, users := newTestUserSvc(t)
	ctx := context.Background()
	email := "bob@example.com"

	users.EXPECT().UpdateUser(ctx, "u1", gomock.Any()).Return(models.User{}, store.ErrUserAlreadyExists)

	_, err := svc.UpdateUser(ctx, "u1", models.UserUpdate{Email: &email})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestUserService_DeleteUser(t *testing.T) {
	svc, users := newTestUserSvc(t)
	ctx := context.Background()

	users.EXPECT().DeleteUser(ctx, "u1").Return(nil)
	users.EXPECT().DeleteUser(ctx, "u2").Return(store.ErrNoUserWasFound)

	assert.NoError(t, svc.DeleteUser(ctx, "u1"))
	assert.ErrorIs(t, svc.DeleteUser(ctx, "u2"), ErrUserNotFound)
}
