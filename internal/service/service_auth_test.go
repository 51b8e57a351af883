package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Reznov00/wallet-keeper/internal/logger"
	"github.com/Reznov00/wallet-keeper/internal/mock"
	"github.com/Reznov00/wallet-keeper/internal/store"
	"github.com/Reznov00/wallet-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authMocks struct {
	users   *mock.MockUserRepository
	hasher  *mock.MockPasswordHasher
	wallets *mock.MockWalletProvisioner
	tokens  *mock.MockTokenService
}

func newTestAuthSvc(t *testing.T) (*authService, authMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := authMocks{
		users:   mock.NewMockUserRepository(ctrl),
		hasher:  mock.NewMockPasswordHasher(ctrl),
		wallets: mock.NewMockWalletProvisioner(ctrl),
		tokens:  mock.NewMockTokenService(ctrl),
	}

	svc := NewAuthService(m.users, m.hasher, m.wallets, m.tokens, logger.Nop()).(*authService)
	return svc, m
}

var testWallet = models.Wallet{
	Address:    "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	PrivateKey: "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318",
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		m.users.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(models.User{}, store.ErrNoUserWasFound),
		m.wallets.EXPECT().Create().Return(testWallet, nil),
		m.hasher.EXPECT().Hash("pw").Return("digest", nil),
		m.users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.NotEmpty(t, u.ID)
				assert.Equal(t, "Alice", u.Name)
				assert.Equal(t, "alice@example.com", u.Email)
				assert.Equal(t, "digest", u.Password, "plaintext must never be stored")
				assert.Equal(t, testWallet.Address, u.WalletAddress)
				assert.Equal(t, testWallet.PrivateKey, u.PrivateKey)
				return u, nil
			},
		),
		m.tokens.EXPECT().Issue(ctx, gomock.Any()).Return(models.Token{SignedString: "tok"}, nil),
	)

	token, err := svc.RegisterUser(ctx, models.RegisterRequest{Name: "Alice", Email: "Alice@Example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "tok", token.String())
}

func TestAuthService_RegisterUser_Duplicate(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	// no wallet is provisioned for a taken address
	m.users.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(models.User{ID: "1"}, nil)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_RegisterUser_RaceOnInsert(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	m.users.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)
	m.wallets.EXPECT().Create().Return(testWallet, nil)
	m.hasher.EXPECT().Hash(gomock.Any()).Return("digest", nil)
	m.users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrUserAlreadyExists)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_RegisterUser_MissingFields(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{Email: "alice@example.com"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_WalletFailure(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	m.users.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)
	m.wallets.EXPECT().Create().Return(models.Wallet{}, errors.New("entropy"))

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrWalletCreation)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()
	user := models.User{ID: "u1", Email: "alice@example.com", Password: "digest"}

	gomock.InOrder(
		m.users.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(user, nil),
		m.hasher.EXPECT().Verify("pw", "digest").Return(true, nil),
		m.tokens.EXPECT().Issue(ctx, user).Return(models.Token{SignedString: "tok"}, nil),
	)

	token, err := svc.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "tok", token.SignedString)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	m.users.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{Password: "digest"}, nil)
	m.hasher.EXPECT().Verify("bad", "digest").Return(false, nil)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "bad"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_HasherErrorIsNotMismatch(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	m.users.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{Password: "broken"}, nil)
	m.hasher.EXPECT().Verify("pw", "broken").Return(false, errors.New("malformed digest"))

	_, err := svc.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrPasswordCheckFailed)
	assert.NotErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	m.users.EXPECT().FindUserByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "ghost@example.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "alice@example.com"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestAuthService_Authenticate(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()
	claims := models.Claims{}
	claims.Subject = "u1"
	user := models.User{ID: "u1", Name: "Alice"}

	m.tokens.EXPECT().Verify(ctx, "tok").Return(claims, nil)
	m.users.EXPECT().FindUserByID(ctx, "u1").Return(user, nil)

	got, err := svc.Authenticate(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_Authenticate_Expired(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	m.tokens.EXPECT().Verify(ctx, "old").Return(models.Claims{}, ErrTokenIsExpired)

	_, err := svc.Authenticate(ctx, "old")
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestAuthService_Authenticate_DeletedUser(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()
	claims := models.Claims{}
	claims.Subject = "gone"

	m.tokens.EXPECT().Verify(ctx, "tok").Return(claims, nil)
	m.users.EXPECT().FindUserByID(ctx, "gone").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Authenticate(ctx, "tok")
	assert.ErrorIs(t, err, ErrTokenIsInvalid)
}

// ── ChangePassword ───────────────────────────────────────────────────────────

func TestAuthService_ChangePassword_Success(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()
	user := models.User{ID: "u1", Password: "old-digest"}

	gomock.InOrder(
		m.users.EXPECT().FindUserByID(ctx, "u1").Return(user, nil),
		m.hasher.EXPECT().Hash("b").Return("new-digest", nil),
		m.hasher.EXPECT().Verify("a", "old-digest").Return(true, nil),
		m.users.EXPECT().UpdatePassword(ctx, "u1", "new-digest").Return(models.User{ID: "u1", Password: "new-digest"}, nil),
	)

	updated, err := svc.ChangePassword(ctx, "u1", models.ChangePasswordRequest{Old: "a", New: "b"})
	require.NoError(t, err)
	assert.Equal(t, "new-digest", updated.Password)
}

func TestAuthService_ChangePassword_WrongOldPassword(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	// the new digest is computed, but never persisted
	m.users.EXPECT().FindUserByID(ctx, "u1").Return(models.User{ID: "u1", Password: "old-digest"}, nil)
	m.hasher.EXPECT().Hash("b").Return("new-digest", nil)
	m.hasher.EXPECT().Verify("x", "old-digest").Return(false, nil)
	m.users.EXPECT().UpdatePassword(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.ChangePassword(ctx, "u1", models.ChangePasswordRequest{Old: "x", New: "b"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_ChangePassword_UnknownUser(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	m.users.EXPECT().FindUserByID(ctx, "nope").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.ChangePassword(ctx, "nope", models.ChangePasswordRequest{Old: "a", New: "b"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
