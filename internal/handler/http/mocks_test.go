package http

import (
	"context"

	"github.com/Reznov00/wallet-keeper/models"
)

// Function-field fakes of the service interfaces. Each test overrides only
// the methods it expects to be called.

type mockTokenService struct {
	issueFn  func(ctx context.Context, user models.User) (models.Token, error)
	verifyFn func(ctx context.Context, tokenString string) (models.Claims, error)
}

func (m *mockTokenService) Issue(ctx context.Context, user models.User) (models.Token, error) {
	return m.issueFn(ctx, user)
}

func (m *mockTokenService) Verify(ctx context.Context, tokenString string) (models.Claims, error) {
	return m.verifyFn(ctx, tokenString)
}

type mockAuthService struct {
	registerUserFn   func(ctx context.Context, request models.RegisterRequest) (models.Token, error)
	loginFn          func(ctx context.Context, request models.LoginRequest) (models.Token, error)
	authenticateFn   func(ctx context.Context, tokenString string) (models.User, error)
	changePasswordFn func(ctx context.Context, userID string, request models.ChangePasswordRequest) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.Token, error) {
	return m.registerUserFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	return m.authenticateFn(ctx, tokenString)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, userID string, request models.ChangePasswordRequest) (models.User, error) {
	return m.changePasswordFn(ctx, userID, request)
}

type mockOTPService struct {
	issueFn func(ctx context.Context, request models.OTPRequest) (models.OTP, error)
}

func (m *mockOTPService) Issue(ctx context.Context, request models.OTPRequest) (models.OTP, error) {
	return m.issueFn(ctx, request)
}

type mockUserService struct {
	listUsersFn  func(ctx context.Context) ([]models.User, error)
	getUserFn    func(ctx context.Context, userID string) (models.User, error)
	updateUserFn func(ctx context.Context, userID string, update models.UserUpdate) (models.User, error)
	deleteUserFn func(ctx context.Context, userID string) error
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockUserService) GetUser(ctx context.Context, userID string) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockUserService) UpdateUser(ctx context.Context, userID string, update models.UserUpdate) (models.User, error) {
	return m.updateUserFn(ctx, userID, update)
}

func (m *mockUserService) DeleteUser(ctx context.Context, userID string) error {
	return m.deleteUserFn(ctx, userID)
}

type mockTransactionService struct {
	sendTokensFn func(ctx context.Context, descriptor models.TransactionDescriptor) (models.SignedTransaction, error)
}

func (m *mockTransactionService) SendTokens(ctx context.Context, descriptor models.TransactionDescriptor) (models.SignedTransaction, error) {
	return m.sendTokensFn(ctx, descriptor)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}
