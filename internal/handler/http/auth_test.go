package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/Reznov00/wallet-keeper/internal/service"
	"github.com/Reznov00/wallet-keeper/internal/validators"
	"github.com/Reznov00/wallet-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubToken(signed string) models.Token {
	t := models.Token{SignedString: signed}
	t.Subject = testUserID
	return t
}

func withAuth(auth *mockAuthService) *service.Services {
	svcs := newTestServices()
	svcs.AuthService = auth
	return svcs
}

// ── register ──────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	var got models.RegisterRequest
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, request models.RegisterRequest) (models.Token, error) {
			got = request
			return stubToken(testToken), nil
		},
	}
	h := newTestHandler(t, withAuth(auth))

	body := toJSON(t, models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "pw"})
	rec := serve(t, h, http.MethodPost, "/api/users/register", body, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer "+testToken, rec.Header().Get("Authorization"))
	assert.Equal(t, "Alice", got.Name)

	var resp models.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, testToken, resp.Token)
}

func TestRegister_SignupAlias(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.RegisterRequest) (models.Token, error) {
			return stubToken(testToken), nil
		},
	}
	h := newTestHandler(t, withAuth(auth))

	rec := serve(t, h, http.MethodPost, "/api/users/signup", `{"name":"a","email":"a@b.c","password":"p"}`, nil)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, withAuth(&mockAuthService{}))

	rec := serve(t, h, http.MethodPost, "/api/users/register", `{"name":`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errInvalidJSON, decodeError(t, rec).Error)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "missing fields",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyPassword),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate user",
			err:        service.ErrUserAlreadyExists,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "wallet failure",
			err:        fmt.Errorf("%w: entropy", service.ErrWalletCreation),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				registerUserFn: func(_ context.Context, _ models.RegisterRequest) (models.Token, error) {
					return models.Token{}, tt.err
				},
			}
			h := newTestHandler(t, withAuth(auth))

			rec := serve(t, h, http.MethodPost, "/api/users/register", `{"name":"a"}`, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, rec.Header().Get("Authorization"))
			decodeError(t, rec)
		})
	}
}

// ── login ─────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, request models.LoginRequest) (models.Token, error) {
			assert.Equal(t, "alice@example.com", request.Email)
			return stubToken(testToken), nil
		},
	}
	h := newTestHandler(t, withAuth(auth))

	rec := serve(t, h, http.MethodPost, "/api/users/login", `{"email":"alice@example.com","password":"pw"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"`+testToken+`"}`, rec.Body.String())
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "missing fields",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyEmail),
			wantStatus: http.StatusForbidden,
		},
		{
			name:        "unknown user",
			err:         service.ErrUserNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "User not found",
		},
		{
			name:        "wrong password",
			err:         service.ErrWrongPassword,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Wrong password",
		},
		{
			name:        "hasher failure",
			err:         fmt.Errorf("%w: malformed digest", service.ErrPasswordCheckFailed),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(_ context.Context, _ models.LoginRequest) (models.Token, error) {
					return models.Token{}, tt.err
				},
			}
			h := newTestHandler(t, withAuth(auth))

			rec := serve(t, h, http.MethodPost, "/api/users/login", `{}`, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, body.Error)
			}
		})
	}
}

// ── checkAuth ─────────────────────────────────────────────────────────────────

func TestCheckAuth_Success(t *testing.T) {
	auth := &mockAuthService{
		authenticateFn: func(_ context.Context, tokenString string) (models.User, error) {
			assert.Equal(t, testToken, tokenString)
			return models.User{
				ID:            testUserID,
				Name:          "Alice",
				Email:         "alice@example.com",
				WalletAddress: "0xAbC",
				PrivateKey:    "0xkey",
			}, nil
		},
	}
	h := newTestHandler(t, withAuth(auth))

	rec := serve(t, h, http.MethodGet, "/api/users/auth", "", bearer())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"authenticated": true,
		"user": {"name":"Alice","email":"alice@example.com","wallet":"0xAbC","privateKey":"0xkey"}
	}`, rec.Body.String())
}

func TestCheckAuth_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		err     error
	}{
		{name: "no header", headers: nil},
		{name: "wrong scheme", headers: map[string]string{"Authorization": "Basic abc"}},
		{name: "expired", headers: bearer(), err: service.ErrTokenIsExpired},
		{name: "tampered", headers: bearer(), err: service.ErrTokenIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				authenticateFn: func(_ context.Context, _ string) (models.User, error) {
					return models.User{}, tt.err
				},
			}
			h := newTestHandler(t, withAuth(auth))

			rec := serve(t, h, http.MethodGet, "/api/users/auth", "", tt.headers)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			decodeError(t, rec)
		})
	}
}

// ── changePassword ────────────────────────────────────────────────────────────

func TestChangePassword_Success(t *testing.T) {
	auth := &mockAuthService{
		changePasswordFn: func(_ context.Context, userID string, request models.ChangePasswordRequest) (models.User, error) {
			assert.Equal(t, testUserID, userID)
			assert.Equal(t, "old", request.Old)
			assert.Equal(t, "new", request.New)
			return models.User{ID: userID, Name: "Alice", Password: "digest", PrivateKey: "0xkey"}, nil
		},
	}
	h := newTestHandler(t, withAuth(auth))

	rec := serve(t, h, http.MethodPut, "/api/users/changePassword/"+testUserID, `{"old":"old","new":"new"}`, bearer())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.NotContains(t, rec.Body.String(), "digest")
	assert.NotContains(t, rec.Body.String(), "0xkey")
}

func TestChangePassword_OtherUser(t *testing.T) {
	auth := &mockAuthService{
		changePasswordFn: func(_ context.Context, _ string, _ models.ChangePasswordRequest) (models.User, error) {
			t.Fatal("service must not be called for a foreign id")
			return models.User{}, nil
		},
	}
	h := newTestHandler(t, withAuth(auth))

	rec := serve(t, h, http.MethodPut, "/api/users/changePassword/someone-else", `{"old":"a","new":"b"}`, bearer())

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestChangePassword_WrongPassword(t *testing.T) {
	auth := &mockAuthService{
		changePasswordFn: func(_ context.Context, _ string, _ models.ChangePasswordRequest) (models.User, error) {
			return models.User{}, service.ErrWrongPassword
		},
	}
	h := newTestHandler(t, withAuth(auth))

	rec := serve(t, h, http.MethodPut, "/api/users/changePassword/"+testUserID, `{"old":"a","new":"b"}`, bearer())

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Wrong password", decodeError(t, rec).Error)
}

func TestChangePassword_NoToken(t *testing.T) {
	h := newTestHandler(t, withAuth(&mockAuthService{}))

	rec := serve(t, h, http.MethodPut, "/api/users/changePassword/"+testUserID, `{"old":"a","new":"b"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, ErrEmptyAuthorizationHeader.Error(), decodeError(t, rec).Error)
}
