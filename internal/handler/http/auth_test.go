// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sparxrahulpawar/tsxChat/internal/service"
	"github.com/sparxrahulpawar/tsxChat/internal/utils"
	"github.com/sparxrahulpawar/tsxChat/internal/validators"
	"github.com/sparxrahulpawar/tsxChat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jane = models.User{ID: "u1", Fullname: "Jane", Email: "jane@x.com", Password: "$2a$12$hash"}

// ─────────────────────────────────────────────
// signup
// ─────────────────────────────────────────────

func TestSignup_Success(t *testing.T) {
	auth := &mockAuthService{
		signupFn: func(_ context.Context, req models.SignupRequest) (models.AuthResult, error) {
			assert.Equal(t, "Jane", req.Fullname)
			assert.Equal(t, "jane@x.com", req.Email)
			assert.Equal(t, "secret123", req.Password)
			return models.AuthResult{User: jane.Sanitized(), Token: "signed.jwt.token"}, nil
		},
	}
	h := newHandlerWithServices(t, &service.Services{AuthService: auth})

	body := `{"fullname":"Jane","email":"jane@x.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-up", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var data models.AuthResult
	assert.Equal(t, "User created successfully", decodeResponse(t, rec, &data))
	assert.Equal(t, "signed.jwt.token", data.Token)
	assert.Equal(t, "u1", data.User.ID)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestSignup_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		serviceErr  error
		wantStatus  int
		wantStatusS string
		wantMessage string
	}{
		{
			name:        "invalid JSON",
			body:        `{"fullname":`,
			wantStatus:  http.StatusBadRequest,
			wantStatusS: models.StatusFail,
			wantMessage: "Invalid JSON was passed",
		},
		{
			name:        "missing fields",
			body:        `{"email":"jane@x.com"}`,
			serviceErr:  fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidSignupRequest),
			wantStatus:  http.StatusBadRequest,
			wantStatusS: models.StatusFail,
			wantMessage: "All fields are required",
		},
		{
			name:        "email taken",
			body:        `{"fullname":"Jane","email":"jane@x.com","password":"x"}`,
			serviceErr:  service.ErrEmailTaken,
			wantStatus:  http.StatusBadRequest,
			wantStatusS: models.StatusFail,
			wantMessage: "User already exists",
		},
		{
			name:        "unexpected error",
			body:        `{"fullname":"Jane","email":"jane@x.com","password":"x"}`,
			serviceErr:  errors.New("db exploded"),
			wantStatus:  http.StatusInternalServerError,
			wantStatusS: models.StatusError,
			wantMessage: "Something went wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				signupFn: func(context.Context, models.SignupRequest) (models.AuthResult, error) {
					return models.AuthResult{}, tt.serviceErr
				},
			}
			h := newHandlerWithServices(t, &service.Services{AuthService: auth})

			req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-up", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.signup(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantStatusS, body.Status)
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.NotContains(t, rec.Body.String(), "db exploded")
		})
	}
}

func TestSignup_EmptyBodyReachesValidation(t *testing.T) {
	var called bool
	auth := &mockAuthService{
		signupFn: func(_ context.Context, req models.SignupRequest) (models.AuthResult, error) {
			called = true
			assert.Equal(t, models.SignupRequest{}, req)
			return models.AuthResult{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidSignupRequest)
		},
	}
	h := newHandlerWithServices(t, &service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-up", http.NoBody)
	rec := httptest.NewRecorder()
	h.signup(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.AuthResult, error) {
			assert.Equal(t, "jane@x.com", req.Email)
			return models.AuthResult{User: jane.Sanitized(), Token: "tok"}, nil
		},
	}
	h := newHandlerWithServices(t, &service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"jane@x.com","password":"secret123"}`))
	rec := httptest.NewRecorder()
	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var data models.AuthResult
	assert.Equal(t, "Login successful", decodeResponse(t, rec, &data))
	assert.Equal(t, "tok", data.Token)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing fields",
			serviceErr:  fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidLoginRequest),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Email and password are required",
		},
		{
			name:        "bad credentials",
			serviceErr:  service.ErrInvalidCredentials,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid email or password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(context.Context, models.LoginRequest) (models.AuthResult, error) {
					return models.AuthResult{}, tt.serviceErr
				},
			}
			h := newHandlerWithServices(t, &service.Services{AuthService: auth})

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"jane@x.com"}`))
			rec := httptest.NewRecorder()
			h.login(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeError(t, rec).Message)
		})
	}
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

func TestLogout(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		logoutErr   error
		wantCalled  bool
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "success",
			header:      "Bearer tok",
			wantCalled:  true,
			wantStatus:  http.StatusOK,
			wantMessage: "Logged out successfully",
		},
		{
			name:        "no header",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Token is required for logout",
		},
		{
			name:        "wrong scheme",
			header:      "Basic dXNlcjpwYXNz",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Token is required for logout",
		},
		{
			name:        "session already gone",
			header:      "Bearer tok",
			logoutErr:   service.ErrLogoutSessionNotFound,
			wantCalled:  true,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid or expired session",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			auth := &mockAuthService{
				logoutFn: func(_ context.Context, token string) error {
					called = true
					assert.Equal(t, "tok", token)
					return tt.logoutErr
				},
			}
			h := newHandlerWithServices(t, &service.Services{AuthService: auth})

			req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.logout(rec, req)

			assert.Equal(t, tt.wantCalled, called)
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMessage)
		})
	}
}

// ─────────────────────────────────────────────
// me
// ─────────────────────────────────────────────

func TestMe_Success(t *testing.T) {
	auth := &mockAuthService{
		getCurrentUserFn: func(_ context.Context, userID string) (models.User, error) {
			assert.Equal(t, "u1", userID)
			return jane.Sanitized(), nil
		},
	}
	h := newHandlerWithServices(t, &service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req = req.WithContext(utils.WithIdentity(req.Context(), models.IdentityOf(jane)))
	rec := httptest.NewRecorder()
	h.me(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var user models.User
	assert.Equal(t, "User retrieved successfully", decodeResponse(t, rec, &user))
	assert.Equal(t, "Jane", user.Fullname)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "$2a$")
}

func TestMe_NoIdentity(t *testing.T) {
	h := newHandlerWithServices(t, &service.Services{AuthService: &mockAuthService{}})

	rec := httptest.NewRecorder()
	h.me(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe_UserNotFound(t *testing.T) {
	auth := &mockAuthService{
		getCurrentUserFn: func(context.Context, string) (models.User, error) {
			return models.User{}, service.ErrUserNotFound
		},
	}
	h := newHandlerWithServices(t, &service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req = req.WithContext(utils.WithIdentity(req.Context(), models.Identity{ID: "u1"}))
	rec := httptest.NewRecorder()
	h.me(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decodeError(t, rec).Message)
}
