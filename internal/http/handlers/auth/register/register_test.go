package register_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/milk-tracker/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/milk-tracker/internal/models"
	"github.com/magabrotheeeer/milk-tracker/internal/storage"
)

type mockService struct {
	registerFunc func(ctx context.Context, email, username, rawPassword string) (*models.User, error)
}

func (m *mockService) Register(ctx context.Context, email, username, rawPassword string) (*models.User, error) {
	return m.registerFunc(ctx, email, username, rawPassword)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		service    *mockService
		wantStatus int
		wantBody   string
	}{
		{
			name: "success",
			body: `{"email": "farmer@example.com", "password": "secret123"}`,
			service: &mockService{
				registerFunc: func(_ context.Context, email, username, rawPassword string) (*models.User, error) {
					require.Equal(t, "farmer@example.com", email)
					require.Empty(t, username)
					require.Equal(t, "secret123", rawPassword)
					return &models.User{
						ID:             1,
						Email:          email,
						Username:       email,
						IsActive:       true,
						MembershipType: models.MembershipFree,
					}, nil
				},
			},
			wantStatus: http.StatusOK,
			wantBody:   `"email":"farmer@example.com"`,
		},
		{
			name:       "invalid json",
			body:       `{"email": `,
			service:    &mockService{},
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid request body",
		},
		{
			name:       "missing password",
			body:       `{"email": "farmer@example.com"}`,
			service:    &mockService{},
			wantStatus: http.StatusBadRequest,
			wantBody:   "field Password is a required field",
		},
		{
			name:       "bad email",
			body:       `{"email": "not-an-email", "password": "secret123"}`,
			service:    &mockService{},
			wantStatus: http.StatusBadRequest,
			wantBody:   "field Email must be a valid email address",
		},
		{
			name: "duplicate email",
			body: `{"email": "farmer@example.com", "password": "secret123"}`,
			service: &mockService{
				registerFunc: func(_ context.Context, _, _, _ string) (*models.User, error) {
					return nil, storage.ErrDuplicate
				},
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "email already registered",
		},
		{
			name: "service failure",
			body: `{"email": "farmer@example.com", "password": "secret123"}`,
			service: &mockService{
				registerFunc: func(_ context.Context, _, _, _ string) (*models.User, error) {
					return nil, assert.AnError
				},
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "failed to register user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := register.New(discardLogger(), tt.service)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantBody)
		})
	}
}

func TestRegisterHandler_NeverLeaksHash(t *testing.T) {
	service := &mockService{
		registerFunc: func(_ context.Context, email, _, _ string) (*models.User, error) {
			return &models.User{ID: 1, Email: email, PasswordHash: "bcrypt-hash", IsActive: true}, nil
		},
	}
	handler := register.New(discardLogger(), service)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email": "farmer@example.com", "password": "secret123"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "bcrypt-hash")
}
