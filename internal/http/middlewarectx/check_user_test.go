package middlewarectx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/milk-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/milk-tracker/internal/models"
	"github.com/magabrotheeeer/milk-tracker/internal/storage"
)

type mockUserProvider struct {
	getFunc func(ctx context.Context, email string) (*models.User, error)
}

func (m *mockUserProvider) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.getFunc(ctx, email)
}

func TestCurrentUserMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		ctxEmail   any
		provider   *mockUserProvider
		wantStatus int
		wantUserID int
	}{
		{
			name:     "active user resolved",
			ctxEmail: "farmer@example.com",
			provider: &mockUserProvider{
				getFunc: func(_ context.Context, email string) (*models.User, error) {
					return &models.User{ID: 1, Email: email, IsActive: true}, nil
				},
			},
			wantStatus: http.StatusOK,
			wantUserID: 1,
		},
		{
			name:       "no email in context",
			ctxEmail:   nil,
			provider:   &mockUserProvider{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:     "user deleted after token issued",
			ctxEmail: "gone@example.com",
			provider: &mockUserProvider{
				getFunc: func(_ context.Context, _ string) (*models.User, error) {
					return nil, storage.ErrNotFound
				},
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:     "inactive user",
			ctxEmail: "farmer@example.com",
			provider: &mockUserProvider{
				getFunc: func(_ context.Context, email string) (*models.User, error) {
					return &models.User{ID: 1, Email: email, IsActive: false}, nil
				},
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser *models.User
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, _ = r.Context().Value(middlewarectx.CurrentUser).(*models.User)
				w.WriteHeader(http.StatusOK)
			})

			handler := middlewarectx.CurrentUserMiddleware(tt.provider, discardLogger())(next)

			req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
			if tt.ctxEmail != nil {
				ctx := context.WithValue(req.Context(), middlewarectx.Email, tt.ctxEmail)
				req = req.WithContext(ctx)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantUserID != 0 {
				require.NotNil(t, gotUser)
				assert.Equal(t, tt.wantUserID, gotUser.ID)
			}
		})
	}
}
