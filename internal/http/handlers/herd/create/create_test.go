package create_test

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

	"github.com/magabrotheeeer/milk-tracker/internal/http/handlers/herd/create"
	"github.com/magabrotheeeer/milk-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/milk-tracker/internal/models"
)

type mockService struct {
	createFunc func(ctx context.Context, userID int, req models.DummyHerd) (*models.Herd, error)
}

func (m *mockService) Create(ctx context.Context, userID int, req models.DummyHerd) (*models.Herd, error) {
	return m.createFunc(ctx, userID, req)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func requestWithUser(method, target, body string, user *models.User) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		ctx := context.WithValue(req.Context(), middlewarectx.CurrentUser, user)
		req = req.WithContext(ctx)
	}
	return req
}

func TestCreateHandler(t *testing.T) {
	user := &models.User{ID: 1, Email: "farmer@example.com", IsActive: true}

	tests := []struct {
		name       string
		body       string
		user       *models.User
		service    *mockService
		wantStatus int
		wantBody   string
	}{
		{
			name: "success",
			body: `{"name": "North", "cow_count": 10}`,
			user: user,
			service: &mockService{
				createFunc: func(_ context.Context, userID int, req models.DummyHerd) (*models.Herd, error) {
					require.Equal(t, 1, userID)
					require.Equal(t, "North", req.Name)
					require.Equal(t, 10, req.CowCount)
					return &models.Herd{ID: 7, Name: req.Name, CowCount: req.CowCount, UserID: userID}, nil
				},
			},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"North"`,
		},
		{
			name:       "no user in context",
			body:       `{"name": "North", "cow_count": 10}`,
			user:       nil,
			service:    &mockService{},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "unauthorized",
		},
		{
			name:       "invalid json",
			body:       `{"name": `,
			user:       user,
			service:    &mockService{},
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid request body",
		},
		{
			name:       "missing name",
			body:       `{"cow_count": 10}`,
			user:       user,
			service:    &mockService{},
			wantStatus: http.StatusBadRequest,
			wantBody:   "field Name is a required field",
		},
		{
			name:       "negative cow count",
			body:       `{"name": "North", "cow_count": -1}`,
			user:       user,
			service:    &mockService{},
			wantStatus: http.StatusBadRequest,
			wantBody:   "field CowCount must not be negative",
		},
		{
			name: "service failure",
			body: `{"name": "North", "cow_count": 10}`,
			user: user,
			service: &mockService{
				createFunc: func(_ context.Context, _ int, _ models.DummyHerd) (*models.Herd, error) {
					return nil, assert.AnError
				},
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "could not create herd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := create.New(discardLogger(), tt.service)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, requestWithUser(http.MethodPost, "/api/herds", tt.body, tt.user))

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantBody)
		})
	}
}
