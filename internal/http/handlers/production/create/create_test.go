package create_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/milk-tracker/internal/http/handlers/production/create"
	"github.com/magabrotheeeer/milk-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/milk-tracker/internal/models"
	"github.com/magabrotheeeer/milk-tracker/internal/storage"
)

type mockService struct {
	createFunc func(ctx context.Context, userID int, req models.DummyProduction) (*models.Production, error)
}

func (m *mockService) Create(ctx context.Context, userID int, req models.DummyProduction) (*models.Production, error) {
	return m.createFunc(ctx, userID, req)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func doCreate(service *mockService, body string, user *models.User) *httptest.ResponseRecorder {
	handler := create.New(discardLogger(), service)

	req := httptest.NewRequest(http.MethodPost, "/api/milk-production", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		ctx := context.WithValue(req.Context(), middlewarectx.CurrentUser, user)
		req = req.WithContext(ctx)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestCreateHandler(t *testing.T) {
	user := &models.User{ID: 1, Email: "farmer@example.com", IsActive: true}
	validBody := `{"date": "2025-01-01T00:00:00Z", "amount_liters": 100, "fat_percentage": 3.8, "herd_id": 7}`

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
			body: validBody,
			user: user,
			service: &mockService{
				createFunc: func(_ context.Context, userID int, req models.DummyProduction) (*models.Production, error) {
					require.Equal(t, 1, userID)
					require.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), req.Date)
					require.Equal(t, 100.0, req.AmountLiters)
					require.NotNil(t, req.FatPercentage)
					require.Equal(t, 3.8, *req.FatPercentage)
					require.Nil(t, req.ProteinPercentage)
					require.Equal(t, 7, req.HerdID)
					return &models.Production{ID: 42, Date: req.Date, AmountLiters: req.AmountLiters, HerdID: req.HerdID}, nil
				},
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":42`,
		},
		{
			name: "foreign herd is not found",
			body: validBody,
			user: user,
			service: &mockService{
				createFunc: func(_ context.Context, _ int, _ models.DummyProduction) (*models.Production, error) {
					return nil, storage.ErrNotFound
				},
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "herd not found",
		},
		{
			name:       "missing herd id",
			body:       `{"date": "2025-01-01T00:00:00Z", "amount_liters": 100}`,
			user:       user,
			service:    &mockService{},
			wantStatus: http.StatusBadRequest,
			wantBody:   "field HerdID is a required field",
		},
		{
			name:       "negative amount",
			body:       `{"date": "2025-01-01T00:00:00Z", "amount_liters": -5, "herd_id": 7}`,
			user:       user,
			service:    &mockService{},
			wantStatus: http.StatusBadRequest,
			wantBody:   "field AmountLiters must not be negative",
		},
		{
			name:       "invalid json",
			body:       `{"date": `,
			user:       user,
			service:    &mockService{},
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid request body",
		},
		{
			name:       "no user in context",
			body:       validBody,
			user:       nil,
			service:    &mockService{},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doCreate(tt.service, tt.body, tt.user)
			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantBody)
		})
	}
}
