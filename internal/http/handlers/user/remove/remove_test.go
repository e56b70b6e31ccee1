package remove_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/milk-tracker/internal/http/handlers/user/remove"
	"github.com/magabrotheeeer/milk-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/milk-tracker/internal/models"
)

type mockService struct {
	deleteFunc func(ctx context.Context, id int) error
}

func (m *mockService) Delete(ctx context.Context, id int) error {
	return m.deleteFunc(ctx, id)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRemoveHandler_Success(t *testing.T) {
	var deletedID int
	service := &mockService{
		deleteFunc: func(_ context.Context, id int) error {
			deletedID = id
			return nil
		},
	}
	handler := remove.New(discardLogger(), service)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/me", nil)
	ctx := context.WithValue(req.Context(), middlewarectx.CurrentUser,
		&models.User{ID: 1, Email: "farmer@example.com", IsActive: true})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req.WithContext(ctx))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, deletedID)
	assert.JSONEq(t, `{"detail":"user account deleted successfully"}`, rr.Body.String())
}

func TestRemoveHandler_NoUser(t *testing.T) {
	handler := remove.New(discardLogger(), &mockService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/users/me", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRemoveHandler_ServiceFailure(t *testing.T) {
	service := &mockService{
		deleteFunc: func(_ context.Context, _ int) error {
			return assert.AnError
		},
	}
	handler := remove.New(discardLogger(), service)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/me", nil)
	ctx := context.WithValue(req.Context(), middlewarectx.CurrentUser,
		&models.User{ID: 1, IsActive: true})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req.WithContext(ctx))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
