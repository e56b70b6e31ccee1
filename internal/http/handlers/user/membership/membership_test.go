package membership_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/milk-tracker/internal/http/handlers/user/membership"
	"github.com/magabrotheeeer/milk-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/milk-tracker/internal/models"
)

type mockService struct {
	updateFunc func(ctx context.Context, current models.User, membership string) (*models.User, error)
}

func (m *mockService) UpdateMembership(ctx context.Context, current models.User, value string) (*models.User, error) {
	return m.updateFunc(ctx, current, value)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func doUpdate(service *mockService, target string) *httptest.ResponseRecorder {
	handler := membership.New(discardLogger(), service)

	req := httptest.NewRequest(http.MethodPut, target, nil)
	ctx := context.WithValue(req.Context(), middlewarectx.CurrentUser,
		&models.User{ID: 1, Email: "farmer@example.com", IsActive: true, MembershipType: models.MembershipFree})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req.WithContext(ctx))
	return rr
}

func TestMembershipHandler_Success(t *testing.T) {
	service := &mockService{
		updateFunc: func(_ context.Context, current models.User, value string) (*models.User, error) {
			require.Equal(t, 1, current.ID)
			require.Equal(t, models.MembershipLifetime, value)
			current.MembershipType = value
			return &current, nil
		},
	}
	rr := doUpdate(service, "/api/users/me/membership?membership_type=lifetime")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"membership_type":"lifetime"`)
}

func TestMembershipHandler_InvalidType(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "unknown value", target: "/api/users/me/membership?membership_type=platinum"},
		{name: "missing param", target: "/api/users/me/membership"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doUpdate(&mockService{}, tt.target)
			require.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), "invalid membership type")
		})
	}
}

func TestMembershipHandler_ServiceFailure(t *testing.T) {
	service := &mockService{
		updateFunc: func(_ context.Context, _ models.User, _ string) (*models.User, error) {
			return nil, assert.AnError
		},
	}
	rr := doUpdate(service, "/api/users/me/membership?membership_type=annual")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
