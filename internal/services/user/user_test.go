package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/milk-tracker/internal/lib/password"
	"github.com/magabrotheeeer/milk-tracker/internal/models"
	services "github.com/magabrotheeeer/milk-tracker/internal/services/user"
)

type mockUserRepo struct {
	updateFunc func(ctx context.Context, user models.User) (*models.User, error)
	deleteFunc func(ctx context.Context, id int) error
}

func (m *mockUserRepo) UpdateUser(ctx context.Context, user models.User) (*models.User, error) {
	return m.updateFunc(ctx, user)
}

func (m *mockUserRepo) DeleteUser(ctx context.Context, id int) error {
	return m.deleteFunc(ctx, id)
}

func strPtr(v string) *string { return &v }

func currentUser() models.User {
	return models.User{
		ID:             1,
		Email:          "farmer@example.com",
		Username:       "farmer",
		PasswordHash:   "old-hash",
		IsActive:       true,
		MembershipType: models.MembershipFree,
	}
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	var saved models.User
	repo := &mockUserRepo{
		updateFunc: func(_ context.Context, user models.User) (*models.User, error) {
			saved = user
			return &user, nil
		},
	}
	s := services.NewUserService(repo)

	_, err := s.UpdateProfile(context.Background(), currentUser(), models.DummyUpdateProfile{
		Username: strPtr("rancher"),
	})
	require.NoError(t, err)

	assert.Equal(t, "rancher", saved.Username)
	assert.Equal(t, "farmer@example.com", saved.Email)
	assert.Equal(t, "old-hash", saved.PasswordHash)
}

func TestUpdateProfile_PasswordRehashed(t *testing.T) {
	var saved models.User
	repo := &mockUserRepo{
		updateFunc: func(_ context.Context, user models.User) (*models.User, error) {
			saved = user
			return &user, nil
		},
	}
	s := services.NewUserService(repo)

	_, err := s.UpdateProfile(context.Background(), currentUser(), models.DummyUpdateProfile{
		Password: strPtr("newsecret"),
	})
	require.NoError(t, err)

	assert.NotEqual(t, "old-hash", saved.PasswordHash)
	assert.NoError(t, password.CompareHash(saved.PasswordHash, "newsecret"))
}

func TestUpdateProfile_BlankPasswordIgnored(t *testing.T) {
	tests := []struct {
		name     string
		password *string
	}{
		{name: "nil", password: nil},
		{name: "empty", password: strPtr("")},
		{name: "whitespace", password: strPtr("   ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var saved models.User
			repo := &mockUserRepo{
				updateFunc: func(_ context.Context, user models.User) (*models.User, error) {
					saved = user
					return &user, nil
				},
			}
			s := services.NewUserService(repo)

			_, err := s.UpdateProfile(context.Background(), currentUser(), models.DummyUpdateProfile{
				Password: tt.password,
			})
			require.NoError(t, err)
			assert.Equal(t, "old-hash", saved.PasswordHash)
		})
	}
}

func TestUpdateMembership(t *testing.T) {
	var saved models.User
	repo := &mockUserRepo{
		updateFunc: func(_ context.Context, user models.User) (*models.User, error) {
			saved = user
			return &user, nil
		},
	}
	s := services.NewUserService(repo)

	_, err := s.UpdateMembership(context.Background(), currentUser(), models.MembershipAnnual)
	require.NoError(t, err)
	assert.Equal(t, models.MembershipAnnual, saved.MembershipType)
}

func TestDelete(t *testing.T) {
	var deletedID int
	repo := &mockUserRepo{
		deleteFunc: func(_ context.Context, id int) error {
			deletedID = id
			return nil
		},
	}
	s := services.NewUserService(repo)

	require.NoError(t, s.Delete(context.Background(), 1))
	assert.Equal(t, 1, deletedID)
}
