package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/milk-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/milk-tracker/internal/lib/password"
	"github.com/magabrotheeeer/milk-tracker/internal/models"
	services "github.com/magabrotheeeer/milk-tracker/internal/services/auth"
)

type mockUserRepo struct {
	registerFunc func(ctx context.Context, user models.User) (*models.User, error)
	getFunc      func(ctx context.Context, email string) (*models.User, error)
}

func (m *mockUserRepo) RegisterUser(ctx context.Context, user models.User) (*models.User, error) {
	return m.registerFunc(ctx, user)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.getFunc(ctx, email)
}

func TestRegister_DefaultsAndHash(t *testing.T) {
	var saved models.User
	repo := &mockUserRepo{
		registerFunc: func(_ context.Context, user models.User) (*models.User, error) {
			saved = user
			user.ID = 1
			return &user, nil
		},
	}
	s := services.NewAuthService(repo, jwt.NewJWTMaker("test-secret", time.Hour))

	created, err := s.Register(context.Background(), "farmer@example.com", "", "secret123")
	require.NoError(t, err)

	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "farmer@example.com", saved.Email)
	assert.Equal(t, "farmer@example.com", saved.Username)
	assert.True(t, saved.IsActive)
	assert.Equal(t, models.MembershipFree, saved.MembershipType)
	assert.NotEqual(t, "secret123", saved.PasswordHash)
	assert.NoError(t, password.CompareHash(saved.PasswordHash, "secret123"))
}

func TestRegister_ExplicitUsernameKept(t *testing.T) {
	repo := &mockUserRepo{
		registerFunc: func(_ context.Context, user models.User) (*models.User, error) {
			return &user, nil
		},
	}
	s := services.NewAuthService(repo, jwt.NewJWTMaker("test-secret", time.Hour))

	created, err := s.Register(context.Background(), "farmer@example.com", "farmer", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "farmer", created.Username)
}

func TestLogin_Success(t *testing.T) {
	hash, err := password.GetHash("secret123")
	require.NoError(t, err)

	repo := &mockUserRepo{
		getFunc: func(_ context.Context, email string) (*models.User, error) {
			require.Equal(t, "farmer@example.com", email)
			return &models.User{ID: 1, Email: email, PasswordHash: hash, IsActive: true}, nil
		},
	}
	maker := jwt.NewJWTMaker("test-secret", time.Hour)
	s := services.NewAuthService(repo, maker)

	token, err := s.Login(context.Background(), "farmer@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := s.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "farmer@example.com", email)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := password.GetHash("secret123")
	require.NoError(t, err)

	repo := &mockUserRepo{
		getFunc: func(_ context.Context, email string) (*models.User, error) {
			return &models.User{Email: email, PasswordHash: hash}, nil
		},
	}
	s := services.NewAuthService(repo, jwt.NewJWTMaker("test-secret", time.Hour))

	_, err = s.Login(context.Background(), "farmer@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	repo := &mockUserRepo{
		getFunc: func(_ context.Context, _ string) (*models.User, error) {
			return nil, assert.AnError
		},
	}
	s := services.NewAuthService(repo, jwt.NewJWTMaker("test-secret", time.Hour))

	_, err := s.Login(context.Background(), "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestValidateToken_Invalid(t *testing.T) {
	s := services.NewAuthService(&mockUserRepo{}, jwt.NewJWTMaker("test-secret", time.Hour))

	_, err := s.ValidateToken(context.Background(), "not-a-token")
	assert.Error(t, err)
}
