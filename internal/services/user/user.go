// Package services содержит бизнес-логику для управления профилем пользователя.
package services

import (
	"context"
	"strings"

	"github.com/magabrotheeeer/milk-tracker/internal/lib/password"
	"github.com/magabrotheeeer/milk-tracker/internal/models"
)

// UserRepository определяет методы для работы с пользователями в хранилище.
type UserRepository interface {
	// UpdateUser перезаписывает изменяемые поля пользователя.
	UpdateUser(ctx context.Context, user models.User) (*models.User, error)
	// DeleteUser удаляет пользователя вместе со стадами и записями надоев.
	DeleteUser(ctx context.Context, id int) error
}

// UserService реализует операции над собственной учётной записью пользователя.
type UserService struct {
	repo UserRepository
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// UpdateProfile применяет частичное обновление профиля к текущему
// пользователю и сохраняет результат одним запросом. Отсутствующие поля
// остаются без изменений, пустой пароль игнорируется. Конфликт уникальности
// email или username приходит из хранилища как ErrDuplicate.
func (s *UserService) UpdateProfile(ctx context.Context, current models.User, req models.DummyUpdateProfile) (*models.User, error) {
	if req.Username != nil {
		current.Username = *req.Username
	}
	if req.Email != nil {
		current.Email = *req.Email
	}
	if req.Password != nil && strings.TrimSpace(*req.Password) != "" {
		hashed, err := password.GetHash(*req.Password)
		if err != nil {
			return nil, err
		}
		current.PasswordHash = hashed
	}
	return s.repo.UpdateUser(ctx, current)
}

// UpdateMembership меняет тип членства текущего пользователя.
// Валидность значения проверяет обработчик.
func (s *UserService) UpdateMembership(ctx context.Context, current models.User, membership string) (*models.User, error) {
	current.MembershipType = membership
	return s.repo.UpdateUser(ctx, current)
}

// Delete удаляет учётную запись пользователя. Стада и записи надоев
// удаляются каскадно на уровне базы.
func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.repo.DeleteUser(ctx, id)
}
