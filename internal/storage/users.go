package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/milk-tracker/internal/models"
)

// RegisterUser сохраняет нового пользователя в базу данных и возвращает созданную запись.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.RegisterUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (email, username, password_hash, is_active, membership_type)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Email, user.Username, user.PasswordHash, user.IsActive,
		user.MembershipType).Scan(&user.ID); err != nil {
		return nil, wrapErr(op, err)
	}
	return &user, nil
}

// GetUserByEmail возвращает пользователя по его email.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, username, password_hash, is_active, membership_type
			  FROM users
			  WHERE email = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, email)

	var username sql.NullString
	if err := row.Scan(&u.ID, &u.Email, &username, &u.PasswordHash,
		&u.IsActive, &u.MembershipType); err != nil {
		return nil, wrapErr(op, err)
	}
	if username.Valid {
		u.Username = username.String
	}
	return u, nil
}

// UpdateUser перезаписывает изменяемые поля пользователя одним запросом.
// Нарушение уникальности email или username возвращается как ErrDuplicate.
func (s *Storage) UpdateUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.UpdateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET email = $1, username = $2, password_hash = $3, membership_type = $4
			  WHERE id = $5
			  RETURNING id, email, username, password_hash, is_active, membership_type`
	u := &models.User{}
	var username sql.NullString
	if err := s.DB.QueryRowContext(ctx, query,
		user.Email, user.Username, user.PasswordHash, user.MembershipType,
		user.ID).Scan(&u.ID, &u.Email, &username, &u.PasswordHash,
		&u.IsActive, &u.MembershipType); err != nil {
		return nil, wrapErr(op, err)
	}
	if username.Valid {
		u.Username = username.String
	}
	return u, nil
}

// DeleteUser удаляет пользователя по ID. Стада и записи надоев удаляются
// каскадно внешними ключами.
func (s *Storage) DeleteUser(ctx context.Context, id int) error {
	const op = "storage.DeleteUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM users WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return wrapErr(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
