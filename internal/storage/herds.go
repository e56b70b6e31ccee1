package storage

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/milk-tracker/internal/models"
)

// CreateHerd вставляет новую запись стада и возвращает её вместе с
// присвоенным ID и датой создания.
func (s *Storage) CreateHerd(ctx context.Context, herd models.Herd) (*models.Herd, error) {
	const op = "storage.CreateHerd"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO herds (name, cow_count, location_line1, location_line2, user_id)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at`
	if err := s.DB.QueryRowContext(ctx, query,
		herd.Name, herd.CowCount, herd.LocationLine1, herd.LocationLine2,
		herd.UserID).Scan(&herd.ID, &herd.CreatedAt); err != nil {
		return nil, wrapErr(op, err)
	}
	return &herd, nil
}

// ListHerds возвращает список стад пользователя с пагинацией.
func (s *Storage) ListHerds(ctx context.Context, userID, limit, offset int) ([]*models.Herd, error) {
	const op = "storage.ListHerds"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, cow_count, location_line1, location_line2, created_at, user_id
			  FROM herds
			  WHERE user_id = $1
			  ORDER BY id
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Herd
	for rows.Next() {
		var item models.Herd
		if err := rows.Scan(&item.ID, &item.Name, &item.CowCount, &item.LocationLine1,
			&item.LocationLine2, &item.CreatedAt, &item.UserID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ReadHerd возвращает стадо по ID, если оно принадлежит пользователю.
// Чужое или несуществующее стадо возвращается как ErrNotFound.
func (s *Storage) ReadHerd(ctx context.Context, id, userID int) (*models.Herd, error) {
	const op = "storage.ReadHerd"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, cow_count, location_line1, location_line2, created_at, user_id
			  FROM herds
			  WHERE id = $1 AND user_id = $2`
	var result models.Herd
	row := s.DB.QueryRowContext(ctx, query, id, userID)
	if err := row.Scan(&result.ID, &result.Name, &result.CowCount, &result.LocationLine1,
		&result.LocationLine2, &result.CreatedAt, &result.UserID); err != nil {
		return nil, wrapErr(op, err)
	}
	return &result, nil
}

// UpdateHerd перезаписывает изменяемые поля стада, если оно принадлежит
// пользователю, и возвращает обновлённую запись.
func (s *Storage) UpdateHerd(ctx context.Context, herd models.Herd) (*models.Herd, error) {
	const op = "storage.UpdateHerd"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE herds
			  SET name = $1, cow_count = $2, location_line1 = $3, location_line2 = $4
			  WHERE id = $5 AND user_id = $6
			  RETURNING id, name, cow_count, location_line1, location_line2, created_at, user_id`
	var result models.Herd
	row := s.DB.QueryRowContext(ctx, query,
		herd.Name, herd.CowCount, herd.LocationLine1, herd.LocationLine2,
		herd.ID, herd.UserID)
	if err := row.Scan(&result.ID, &result.Name, &result.CowCount, &result.LocationLine1,
		&result.LocationLine2, &result.CreatedAt, &result.UserID); err != nil {
		return nil, wrapErr(op, err)
	}
	return &result, nil
}

// DeleteHerd удаляет стадо по ID, если оно принадлежит пользователю, и
// возвращает удалённую запись. Записи надоев удаляются каскадно.
func (s *Storage) DeleteHerd(ctx context.Context, id, userID int) (*models.Herd, error) {
	const op = "storage.DeleteHerd"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM herds
			  WHERE id = $1 AND user_id = $2
			  RETURNING id, name, cow_count, location_line1, location_line2, created_at, user_id`
	var result models.Herd
	row := s.DB.QueryRowContext(ctx, query, id, userID)
	if err := row.Scan(&result.ID, &result.Name, &result.CowCount, &result.LocationLine1,
		&result.LocationLine2, &result.CreatedAt, &result.UserID); err != nil {
		return nil, wrapErr(op, err)
	}
	return &result, nil
}
