package storage

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/milk-tracker/internal/models"
)

// CreateProduction вставляет новую запись надоя, одновременно проверяя, что
// целевое стадо принадлежит пользователю: INSERT выполняется через SELECT по
// таблице стад. Если стадо чужое или не существует, строка не вставляется и
// возвращается ErrNotFound.
func (s *Storage) CreateProduction(ctx context.Context, p models.Production, userID int) (*models.Production, error) {
	const op = "storage.CreateProduction"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO milk_productions (date, amount_liters, fat_percentage, protein_percentage, herd_id)
			  SELECT $1, $2, $3, $4, h.id
			  FROM herds h
			  WHERE h.id = $5 AND h.user_id = $6
			  RETURNING id, created_at`
	if err := s.DB.QueryRowContext(ctx, query,
		p.Date, p.AmountLiters, p.FatPercentage, p.ProteinPercentage,
		p.HerdID, userID).Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, wrapErr(op, err)
	}
	return &p, nil
}

// ListProductions возвращает записи надоев по стадам пользователя с
// пагинацией. Выборка всегда идёт через соединение со стадами: запись надоя
// недоступна вне цепочки владения. herdID опционален.
func (s *Storage) ListProductions(ctx context.Context, userID int, herdID *int, limit, offset int) ([]*models.Production, error) {
	const op = "storage.ListProductions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT mp.id, mp.date, mp.amount_liters, mp.fat_percentage,
			      mp.protein_percentage, mp.created_at, mp.herd_id
			  FROM milk_productions mp
			  JOIN herds h ON h.id = mp.herd_id
			  WHERE h.user_id = $1
			  	AND ($2::int IS NULL OR mp.herd_id = $2)
			  ORDER BY mp.id
			  LIMIT $3 OFFSET $4`
	rows, err := s.DB.QueryContext(ctx, query, userID, herdID, limit, offset)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Production
	for rows.Next() {
		var item models.Production
		if err := rows.Scan(&item.ID, &item.Date, &item.AmountLiters, &item.FatPercentage,
			&item.ProteinPercentage, &item.CreatedAt, &item.HerdID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ReadProduction возвращает запись надоя по ID, если её стадо принадлежит
// пользователю.
func (s *Storage) ReadProduction(ctx context.Context, id, userID int) (*models.Production, error) {
	const op = "storage.ReadProduction"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT mp.id, mp.date, mp.amount_liters, mp.fat_percentage,
			      mp.protein_percentage, mp.created_at, mp.herd_id
			  FROM milk_productions mp
			  JOIN herds h ON h.id = mp.herd_id
			  WHERE mp.id = $1 AND h.user_id = $2`
	var result models.Production
	row := s.DB.QueryRowContext(ctx, query, id, userID)
	if err := row.Scan(&result.ID, &result.Date, &result.AmountLiters, &result.FatPercentage,
		&result.ProteinPercentage, &result.CreatedAt, &result.HerdID); err != nil {
		return nil, wrapErr(op, err)
	}
	return &result, nil
}

// UpdateProduction перезаписывает поля записи надоя одним запросом. Запись
// должна принадлежать пользователю через текущее стадо, а новое стадо (при
// переносе записи) — тоже быть его собственным, иначе ErrNotFound.
func (s *Storage) UpdateProduction(ctx context.Context, p models.Production, userID int) (*models.Production, error) {
	const op = "storage.UpdateProduction"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE milk_productions mp
			  SET date = $1, amount_liters = $2, fat_percentage = $3,
			      protein_percentage = $4, herd_id = $5
			  WHERE mp.id = $6
			  	AND mp.herd_id IN (SELECT id FROM herds WHERE user_id = $7)
			  	AND $5 IN (SELECT id FROM herds WHERE user_id = $7)
			  RETURNING mp.id, mp.date, mp.amount_liters, mp.fat_percentage,
			      mp.protein_percentage, mp.created_at, mp.herd_id`
	var result models.Production
	row := s.DB.QueryRowContext(ctx, query,
		p.Date, p.AmountLiters, p.FatPercentage, p.ProteinPercentage,
		p.HerdID, p.ID, userID)
	if err := row.Scan(&result.ID, &result.Date, &result.AmountLiters, &result.FatPercentage,
		&result.ProteinPercentage, &result.CreatedAt, &result.HerdID); err != nil {
		return nil, wrapErr(op, err)
	}
	return &result, nil
}

// DeleteProduction удаляет запись надоя по ID, если её стадо принадлежит
// пользователю, и возвращает удалённую запись.
func (s *Storage) DeleteProduction(ctx context.Context, id, userID int) (*models.Production, error) {
	const op = "storage.DeleteProduction"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM milk_productions mp
			  USING herds h
			  WHERE mp.id = $1 AND mp.herd_id = h.id AND h.user_id = $2
			  RETURNING mp.id, mp.date, mp.amount_liters, mp.fat_percentage,
			      mp.protein_percentage, mp.created_at, mp.herd_id`
	var result models.Production
	row := s.DB.QueryRowContext(ctx, query, id, userID)
	if err := row.Scan(&result.ID, &result.Date, &result.AmountLiters, &result.FatPercentage,
		&result.ProteinPercentage, &result.CreatedAt, &result.HerdID); err != nil {
		return nil, wrapErr(op, err)
	}
	return &result, nil
}

// ProductionStats подсчитывает суммарный объём и количество различных
// календарных дат по записям надоев в пределах фильтра. Две записи за одну
// дату считаются одним днём. Пустая выборка даёт нули, а не ошибку.
func (s *Storage) ProductionStats(ctx context.Context, filter models.StatsFilter) (float64, int, error) {
	const op = "storage.ProductionStats"
	select {
	case <-ctx.Done():
		return 0, 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COALESCE(SUM(mp.amount_liters), 0), COUNT(DISTINCT mp.date::date)
			  FROM milk_productions mp
			  JOIN herds h ON h.id = mp.herd_id
			  WHERE h.user_id = $1
			  	AND ($2::int IS NULL OR mp.herd_id = $2)
			  	AND ($3::timestamptz IS NULL OR mp.date >= $3)`
	var total float64
	var days int
	row := s.DB.QueryRowContext(ctx, query, filter.UserID, filter.HerdID, filter.Cutoff)
	if err := row.Scan(&total, &days); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, days, nil
}
