// Package services содержит бизнес-логику для управления записями надоев
// и подсчёта агрегированной статистики.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/milk-tracker/internal/models"
)

// Метки временного окна статистики.
const (
	SpanWeek  = "week"
	SpanMonth = "month"
	SpanYear  = "year"
)

// ProductionRepository определяет методы для работы с записями надоев в
// хранилище. Все методы фильтруют по цепочке владения на уровне запроса.
type ProductionRepository interface {
	// CreateProduction добавляет запись надоя, проверяя владение стадом.
	CreateProduction(ctx context.Context, p models.Production, userID int) (*models.Production, error)
	// ListProductions возвращает записи надоев пользователя с пагинацией.
	ListProductions(ctx context.Context, userID int, herdID *int, limit, offset int) ([]*models.Production, error)
	// ReadProduction возвращает запись надоя по ID и владельцу.
	ReadProduction(ctx context.Context, id, userID int) (*models.Production, error)
	// UpdateProduction перезаписывает поля записи надоя.
	UpdateProduction(ctx context.Context, p models.Production, userID int) (*models.Production, error)
	// DeleteProduction удаляет запись надоя и возвращает её.
	DeleteProduction(ctx context.Context, id, userID int) (*models.Production, error)
	// ProductionStats возвращает суммарный объём и число различных дат по фильтру.
	ProductionStats(ctx context.Context, filter models.StatsFilter) (float64, int, error)
	// ReadHerd возвращает стадо по ID и владельцу, нужен для liters_per_cow.
	ReadHerd(ctx context.Context, id, userID int) (*models.Herd, error)
}

// ProductionService реализует бизнес-логику работы с записями надоев.
type ProductionService struct {
	repo ProductionRepository
	log  *slog.Logger
	now  func() time.Time
}

// NewProductionService создает новый экземпляр ProductionService.
func NewProductionService(repo ProductionRepository, log *slog.Logger) *ProductionService {
	return &ProductionService{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

// Create создает запись надоя для стада пользователя. Чужое стадо даёт
// ErrNotFound из хранилища.
func (s *ProductionService) Create(ctx context.Context, userID int, req models.DummyProduction) (*models.Production, error) {
	p := models.Production{
		Date:              req.Date,
		AmountLiters:      req.AmountLiters,
		FatPercentage:     req.FatPercentage,
		ProteinPercentage: req.ProteinPercentage,
		HerdID:            req.HerdID,
	}
	created, err := s.repo.CreateProduction(ctx, p, userID)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new production record", slog.Int("id", created.ID))
	return created, nil
}

// List возвращает записи надоев пользователя, опционально по одному стаду.
func (s *ProductionService) List(ctx context.Context, userID int, herdID *int, limit, offset int) ([]*models.Production, error) {
	return s.repo.ListProductions(ctx, userID, herdID, limit, offset)
}

// Read возвращает запись надоя по ID.
func (s *ProductionService) Read(ctx context.Context, id, userID int) (*models.Production, error) {
	return s.repo.ReadProduction(ctx, id, userID)
}

// Update перезаписывает поля записи надоя.
func (s *ProductionService) Update(ctx context.Context, id, userID int, req models.DummyProduction) (*models.Production, error) {
	p := models.Production{
		ID:                id,
		Date:              req.Date,
		AmountLiters:      req.AmountLiters,
		FatPercentage:     req.FatPercentage,
		ProteinPercentage: req.ProteinPercentage,
		HerdID:            req.HerdID,
	}
	return s.repo.UpdateProduction(ctx, p, userID)
}

// Delete удаляет запись надоя и возвращает её.
func (s *ProductionService) Delete(ctx context.Context, id, userID int) (*models.Production, error) {
	return s.repo.DeleteProduction(ctx, id, userID)
}

// spanCutoff возвращает нижнюю границу даты для метки временного окна.
// Нераспознанная метка отключает фильтр по дате, как и её отсутствие.
func (s *ProductionService) spanCutoff(timeSpan string) *time.Time {
	var days int
	switch timeSpan {
	case SpanWeek:
		days = 7
	case SpanMonth:
		days = 30
	case SpanYear:
		days = 365
	default:
		return nil
	}
	cutoff := s.now().AddDate(0, 0, -days)
	return &cutoff
}

// Stats подсчитывает статистику надоев пользователя, опционально по одному
// стаду и за временное окно week/month/year.
//
// Пустая выборка, нулевое количество коров и отсутствие дней с записями
// деградируют до нулей, а не до ошибки или деления на ноль. liters_per_cow
// считается только при запросе по конкретному стаду.
func (s *ProductionService) Stats(ctx context.Context, userID int, herdID *int, timeSpan string) (*models.ProductionStats, error) {
	var herd *models.Herd
	if herdID != nil {
		var err error
		herd, err = s.repo.ReadHerd(ctx, *herdID, userID)
		if err != nil {
			return nil, err
		}
	}

	filter := models.StatsFilter{
		UserID: userID,
		HerdID: herdID,
		Cutoff: s.spanCutoff(timeSpan),
	}
	total, days, err := s.repo.ProductionStats(ctx, filter)
	if err != nil {
		return nil, err
	}

	stats := &models.ProductionStats{
		TotalLiters:  total,
		DaysRecorded: days,
	}
	if days > 0 {
		stats.AveragePerDay = total / float64(days)
	}
	if herd != nil && herd.CowCount > 0 && days > 0 {
		stats.LitersPerCow = stats.AveragePerDay / float64(herd.CowCount)
	}
	return stats, nil
}
