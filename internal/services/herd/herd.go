// Package services содержит бизнес-логику для управления стадами и кешированием.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/milk-tracker/internal/models"
)

// HerdRepository определяет методы для работы со стадами в хранилище.
// Все методы фильтруют по владельцу на уровне запроса.
type HerdRepository interface {
	// CreateHerd добавляет новое стадо и возвращает созданную запись.
	CreateHerd(ctx context.Context, herd models.Herd) (*models.Herd, error)
	// ListHerds возвращает список стад пользователя с пагинацией.
	ListHerds(ctx context.Context, userID, limit, offset int) ([]*models.Herd, error)
	// ReadHerd возвращает стадо по ID и владельцу.
	ReadHerd(ctx context.Context, id, userID int) (*models.Herd, error)
	// UpdateHerd перезаписывает изменяемые поля стада.
	UpdateHerd(ctx context.Context, herd models.Herd) (*models.Herd, error)
	// DeleteHerd удаляет стадо и возвращает удалённую запись.
	DeleteHerd(ctx context.Context, id, userID int) (*models.Herd, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// HerdService реализует бизнес-логику работы со стадами, включая кеширование
// горячих чтений. Ключ кеша включает владельца, поэтому кешированные записи
// не видны другим пользователям.
type HerdService struct {
	repo  HerdRepository
	cache Cache
	log   *slog.Logger
}

// NewHerdService создает новый экземпляр HerdService.
func NewHerdService(repo HerdRepository, cache Cache, log *slog.Logger) *HerdService {
	return &HerdService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func cacheKey(id, userID int) string {
	return fmt.Sprintf("herd:%d:user:%d", id, userID)
}

// Create создает новое стадо для пользователя, кеширует его и возвращает запись.
func (s *HerdService) Create(ctx context.Context, userID int, req models.DummyHerd) (*models.Herd, error) {
	herd := models.Herd{
		Name:          req.Name,
		CowCount:      req.CowCount,
		LocationLine1: req.LocationLine1,
		LocationLine2: req.LocationLine2,
		UserID:        userID,
	}

	created, err := s.repo.CreateHerd(ctx, herd)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new herd", slog.Int("id", created.ID))

	key := cacheKey(created.ID, userID)
	if err := s.cache.Set(key, created, time.Hour); err != nil {
		s.log.Warn("failed to cache herd", slog.String("key", key), slog.Any("err", err))
	}

	return created, nil
}

// List возвращает список стад пользователя с пагинацией.
func (s *HerdService) List(ctx context.Context, userID, limit, offset int) ([]*models.Herd, error) {
	return s.repo.ListHerds(ctx, userID, limit, offset)
}

// Read возвращает стадо по ID, используя кеш или репозиторий.
func (s *HerdService) Read(ctx context.Context, id, userID int) (*models.Herd, error) {
	var result *models.Herd
	key := cacheKey(id, userID)
	found, err := s.cache.Get(key, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}
	result, err = s.repo.ReadHerd(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(key, result, time.Hour); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", key), slog.Any("err", err))
	}
	return result, nil
}

// Update перезаписывает изменяемые поля стада и обновляет кеш.
func (s *HerdService) Update(ctx context.Context, id, userID int, req models.DummyHerd) (*models.Herd, error) {
	herd := models.Herd{
		ID:            id,
		Name:          req.Name,
		CowCount:      req.CowCount,
		LocationLine1: req.LocationLine1,
		LocationLine2: req.LocationLine2,
		UserID:        userID,
	}
	updated, err := s.repo.UpdateHerd(ctx, herd)
	if err != nil {
		return nil, err
	}

	key := cacheKey(id, userID)
	if err := s.cache.Set(key, updated, time.Hour); err != nil {
		s.log.Warn("failed to cache herd", slog.String("key", key), slog.Any("err", err))
	}
	return updated, nil
}

// Delete удаляет стадо, инвалидирует кеш и возвращает удалённую запись.
func (s *HerdService) Delete(ctx context.Context, id, userID int) (*models.Herd, error) {
	key := cacheKey(id, userID)
	if err := s.cache.Invalidate(key); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", key), slog.Any("err", err))
	}

	return s.repo.DeleteHerd(ctx, id, userID)
}
