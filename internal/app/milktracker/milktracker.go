// Package milktracker собирает приложение: хранилище, кеш, сервисы и HTTP-сервер.
package milktracker

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/milk-tracker/internal/cache"
	"github.com/magabrotheeeer/milk-tracker/internal/config"
	"github.com/magabrotheeeer/milk-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/milk-tracker/internal/migrations"
	authservice "github.com/magabrotheeeer/milk-tracker/internal/services/auth"
	herdservice "github.com/magabrotheeeer/milk-tracker/internal/services/herd"
	productionservice "github.com/magabrotheeeer/milk-tracker/internal/services/production"
	userservice "github.com/magabrotheeeer/milk-tracker/internal/services/user"
	"github.com/magabrotheeeer/milk-tracker/internal/storage"
)

// App хранит собранные зависимости приложения и HTTP-сервер.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
	cache  *cache.Cache
}

// New создаёт приложение: подключается к PostgreSQL и Redis, прогоняет
// миграции и регистрирует маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.NewAuthService(db, jwtMaker)
	userService := userservice.NewUserService(db)
	herdService := herdservice.NewHerdService(db, cacheRedis, logger)
	productionService := productionservice.NewProductionService(db, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, Services{
		Auth:       authService,
		User:       userService,
		Herd:       herdService,
		Production: productionService,
		Users:      db,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.DB.Close()
		return err
	}
}
