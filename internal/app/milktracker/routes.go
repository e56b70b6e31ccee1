// Package milktracker предоставляет маршруты для основного приложения.
package milktracker

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/milk-tracker/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/milk-tracker/internal/http/handlers/auth/token"
	herdcreate "github.com/magabrotheeeer/milk-tracker/internal/http/handlers/herd/create"
	herdlist "github.com/magabrotheeeer/milk-tracker/internal/http/handlers/herd/list"
	herdread "github.com/magabrotheeeer/milk-tracker/internal/http/handlers/herd/read"
	herdremove "github.com/magabrotheeeer/milk-tracker/internal/http/handlers/herd/remove"
	herdupdate "github.com/magabrotheeeer/milk-tracker/internal/http/handlers/herd/update"
	productioncreate "github.com/magabrotheeeer/milk-tracker/internal/http/handlers/production/create"
	productionlist "github.com/magabrotheeeer/milk-tracker/internal/http/handlers/production/list"
	productionread "github.com/magabrotheeeer/milk-tracker/internal/http/handlers/production/read"
	productionremove "github.com/magabrotheeeer/milk-tracker/internal/http/handlers/production/remove"
	productionstats "github.com/magabrotheeeer/milk-tracker/internal/http/handlers/production/stats"
	productionupdate "github.com/magabrotheeeer/milk-tracker/internal/http/handlers/production/update"
	"github.com/magabrotheeeer/milk-tracker/internal/http/handlers/user/me"
	"github.com/magabrotheeeer/milk-tracker/internal/http/handlers/user/membership"
	"github.com/magabrotheeeer/milk-tracker/internal/http/handlers/user/profile"
	userremove "github.com/magabrotheeeer/milk-tracker/internal/http/handlers/user/remove"
	"github.com/magabrotheeeer/milk-tracker/internal/http/middlewarectx"

	authservice "github.com/magabrotheeeer/milk-tracker/internal/services/auth"
	herdservice "github.com/magabrotheeeer/milk-tracker/internal/services/herd"
	productionservice "github.com/magabrotheeeer/milk-tracker/internal/services/production"
	userservice "github.com/magabrotheeeer/milk-tracker/internal/services/user"
)

// Services группирует сервисы и провайдер пользователей для регистрации маршрутов.
type Services struct {
	Auth       *authservice.AuthService
	User       *userservice.UserService
	Herd       *herdservice.HerdService
	Production *productionservice.ProductionService
	Users      middlewarectx.UserProvider
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, s Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"message": "Welcome to the Dairy Milk Tracker API"})
	})

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, s.Auth).ServeHTTP)
		r.Post("/auth/token", token.New(logger, s.Auth).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(s.Auth, logger))
			r.Use(middlewarectx.CurrentUserMiddleware(s.Users, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Get("/users/me", me.New(logger).ServeHTTP)
			r.Put("/users/profile", profile.New(logger, s.User).ServeHTTP)
			r.Put("/users/membership", membership.New(logger, s.User).ServeHTTP)
			r.Delete("/users", userremove.New(logger, s.User).ServeHTTP)

			r.Post("/herds", herdcreate.New(logger, s.Herd).ServeHTTP)
			r.Get("/herds", herdlist.New(logger, s.Herd).ServeHTTP)
			r.Get("/herds/{id}", herdread.New(logger, s.Herd).ServeHTTP)
			r.Put("/herds/{id}", herdupdate.New(logger, s.Herd).ServeHTTP)
			r.Delete("/herds/{id}", herdremove.New(logger, s.Herd).ServeHTTP)

			r.Get("/milk-production/stats", productionstats.New(logger, s.Production).ServeHTTP)
			r.Post("/milk-production", productioncreate.New(logger, s.Production).ServeHTTP)
			r.Get("/milk-production", productionlist.New(logger, s.Production).ServeHTTP)
			r.Get("/milk-production/{id}", productionread.New(logger, s.Production).ServeHTTP)
			r.Put("/milk-production/{id}", productionupdate.New(logger, s.Production).ServeHTTP)
			r.Delete("/milk-production/{id}", productionremove.New(logger, s.Production).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
