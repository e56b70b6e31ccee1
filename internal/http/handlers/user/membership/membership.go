// Package membership реализует HTTP-обработчик смены типа членства пользователя.
package membership

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/milk-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/milk-tracker/internal/http/response"
	"github.com/magabrotheeeer/milk-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/milk-tracker/internal/models"
)

// Handler управляет HTTP-запросами на смену типа членства.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики смены членства
}

// Service описывает интерфейс бизнес-логики смены типа членства.
type Service interface {
	UpdateMembership(ctx context.Context, current models.User, membership string) (*models.User, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP обрабатывает HTTP-запрос на смену типа членства.
// Значение membership_type приходит в query-параметре и должно быть
// одним из free, annual, lifetime.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.membership"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, ok := r.Context().Value(middlewarectx.CurrentUser).(*models.User)
	if !ok {
		log.Error("user not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	membership := r.URL.Query().Get("membership_type")
	if !models.ValidMembership(membership) {
		log.Error("invalid membership type", slog.String("membership_type", membership))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid membership type, must be one of: free, annual, lifetime"))
		return
	}

	updated, err := h.service.UpdateMembership(r.Context(), *user, membership)
	if err != nil {
		log.Error("failed to update membership", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update membership"))
		return
	}

	log.Info("updated membership", slog.Int("id", updated.ID),
		slog.String("membership_type", updated.MembershipType))
	render.JSON(w, r, updated)
}
