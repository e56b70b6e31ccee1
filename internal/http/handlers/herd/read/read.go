// Package read реализует HTTP-обработчик для получения конкретного стада по ID.
//
// Handler извлекает ID из URL-параметров и возвращает стадо, если оно
// принадлежит текущему пользователю. Чужое или несуществующее стадо даёт 404.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/milk-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/milk-tracker/internal/http/response"
	"github.com/magabrotheeeer/milk-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/milk-tracker/internal/models"
	"github.com/magabrotheeeer/milk-tracker/internal/storage"
)

// Handler обрабатывает запросы на получение стада по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для получения стада по ID
}

// Service описывает интерфейс бизнес-логики чтения стада.
type Service interface {
	Read(ctx context.Context, id, userID int) (*models.Herd, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP обрабатывает HTTP-запрос на получение стада по ID.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.herd.read"
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

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid herd id"))
		return
	}

	herd, err := h.service.Read(r.Context(), id, user.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Error("herd not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("herd not found"))
			return
		}
		log.Error("failed to read herd", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read herd"))
		return
	}

	render.JSON(w, r, herd)
}
