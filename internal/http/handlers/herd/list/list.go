// Package list реализует HTTP-обработчик для получения списка стад пользователя
// с пагинацией через query-параметры skip и limit.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/milk-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/milk-tracker/internal/http/response"
	"github.com/magabrotheeeer/milk-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/milk-tracker/internal/models"
)

const (
	defaultLimit = 100
	// Жёсткий потолок размера страницы, чтобы исключить неограниченные выборки.
	maxLimit = 1000
)

// Handler обрабатывает запросы на получение списка стад текущего пользователя.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для списка стад
}

// Service описывает интерфейс бизнес-логики списка стад.
type Service interface {
	List(ctx context.Context, userID, limit, offset int) ([]*models.Herd, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP обрабатывает HTTP-запрос на получение списка стад.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.herd.list"
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

	skip, limit := pagination(r)

	herds, err := h.service.List(r.Context(), user.ID, limit, skip)
	if err != nil {
		log.Error("failed to list herds", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list herds"))
		return
	}
	if herds == nil {
		herds = []*models.Herd{}
	}

	render.JSON(w, r, herds)
}

// pagination разбирает query-параметры skip и limit с дефолтами 0 и 100.
// Некорректные значения откатываются к дефолтам, limit ограничен потолком.
func pagination(r *http.Request) (skip, limit int) {
	limit = defaultLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("skip")); err == nil && v >= 0 {
		skip = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v >= 0 {
		limit = v
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return skip, limit
}
