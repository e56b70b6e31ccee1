// Package stats реализует HTTP-обработчик агрегированной статистики надоев.
//
// Handler принимает необязательные query-параметры herd_id и time_span
// (week, month, year), вызывает бизнес-логику подсчёта статистики и
// возвращает суммарный объём, число дней с записями и средние значения.
// Пустая выборка даёт нулевую статистику, а не ошибку.
package stats

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/milk-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/milk-tracker/internal/http/response"
	"github.com/magabrotheeeer/milk-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/milk-tracker/internal/models"
	"github.com/magabrotheeeer/milk-tracker/internal/storage"
)

// Handler управляет HTTP-запросами на подсчёт статистики надоев.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики подсчёта статистики
}

// Service описывает интерфейс бизнес-логики подсчёта статистики надоев.
type Service interface {
	Stats(ctx context.Context, userID int, herdID *int, timeSpan string) (*models.ProductionStats, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Статистика надоев
// @Description Считает суммарный объём, число дней с записями и средние значения по стадам пользователя.
// @Tags MilkProduction
// @Produce  json
// @Security BearerAuth
// @Param herd_id query int false "Ограничить статистику одним стадом"
// @Param time_span query string false "Временное окно: week, month или year"
// @Success 200 {object} models.ProductionStats "Статистика надоев"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Стадо не найдено"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при подсчёте статистики"
// @Router /milk-production/stats [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.production.stats"
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

	var herdID *int
	if raw := r.URL.Query().Get("herd_id"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			log.Error("failed to decode herd_id", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid herd_id"))
			return
		}
		herdID = &v
	}
	timeSpan := r.URL.Query().Get("time_span")

	stats, err := h.service.Stats(r.Context(), user.ID, herdID, timeSpan)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Error("herd not found")
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("herd not found"))
			return
		}
		log.Error("failed to calculate stats", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not calculate stats"))
		return
	}

	log.Info("calculated production stats", slog.Float64("total_liters", stats.TotalLiters))
	render.JSON(w, r, stats)
}
