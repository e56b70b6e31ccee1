// Package create реализует HTTP-обработчик для создания записи надоя.
//
// Handler принимает JSON-запрос с данными надоя, валидирует их и делегирует
// создание сервису. Запись создаётся только если указанное стадо принадлежит
// текущему пользователю, иначе возвращается 404.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/milk-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/milk-tracker/internal/http/response"
	"github.com/magabrotheeeer/milk-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/milk-tracker/internal/models"
	"github.com/magabrotheeeer/milk-tracker/internal/storage"
)

// Handler управляет HTTP-запросами на создание записей надоев.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для создания записи
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания записи надоя.
type Service interface {
	Create(ctx context.Context, userID int, req models.DummyProduction) (*models.Production, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать запись надоя
// @Description Создает датированную запись надоя для стада текущего пользователя.
// @Tags MilkProduction
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyProduction true "Данные записи надоя"
// @Success 200 {object} models.Production "Созданная запись"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Стадо не найдено"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании записи"
// @Router /milk-production [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.production.create"
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

	var req models.DummyProduction
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	record, err := h.service.Create(r.Context(), user.ID, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Error("herd not found", slog.Int("herd_id", req.HerdID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("herd not found"))
			return
		}
		log.Error("failed to create production record", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create production record"))
		return
	}

	log.Info("created production record", slog.Int("id", record.ID))
	render.JSON(w, r, record)
}
