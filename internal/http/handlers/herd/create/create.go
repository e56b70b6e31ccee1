// Package create реализует HTTP-обработчик для создания нового стада пользователя.
//
// Handler принимает JSON-запрос с данными стада, валидирует их, извлекает
// текущего пользователя из контекста, вызывает бизнес-логику создания стада
// через сервис и возвращает созданную запись в JSON-формате.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/milk-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/milk-tracker/internal/http/response"
	"github.com/magabrotheeeer/milk-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/milk-tracker/internal/models"
)

// Handler управляет HTTP-запросами на создание новых стад.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для создания стада
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания стада.
type Service interface {
	Create(ctx context.Context, userID int, req models.DummyHerd) (*models.Herd, error)
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
// @Summary Создать новое стадо
// @Description Создает стадо для текущего пользователя и возвращает запись.
// @Tags Herds
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyHerd true "Данные нового стада"
// @Success 200 {object} models.Herd "Созданное стадо"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании стада"
// @Router /herds [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.herd.create"
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

	var req models.DummyHerd
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

	herd, err := h.service.Create(r.Context(), user.ID, req)
	if err != nil {
		log.Error("failed to create herd", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create herd"))
		return
	}

	log.Info("created new herd", slog.Int("id", herd.ID))
	render.JSON(w, r, herd)
}
