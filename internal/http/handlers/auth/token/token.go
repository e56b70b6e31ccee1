// Package token реализует HTTP-обработчик выдачи токена доступа.
//
// Handler принимает форму с полями username (email пользователя) и password,
// проверяет учетные данные через сервис и возвращает подписанный bearer-токен.
// Неверная пара email/пароль всегда даёт 401 без уточнения причины.
package token

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/milk-tracker/internal/http/response"
	"github.com/magabrotheeeer/milk-tracker/internal/lib/sl"
	authservice "github.com/magabrotheeeer/milk-tracker/internal/services/auth"
)

// TokenResponse — тело успешного ответа с токеном доступа.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Handler обрабатывает HTTP-запросы на выдачу токена.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис бизнес-логики аутентификации
}

// Service описывает интерфейс бизнес-логики входа пользователя.
type Service interface {
	Login(ctx context.Context, email, rawPassword string) (string, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Выдать токен доступа
// @Description Аутентифицирует пользователя по email (поле username формы) и паролю.
// @Tags Auth
// @Accept  x-www-form-urlencoded
// @Produce  json
// @Param username formData string true "Email пользователя"
// @Param password formData string true "Пароль"
// @Success 200 {object} TokenResponse "Токен доступа"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные"
// @Router /auth/token [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.token"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseForm(); err != nil {
		log.Error("failed to parse form", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid form body"))
		return
	}
	email := r.PostFormValue("username")
	pass := r.PostFormValue("password")
	if email == "" || pass == "" {
		log.Error("missing credentials in form")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("incorrect email or password"))
		return
	}

	token, err := h.service.Login(r.Context(), email, pass)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			log.Error("invalid credentials")
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("incorrect email or password"))
			return
		}
		log.Error("login failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("an error occurred during login"))
		return
	}

	log.Info("issued access token")
	render.JSON(w, r, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
