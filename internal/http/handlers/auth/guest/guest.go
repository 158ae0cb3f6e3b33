// Package guest реализует HTTP-обработчик гостевого входа.
//
// Гость получает токен с ролью guest: витрина с синтетическими данными
// доступна для чтения, любые изменяющие запросы блокируются middleware.
package guest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/shobhanapappu/groweasytracker/internal/http/response"
	"github.com/shobhanapappu/groweasytracker/internal/lib/sl"
)

// Service описывает интерфейс выдачи гостевого токена.
type Service interface {
	GuestToken(ctx context.Context) (string, error)
}

// Handler управляет HTTP-запросами на гостевой вход.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Гостевой вход
// @Description Выдает токен гостевой сессии для предпросмотра с демо-данными.
// @Tags Auth
// @Produce  json
// @Success 200 {object} map[string]any "Гостевой токен"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /demo [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.guest"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	token, err := h.service.GuestToken(r.Context())
	if err != nil {
		log.Error("failed to issue guest token", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to issue guest token"))
		return
	}

	log.Info("guest token issued")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"token": token,
		"role":  "guest",
	}))
}
