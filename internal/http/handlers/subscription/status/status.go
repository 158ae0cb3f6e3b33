// Package status реализует HTTP-обработчик статуса подписки текущего
// пользователя: план, статус и производные значения пробного периода.
package status

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/shobhanapappu/groweasytracker/internal/access"
	"github.com/shobhanapappu/groweasytracker/internal/http/middlewarectx"
	"github.com/shobhanapappu/groweasytracker/internal/http/response"
	"github.com/shobhanapappu/groweasytracker/internal/lib/sl"
	"github.com/shobhanapappu/groweasytracker/internal/models"
)

// Service описывает интерфейс бизнес-логики статуса подписки.
type Service interface {
	View(ctx context.Context, userUID string) (models.SubscriptionView, error)
}

// Handler управляет HTTP-запросами на чтение статуса подписки.
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
// @Summary Статус подписки
// @Description Возвращает план, статус и состояние пробного периода текущего пользователя.
// @Tags Subscription
// @Produce  json
// @Success 200 {object} models.SubscriptionView "Статус подписки"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /subscription [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.status"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	session := middlewarectx.SessionFromContext(r.Context())
	if session.UserUID == "" {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	// Гость не имеет записи о подписке, отдаем синтетический статус.
	if session.Kind == access.KindGuest {
		render.JSON(w, r, response.StatusOKWithData(models.SubscriptionView{
			Plan:         "guest",
			Status:       "active",
			IsTrialEnded: true,
		}))
		return
	}

	view, err := h.service.View(r.Context(), session.UserUID)
	if err != nil {
		log.Error("failed to get subscription status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to get subscription status"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(view))
}
