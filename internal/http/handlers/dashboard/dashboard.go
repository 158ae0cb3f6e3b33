// Package dashboard реализует HTTP-обработчик сводного дашборда.
//
// Для аутентифицированного пользователя дашборд собирается из его записей,
// для гостя возвращается витрина с синтетическими данными.
package dashboard

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
	services "github.com/shobhanapappu/groweasytracker/internal/services/dashboard"
)

// Service описывает интерфейс бизнес-логики сборки дашборда.
type Service interface {
	Build(ctx context.Context, userUID string) (*services.Dashboard, error)
	BuildGuest(ctx context.Context) *services.Dashboard
}

// Handler управляет HTTP-запросами на получение дашборда.
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
// @Summary Дашборд
// @Description Возвращает метрики, разбивку расходов, помесячную динамику и последние записи.
// @Tags Dashboard
// @Produce  json
// @Success 200 {object} map[string]any "Дашборд"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /dashboard [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard"
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

	if session.Kind == access.KindGuest {
		log.Info("serving demo dashboard for guest")
		render.JSON(w, r, response.StatusOKWithData(h.service.BuildGuest(r.Context())))
		return
	}

	result, err := h.service.Build(r.Context(), session.UserUID)
	if err != nil {
		log.Error("failed to build dashboard", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to build dashboard"))
		return
	}

	log.Info("dashboard built", slog.String("user_uid", session.UserUID))
	render.JSON(w, r, response.StatusOKWithData(result))
}
