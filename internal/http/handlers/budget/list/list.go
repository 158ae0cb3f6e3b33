// Package list реализует HTTP-обработчик для получения списка бюджетов.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/shobhanapappu/groweasytracker/internal/http/middlewarectx"
	"github.com/shobhanapappu/groweasytracker/internal/http/response"
	"github.com/shobhanapappu/groweasytracker/internal/lib/sl"
	"github.com/shobhanapappu/groweasytracker/internal/models"
)

// Service описывает интерфейс бизнес-логики списка бюджетов.
type Service interface {
	ListBudgets(ctx context.Context, userUID string) ([]*models.Budget, error)
}

// Handler управляет HTTP-запросами на получение списка бюджетов.
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
// @Summary Список бюджетов
// @Description Возвращает все записи о бюджетах текущего пользователя.
// @Tags Budget
// @Produce  json
// @Success 200 {object} map[string]any "Список записей"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /budgets [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.budget.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	res, err := h.service.ListBudgets(r.Context(), userUID)
	if err != nil {
		log.Error("failed to list budgets", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list budgets"))
		return
	}

	log.Info("budgets listed", "count", len(res))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"count":   len(res),
		"entries": res,
	}))
}
