// Package records реализует HTTP-обработчик объединенного списка записей
// с фильтрацией и сортировкой через query-параметры.
package records

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/shobhanapappu/groweasytracker/internal/aggregate"
	"github.com/shobhanapappu/groweasytracker/internal/http/middlewarectx"
	"github.com/shobhanapappu/groweasytracker/internal/http/response"
	"github.com/shobhanapappu/groweasytracker/internal/lib/sl"
	"github.com/shobhanapappu/groweasytracker/internal/models"
)

// Service описывает интерфейс бизнес-логики объединенного списка записей.
type Service interface {
	Records(ctx context.Context, userUID string, opts models.FilterOptions) ([]aggregate.Record, error)
}

// Handler управляет HTTP-запросами на получение объединенного списка записей.
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

// parseFilterOptions собирает параметры фильтрации из query-строки.
// Отсутствующие и некорректные параметры трактуются как отсутствие фильтра.
func parseFilterOptions(r *http.Request) models.FilterOptions {
	q := r.URL.Query()
	opts := models.FilterOptions{
		Kind:      q.Get("type"),
		Category:  q.Get("category"),
		DateRange: q.Get("date_range"),
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}
	if v, err := strconv.ParseFloat(q.Get("min_amount"), 64); err == nil {
		opts.MinAmount = &v
	}
	if v, err := strconv.ParseFloat(q.Get("max_amount"), 64); err == nil {
		opts.MaxAmount = &v
	}
	return opts
}

// ServeHTTP godoc
// @Summary Список записей
// @Description Возвращает записи всех типов с фильтрацией по типу, категории, периоду и сумме.
// @Tags Records
// @Produce  json
// @Param type query string false "Тип записи (income, expense, investment, savings)"
// @Param category query string false "Категория"
// @Param date_range query string false "Именованный период (Last 7 Days, Last 30 Days, Last 90 Days, This Year, All)"
// @Param min_amount query number false "Нижняя граница суммы"
// @Param max_amount query number false "Верхняя граница суммы"
// @Param sort_by query string false "Поле сортировки (date, amount, category)"
// @Param sort_order query string false "Направление сортировки (asc, desc)"
// @Success 200 {object} map[string]any "Список записей"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /records [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.records"
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

	opts := parseFilterOptions(r)
	res, err := h.service.Records(r.Context(), userUID, opts)
	if err != nil {
		log.Error("failed to list records", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list records"))
		return
	}

	log.Info("records listed", "count", len(res))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"count":   len(res),
		"records": res,
	}))
}
