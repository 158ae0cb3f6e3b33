// Package create реализует HTTP-обработчик для создания записей о бюджетах.
//
// Handler принимает JSON-запрос с данными бюджета, валидирует их, извлекает
// идентификатор пользователя из контекста, вызывает бизнес-логику и
// возвращает ID созданной записи в JSON-формате.
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

	"github.com/shobhanapappu/groweasytracker/internal/http/middlewarectx"
	"github.com/shobhanapappu/groweasytracker/internal/http/response"
	"github.com/shobhanapappu/groweasytracker/internal/lib/sl"
	"github.com/shobhanapappu/groweasytracker/internal/models"
	services "github.com/shobhanapappu/groweasytracker/internal/services/records"
)

// Service описывает интерфейс бизнес-логики создания записи о бюджете.
type Service interface {
	CreateBudget(ctx context.Context, userUID string, req models.DummyBudget) (string, error)
}

// Handler управляет HTTP-запросами на создание записей о бюджетах.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
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
// @Summary Создать запись о бюджете
// @Description Создает новую запись о бюджете для текущего пользователя.
// @Tags Budget
// @Accept  json
// @Produce  json
// @Param request body models.DummyBudget true "Данные бюджета"
// @Success 200 {object} map[string]any "Успешное создание записи"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /budgets [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.budget.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyBudget
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	id, err := h.service.CreateBudget(r.Context(), userUID, req)
	if errors.Is(err, services.ErrInvalidDate) {
		log.Error("invalid date in request", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error(services.ErrInvalidDate.Error()))
		return
	}
	if err != nil {
		log.Error("failed to create budget", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create budget"))
		return
	}

	log.Info("budget created", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": id,
	}))
}
