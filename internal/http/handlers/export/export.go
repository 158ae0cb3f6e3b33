// Package export реализует HTTP-обработчик выгрузки записей в CSV или JSON.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/shobhanapappu/groweasytracker/internal/http/middlewarectx"
	"github.com/shobhanapappu/groweasytracker/internal/http/response"
	"github.com/shobhanapappu/groweasytracker/internal/lib/sl"
	"github.com/shobhanapappu/groweasytracker/internal/models"
	services "github.com/shobhanapappu/groweasytracker/internal/services/export"
)

// Service описывает интерфейс бизнес-логики выгрузки записей.
type Service interface {
	Export(ctx context.Context, userUID, format string, opts models.FilterOptions) ([]byte, string, error)
}

// Handler управляет HTTP-запросами на выгрузку записей.
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
// @Summary Выгрузить записи
// @Description Выгружает записи пользователя в формате CSV или JSON. Premium-функция.
// @Tags Export
// @Produce  plain
// @Param format query string false "Формат выгрузки (csv, json), по умолчанию csv"
// @Success 200 {string} string "Файл с записями"
// @Failure 400 {object} response.ErrorResponse "Неподдерживаемый формат"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /export [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.export"
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

	format := r.URL.Query().Get("format")
	if format == "" {
		format = services.FormatCSV
	}

	data, contentType, err := h.service.Export(r.Context(), userUID, format, models.FilterOptions{})
	if err != nil {
		log.Error("failed to export records", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to export records"))
		return
	}

	filename := fmt.Sprintf("records-%s.%s", time.Now().UTC().Format("2006-01-02"), format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(data); err != nil {
		log.Error("failed to write export payload", sl.Err(err))
		return
	}

	log.Info("records exported", slog.String("format", format), "size", len(data))
}
