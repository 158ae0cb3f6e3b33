// Package webhook реализует HTTP-обработчик webhook-уведомлений платежного
// провайдера. Подпись запроса проверяется до разбора тела.
package webhook

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/shobhanapappu/groweasytracker/internal/http/response"
	"github.com/shobhanapappu/groweasytracker/internal/lib/sl"
	services "github.com/shobhanapappu/groweasytracker/internal/services/payment"
)

// signatureHeader — заголовок с HMAC-подписью тела запроса.
const signatureHeader = "X-Razorpay-Signature"

// Service описывает интерфейс обработки webhook-уведомлений.
type Service interface {
	ProcessWebhook(ctx context.Context, body []byte, signature string) error
}

// Handler управляет HTTP-запросами webhook-уведомлений об оплате.
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
// @Summary Webhook оплаты
// @Description Принимает уведомление провайдера об оплате и апгрейдит подписку.
// @Tags Payment
// @Accept  json
// @Produce  json
// @Success 200 {object} map[string]any "Уведомление обработано"
// @Failure 400 {object} response.ErrorResponse "Некорректное тело запроса"
// @Failure 401 {object} response.ErrorResponse "Неверная подпись"
// @Failure 500 {object} response.ErrorResponse "Ошибка обработки"
// @Router /payments/webhook [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.webhook"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("failed to read request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	signature := r.Header.Get(signatureHeader)
	if err := h.service.ProcessWebhook(r.Context(), body, signature); err != nil {
		if errors.Is(err, services.ErrInvalidSignature) {
			log.Error("webhook signature mismatch")
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid signature"))
			return
		}
		log.Error("failed to process webhook", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to process webhook"))
		return
	}

	log.Info("webhook processed")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "webhook processed",
	}))
}
