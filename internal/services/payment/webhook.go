package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// Событие провайдера, подтверждающее оплату заказа.
const eventOrderPaid = "order.paid"

// ErrInvalidSignature возвращается при несовпадении подписи webhook.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// WebhookPayload представляет тело webhook-уведомления Razorpay.
type WebhookPayload struct {
	Event   string `json:"event"`
	Payload struct {
		Order struct {
			Entity struct {
				ID     string `json:"id"`
				Status string `json:"status"`
				Amount int64  `json:"amount"`
			} `json:"entity"`
		} `json:"order"`
	} `json:"payload"`
}

// VerifySignature проверяет подпись тела webhook секретом провайдера.
// Сравнение выполняется за постоянное время.
func (s *PaymentService) VerifySignature(body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.webhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// ProcessWebhook проверяет подпись уведомления и при подтверждённой оплате
// помечает заказ оплаченным и переводит подписку пользователя на premium.
// Это единственный путь апгрейда подписки.
func (s *PaymentService) ProcessWebhook(ctx context.Context, body []byte, signature string) error {
	if !s.VerifySignature(body, signature) {
		return ErrInvalidSignature
	}

	var payload WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal webhook: %w", err)
	}

	if payload.Event != eventOrderPaid {
		s.log.Info("skipping webhook event", slog.String("event", payload.Event))
		return nil
	}

	orderID := payload.Payload.Order.Entity.ID
	order, err := s.repo.GetPaymentOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to find order: %w", err)
	}
	if order == nil {
		return fmt.Errorf("unknown order: %s", orderID)
	}
	if order.Status == "paid" {
		// Провайдер может прислать уведомление повторно
		s.log.Info("order already processed", slog.String("order_id", orderID))
		return nil
	}

	if _, err := s.repo.MarkOrderPaid(ctx, orderID); err != nil {
		return fmt.Errorf("failed to mark order paid: %w", err)
	}
	if err := s.subscriptions.Upgrade(ctx, order.UserUID); err != nil {
		return fmt.Errorf("failed to upgrade subscription: %w", err)
	}

	s.log.Info("order paid, subscription upgraded",
		slog.String("order_id", orderID),
		slog.String("user_uid", order.UserUID))
	return nil
}
