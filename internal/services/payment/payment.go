// Package payment реализует создание заказов на оплату premium-подписки
// через Razorpay и обработку webhook-уведомлений об оплате.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/shobhanapappu/groweasytracker/internal/models"
	"github.com/shobhanapappu/groweasytracker/internal/paymentprovider"
)

// Валюта заказов.
const orderCurrency = "INR"

// OrderCreator описывает клиент платёжного провайдера.
type OrderCreator interface {
	CreateOrder(req paymentprovider.CreateOrderRequest) (*paymentprovider.CreateOrderResponse, error)
}

// OrderRepository определяет методы хранилища заказов на оплату.
type OrderRepository interface {
	CreatePaymentOrder(ctx context.Context, order models.PaymentOrder) (string, error)
	GetPaymentOrder(ctx context.Context, orderID string) (*models.PaymentOrder, error)
	MarkOrderPaid(ctx context.Context, orderID string) (int, error)
}

// SubscriptionUpgrader переводит подписку пользователя на premium.
type SubscriptionUpgrader interface {
	Upgrade(ctx context.Context, userUID string) error
}

// PaymentService реализует бизнес-логику оплаты подписки.
type PaymentService struct {
	provider      OrderCreator
	repo          OrderRepository
	subscriptions SubscriptionUpgrader
	webhookSecret string
	log           *slog.Logger
}

// New создает новый экземпляр PaymentService.
func New(provider OrderCreator, repo OrderRepository, subscriptions SubscriptionUpgrader,
	webhookSecret string, log *slog.Logger) *PaymentService {
	return &PaymentService{
		provider:      provider,
		repo:          repo,
		subscriptions: subscriptions,
		webhookSecret: webhookSecret,
		log:           log,
	}
}

// CreateOrder создает заказ у провайдера и сохраняет его. Сумма запроса
// приходит в основных единицах валюты и конвертируется в пайсы.
func (s *PaymentService) CreateOrder(ctx context.Context, userUID string, req models.DummyOrder) (*paymentprovider.CreateOrderResponse, error) {
	if req.Billing != models.BillingMonthly && req.Billing != models.BillingYearly {
		return nil, fmt.Errorf("invalid billing period: %s", req.Billing)
	}

	amountPaise := int64(math.Round(req.Amount * 100))
	resp, err := s.provider.CreateOrder(paymentprovider.CreateOrderRequest{
		Amount:   amountPaise,
		Currency: orderCurrency,
		Receipt:  fmt.Sprintf("receipt_%s_%d", req.Billing, time.Now().UnixMilli()),
		Notes: map[string]string{
			"user_uid": userUID,
			"billing":  req.Billing,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	_, err = s.repo.CreatePaymentOrder(ctx, models.PaymentOrder{
		OrderID:  resp.ID,
		UserUID:  userUID,
		Amount:   amountPaise,
		Currency: orderCurrency,
		Billing:  req.Billing,
		Status:   resp.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	s.log.Info("payment order created",
		slog.String("order_id", resp.ID),
		slog.String("user_uid", userUID),
		slog.Int64("amount", amountPaise))
	return resp, nil
}
