package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shobhanapappu/groweasytracker/internal/models"
)

// CreatePaymentOrder сохраняет созданный у провайдера заказ на оплату.
func (s *Storage) CreatePaymentOrder(ctx context.Context, order models.PaymentOrder) (string, error) {
	const op = "storage.CreatePaymentOrder"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO payment_orders (order_id, user_uid, amount, currency, billing, status)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		order.OrderID, order.UserUID, order.Amount, order.Currency,
		order.Billing, order.Status).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetPaymentOrder возвращает заказ по идентификатору провайдера.
// Если заказ не найден, возвращает nil без ошибки.
func (s *Storage) GetPaymentOrder(ctx context.Context, orderID string) (*models.PaymentOrder, error) {
	const op = "storage.GetPaymentOrder"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, order_id, user_uid, amount, currency, billing, status, created_at
			  FROM payment_orders
			  WHERE order_id = $1`
	var order models.PaymentOrder
	err := s.DB.QueryRowContext(ctx, query, orderID).Scan(
		&order.ID, &order.OrderID, &order.UserUID, &order.Amount,
		&order.Currency, &order.Billing, &order.Status, &order.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &order, nil
}

// MarkOrderPaid помечает заказ оплаченным и возвращает количество
// изменённых строк.
func (s *Storage) MarkOrderPaid(ctx context.Context, orderID string) (int, error) {
	const op = "storage.MarkOrderPaid"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE payment_orders SET status = 'paid' WHERE order_id = $1`
	result, err := s.DB.ExecContext(ctx, query, orderID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
