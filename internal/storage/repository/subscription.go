package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shobhanapappu/groweasytracker/internal/models"
)

// CreateSubscription вставляет подписку пользователя и возвращает её ID.
// Вызывается один раз при регистрации.
func (s *Storage) CreateSubscription(ctx context.Context, sub models.Subscription) (string, error) {
	const op = "storage.CreateSubscription"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO subscriptions (user_uid, plan, status, trial_end_date)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		sub.UserUID, sub.Plan, sub.Status, sub.TrialEndDate).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetSubscriptionByUserUID возвращает подписку пользователя.
// Возвращает nil без ошибки, если подписка ещё не создана.
func (s *Storage) GetSubscriptionByUserUID(ctx context.Context, userUID string) (*models.Subscription, error) {
	const op = "storage.GetSubscriptionByUserUID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, plan, status, trial_end_date, created_at, updated_at
			  FROM subscriptions
			  WHERE user_uid = $1`
	row := s.DB.QueryRowContext(ctx, query, userUID)

	var result models.Subscription
	var trialEndDate sql.NullTime
	if err := row.Scan(&result.ID, &result.UserUID, &result.Plan, &result.Status,
		&trialEndDate, &result.CreatedAt, &result.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if trialEndDate.Valid {
		result.TrialEndDate = &trialEndDate.Time
	}
	return &result, nil
}

// UpgradeSubscription переводит подписку пользователя на план premium,
// очищая дату пробного периода. Единственный легальный путь апгрейда —
// подтверждение оплаты. Возвращает количество изменённых строк.
func (s *Storage) UpgradeSubscription(ctx context.Context, userUID string) (int, error) {
	const op = "storage.UpgradeSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE subscriptions
			  SET plan = $1, status = $2, trial_end_date = NULL, updated_at = now()
			  WHERE user_uid = $3`
	result, err := s.DB.ExecContext(ctx, query, models.PlanPremium, models.StatusActive, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// FindTrialsEndingOn возвращает пользователей, чей пробный период
// заканчивается в указанную календарную дату. Используется планировщиком
// напоминаний.
func (s *Storage) FindTrialsEndingOn(ctx context.Context, day time.Time) ([]*models.TrialNotice, error) {
	const op = "storage.FindTrialsEndingOn"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT u.email, u.username, sub.trial_end_date
			  FROM subscriptions sub
			  JOIN users u ON u.uid = sub.user_uid
			  WHERE sub.plan = $1
			    AND sub.status = $2
			    AND sub.trial_end_date::DATE = $3::DATE`
	rows, err := s.DB.QueryContext(ctx, query, models.PlanFree, models.StatusActive, day)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.TrialNotice
	for rows.Next() {
		var n models.TrialNotice
		if err := rows.Scan(&n.Email, &n.Username, &n.TrialEndDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
