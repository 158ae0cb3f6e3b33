package repository

import (
	"context"
	"fmt"

	"github.com/shobhanapappu/groweasytracker/internal/models"
)

// CreateInvestment вставляет новую запись об инвестиции и возвращает её ID.
func (s *Storage) CreateInvestment(ctx context.Context, investment models.Investment) (string, error) {
	const op = "storage.CreateInvestment"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO investments (user_uid, amount, type, platform, date, notes)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		investment.UserUID, investment.Amount, investment.Type, investment.Platform,
		investment.Date, investment.Notes).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListInvestments возвращает инвестиции пользователя, новые даты первыми.
func (s *Storage) ListInvestments(ctx context.Context, userUID string) ([]*models.Investment, error) {
	const op = "storage.ListInvestments"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, amount, type, platform, date, notes, created_at, updated_at
			  FROM investments
			  WHERE user_uid = $1
			  ORDER BY date DESC, created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Investment
	for rows.Next() {
		var item models.Investment
		if err := rows.Scan(&item.ID, &item.UserUID, &item.Amount, &item.Type,
			&item.Platform, &item.Date, &item.Notes, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateInvestment обновляет запись об инвестиции пользователя по её ID
// и возвращает количество изменённых строк.
func (s *Storage) UpdateInvestment(ctx context.Context, investment models.Investment, id, userUID string) (int, error) {
	const op = "storage.UpdateInvestment"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE investments
			  SET amount = $1, type = $2, platform = $3, date = $4, notes = $5, updated_at = now()
			  WHERE id = $6 AND user_uid = $7`
	result, err := s.DB.ExecContext(ctx, query,
		investment.Amount, investment.Type, investment.Platform, investment.Date,
		investment.Notes, id, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveInvestment удаляет запись об инвестиции пользователя и возвращает
// количество удалённых строк.
func (s *Storage) RemoveInvestment(ctx context.Context, id, userUID string) (int, error) {
	const op = "storage.RemoveInvestment"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM investments WHERE id = $1 AND user_uid = $2`
	result, err := s.DB.ExecContext(ctx, query, id, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
