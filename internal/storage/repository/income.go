package repository

import (
	"context"
	"fmt"

	"github.com/shobhanapappu/groweasytracker/internal/models"
)

// CreateIncome вставляет новую запись о доходе и возвращает её ID.
func (s *Storage) CreateIncome(ctx context.Context, income models.Income) (string, error) {
	const op = "storage.CreateIncome"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO income (user_uid, amount, source, category, date, notes)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		income.UserUID, income.Amount, income.Source, income.Category,
		income.Date, income.Notes).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListIncome возвращает доходы пользователя, новые даты первыми.
func (s *Storage) ListIncome(ctx context.Context, userUID string) ([]*models.Income, error) {
	const op = "storage.ListIncome"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, amount, source, category, date, notes, created_at, updated_at
			  FROM income
			  WHERE user_uid = $1
			  ORDER BY date DESC, created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Income
	for rows.Next() {
		var item models.Income
		if err := rows.Scan(&item.ID, &item.UserUID, &item.Amount, &item.Source,
			&item.Category, &item.Date, &item.Notes, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateIncome обновляет запись о доходе пользователя по её ID
// и возвращает количество изменённых строк.
func (s *Storage) UpdateIncome(ctx context.Context, income models.Income, id, userUID string) (int, error) {
	const op = "storage.UpdateIncome"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE income
			  SET amount = $1, source = $2, category = $3, date = $4, notes = $5, updated_at = now()
			  WHERE id = $6 AND user_uid = $7`
	result, err := s.DB.ExecContext(ctx, query,
		income.Amount, income.Source, income.Category, income.Date, income.Notes, id, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveIncome удаляет запись о доходе пользователя и возвращает
// количество удалённых строк.
func (s *Storage) RemoveIncome(ctx context.Context, id, userUID string) (int, error) {
	const op = "storage.RemoveIncome"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM income WHERE id = $1 AND user_uid = $2`
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
