package repository

import (
	"context"
	"fmt"

	"github.com/shobhanapappu/groweasytracker/internal/models"
)

// CreateExpense вставляет новую запись о расходе и возвращает её ID.
func (s *Storage) CreateExpense(ctx context.Context, expense models.Expense) (string, error) {
	const op = "storage.CreateExpense"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO expenses (user_uid, amount, vendor, category, date, notes)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		expense.UserUID, expense.Amount, expense.Vendor, expense.Category,
		expense.Date, expense.Notes).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListExpenses возвращает расходы пользователя, новые даты первыми.
func (s *Storage) ListExpenses(ctx context.Context, userUID string) ([]*models.Expense, error) {
	const op = "storage.ListExpenses"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, amount, vendor, category, date, notes, created_at, updated_at
			  FROM expenses
			  WHERE user_uid = $1
			  ORDER BY date DESC, created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Expense
	for rows.Next() {
		var item models.Expense
		if err := rows.Scan(&item.ID, &item.UserUID, &item.Amount, &item.Vendor,
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

// UpdateExpense обновляет запись о расходе пользователя по её ID
// и возвращает количество изменённых строк.
func (s *Storage) UpdateExpense(ctx context.Context, expense models.Expense, id, userUID string) (int, error) {
	const op = "storage.UpdateExpense"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE expenses
			  SET amount = $1, vendor = $2, category = $3, date = $4, notes = $5, updated_at = now()
			  WHERE id = $6 AND user_uid = $7`
	result, err := s.DB.ExecContext(ctx, query,
		expense.Amount, expense.Vendor, expense.Category, expense.Date, expense.Notes, id, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveExpense удаляет запись о расходе пользователя и возвращает
// количество удалённых строк.
func (s *Storage) RemoveExpense(ctx context.Context, id, userUID string) (int, error) {
	const op = "storage.RemoveExpense"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM expenses WHERE id = $1 AND user_uid = $2`
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
