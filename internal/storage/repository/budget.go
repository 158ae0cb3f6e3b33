package repository

import (
	"context"
	"fmt"

	"github.com/shobhanapappu/groweasytracker/internal/models"
)

// CreateBudget вставляет новый бюджет и возвращает его ID.
func (s *Storage) CreateBudget(ctx context.Context, budget models.Budget) (string, error) {
	const op = "storage.CreateBudget"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO budgets (user_uid, category, budget_limit, start_date)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		budget.UserUID, budget.Category, budget.BudgetLimit, budget.StartDate).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListBudgets возвращает бюджеты пользователя, сначала недавно созданные.
func (s *Storage) ListBudgets(ctx context.Context, userUID string) ([]*models.Budget, error) {
	const op = "storage.ListBudgets"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, category, budget_limit, start_date, created_at, updated_at
			  FROM budgets
			  WHERE user_uid = $1
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Budget
	for rows.Next() {
		var item models.Budget
		if err := rows.Scan(&item.ID, &item.UserUID, &item.Category, &item.BudgetLimit,
			&item.StartDate, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateBudget обновляет бюджет пользователя по его ID и возвращает
// количество изменённых строк.
func (s *Storage) UpdateBudget(ctx context.Context, budget models.Budget, id, userUID string) (int, error) {
	const op = "storage.UpdateBudget"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE budgets
			  SET category = $1, budget_limit = $2, start_date = $3, updated_at = now()
			  WHERE id = $4 AND user_uid = $5`
	result, err := s.DB.ExecContext(ctx, query,
		budget.Category, budget.BudgetLimit, budget.StartDate, id, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveBudget удаляет бюджет пользователя и возвращает количество
// удалённых строк.
func (s *Storage) RemoveBudget(ctx context.Context, id, userUID string) (int, error) {
	const op = "storage.RemoveBudget"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM budgets WHERE id = $1 AND user_uid = $2`
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
