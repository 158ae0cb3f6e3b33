package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shobhanapappu/groweasytracker/internal/models"
)

// CreateSavingsGoal вставляет новую цель накопления и возвращает её ID.
func (s *Storage) CreateSavingsGoal(ctx context.Context, goal models.SavingsGoal) (string, error) {
	const op = "storage.CreateSavingsGoal"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO savings_goals (user_uid, goal_name, target_amount, current_amount, deadline, notes)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		goal.UserUID, goal.GoalName, goal.TargetAmount, goal.CurrentAmount,
		goal.Deadline, goal.Notes).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListSavingsGoals возвращает цели накопления пользователя,
// сначала недавно созданные.
func (s *Storage) ListSavingsGoals(ctx context.Context, userUID string) ([]*models.SavingsGoal, error) {
	const op = "storage.ListSavingsGoals"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, goal_name, target_amount, current_amount, deadline, notes, created_at, updated_at
			  FROM savings_goals
			  WHERE user_uid = $1
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.SavingsGoal
	for rows.Next() {
		var item models.SavingsGoal
		var deadline sql.NullTime
		if err := rows.Scan(&item.ID, &item.UserUID, &item.GoalName, &item.TargetAmount,
			&item.CurrentAmount, &deadline, &item.Notes, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if deadline.Valid {
			item.Deadline = &deadline.Time
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateSavingsGoal обновляет цель накопления пользователя по её ID
// и возвращает количество изменённых строк.
func (s *Storage) UpdateSavingsGoal(ctx context.Context, goal models.SavingsGoal, id, userUID string) (int, error) {
	const op = "storage.UpdateSavingsGoal"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE savings_goals
			  SET goal_name = $1, target_amount = $2, current_amount = $3, deadline = $4, notes = $5, updated_at = now()
			  WHERE id = $6 AND user_uid = $7`
	result, err := s.DB.ExecContext(ctx, query,
		goal.GoalName, goal.TargetAmount, goal.CurrentAmount, goal.Deadline,
		goal.Notes, id, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveSavingsGoal удаляет цель накопления пользователя и возвращает
// количество удалённых строк.
func (s *Storage) RemoveSavingsGoal(ctx context.Context, id, userUID string) (int, error) {
	const op = "storage.RemoveSavingsGoal"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM savings_goals WHERE id = $1 AND user_uid = $2`
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
