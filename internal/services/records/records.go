// Package services содержит бизнес-логику CRUD-операций над финансовыми
// записями пользователя: доходами, расходами, инвестициями, целями
// накопления и бюджетами.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shobhanapappu/groweasytracker/internal/models"
)

// RecordsRepository определяет методы хранилища финансовых записей.
// Все операции изменения дополнительно ограничены user_uid владельца.
type RecordsRepository interface {
	CreateIncome(ctx context.Context, income models.Income) (string, error)
	ListIncome(ctx context.Context, userUID string) ([]*models.Income, error)
	UpdateIncome(ctx context.Context, income models.Income, id, userUID string) (int, error)
	RemoveIncome(ctx context.Context, id, userUID string) (int, error)

	CreateExpense(ctx context.Context, expense models.Expense) (string, error)
	ListExpenses(ctx context.Context, userUID string) ([]*models.Expense, error)
	UpdateExpense(ctx context.Context, expense models.Expense, id, userUID string) (int, error)
	RemoveExpense(ctx context.Context, id, userUID string) (int, error)

	CreateInvestment(ctx context.Context, investment models.Investment) (string, error)
	ListInvestments(ctx context.Context, userUID string) ([]*models.Investment, error)
	UpdateInvestment(ctx context.Context, investment models.Investment, id, userUID string) (int, error)
	RemoveInvestment(ctx context.Context, id, userUID string) (int, error)

	CreateSavingsGoal(ctx context.Context, goal models.SavingsGoal) (string, error)
	ListSavingsGoals(ctx context.Context, userUID string) ([]*models.SavingsGoal, error)
	UpdateSavingsGoal(ctx context.Context, goal models.SavingsGoal, id, userUID string) (int, error)
	RemoveSavingsGoal(ctx context.Context, id, userUID string) (int, error)

	CreateBudget(ctx context.Context, budget models.Budget) (string, error)
	ListBudgets(ctx context.Context, userUID string) ([]*models.Budget, error)
	UpdateBudget(ctx context.Context, budget models.Budget, id, userUID string) (int, error)
	RemoveBudget(ctx context.Context, id, userUID string) (int, error)
}

// Cache описывает методы для инвалидации кеша дашборда.
type Cache interface {
	Invalidate(key string) error
}

// RecordsService реализует операции над записями с инвалидацией
// кешированного дашборда при каждом изменении.
type RecordsService struct {
	repo  RecordsRepository
	cache Cache
	log   *slog.Logger
}

// ErrInvalidDate возвращается, когда дата в запросе не соответствует
// формату 2006-01-02. Обработчики переводят её в ошибку валидации.
var ErrInvalidDate = errors.New("invalid date, expected format 2006-01-02")

// NewRecordsService создает новый экземпляр RecordsService.
func NewRecordsService(repo RecordsRepository, cache Cache, log *slog.Logger) *RecordsService {
	return &RecordsService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func (s *RecordsService) invalidateDashboard(userUID string) {
	key := fmt.Sprintf("dashboard:%s", userUID)
	if err := s.cache.Invalidate(key); err != nil {
		s.log.Warn("failed to invalidate dashboard cache", slog.String("key", key), slog.Any("err", err))
	}
}

// CreateIncome создает запись о доходе и возвращает её ID.
func (s *RecordsService) CreateIncome(ctx context.Context, userUID string, req models.DummyIncome) (string, error) {
	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	id, err := s.repo.CreateIncome(ctx, models.Income{
		UserUID:  userUID,
		Amount:   req.Amount,
		Source:   req.Source,
		Category: req.Category,
		Date:     date,
		Notes:    req.Notes,
	})
	if err != nil {
		return "", err
	}
	s.log.Info("created income record", slog.String("id", id))
	s.invalidateDashboard(userUID)
	return id, nil
}

// ListIncome возвращает доходы пользователя.
func (s *RecordsService) ListIncome(ctx context.Context, userUID string) ([]*models.Income, error) {
	return s.repo.ListIncome(ctx, userUID)
}

// UpdateIncome обновляет запись о доходе пользователя.
func (s *RecordsService) UpdateIncome(ctx context.Context, userUID, id string, req models.DummyIncome) (int, error) {
	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	count, err := s.repo.UpdateIncome(ctx, models.Income{
		Amount:   req.Amount,
		Source:   req.Source,
		Category: req.Category,
		Date:     date,
		Notes:    req.Notes,
	}, id, userUID)
	if err != nil {
		return 0, err
	}
	s.invalidateDashboard(userUID)
	return count, nil
}

// RemoveIncome удаляет запись о доходе пользователя.
func (s *RecordsService) RemoveIncome(ctx context.Context, userUID, id string) (int, error) {
	count, err := s.repo.RemoveIncome(ctx, id, userUID)
	if err != nil {
		return 0, err
	}
	s.invalidateDashboard(userUID)
	return count, nil
}

// CreateExpense создает запись о расходе и возвращает её ID.
func (s *RecordsService) CreateExpense(ctx context.Context, userUID string, req models.DummyExpense) (string, error) {
	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	id, err := s.repo.CreateExpense(ctx, models.Expense{
		UserUID:  userUID,
		Amount:   req.Amount,
		Vendor:   req.Vendor,
		Category: req.Category,
		Date:     date,
		Notes:    req.Notes,
	})
	if err != nil {
		return "", err
	}
	s.log.Info("created expense record", slog.String("id", id))
	s.invalidateDashboard(userUID)
	return id, nil
}

// ListExpenses возвращает расходы пользователя.
func (s *RecordsService) ListExpenses(ctx context.Context, userUID string) ([]*models.Expense, error) {
	return s.repo.ListExpenses(ctx, userUID)
}

// UpdateExpense обновляет запись о расходе пользователя.
func (s *RecordsService) UpdateExpense(ctx context.Context, userUID, id string, req models.DummyExpense) (int, error) {
	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	count, err := s.repo.UpdateExpense(ctx, models.Expense{
		Amount:   req.Amount,
		Vendor:   req.Vendor,
		Category: req.Category,
		Date:     date,
		Notes:    req.Notes,
	}, id, userUID)
	if err != nil {
		return 0, err
	}
	s.invalidateDashboard(userUID)
	return count, nil
}

// RemoveExpense удаляет запись о расходе пользователя.
func (s *RecordsService) RemoveExpense(ctx context.Context, userUID, id string) (int, error) {
	count, err := s.repo.RemoveExpense(ctx, id, userUID)
	if err != nil {
		return 0, err
	}
	s.invalidateDashboard(userUID)
	return count, nil
}

// CreateInvestment создает запись об инвестиции и возвращает её ID.
func (s *RecordsService) CreateInvestment(ctx context.Context, userUID string, req models.DummyInvestment) (string, error) {
	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	id, err := s.repo.CreateInvestment(ctx, models.Investment{
		UserUID:  userUID,
		Amount:   req.Amount,
		Type:     req.Type,
		Platform: req.Platform,
		Date:     date,
		Notes:    req.Notes,
	})
	if err != nil {
		return "", err
	}
	s.log.Info("created investment record", slog.String("id", id))
	s.invalidateDashboard(userUID)
	return id, nil
}

// ListInvestments возвращает инвестиции пользователя.
func (s *RecordsService) ListInvestments(ctx context.Context, userUID string) ([]*models.Investment, error) {
	return s.repo.ListInvestments(ctx, userUID)
}

// UpdateInvestment обновляет запись об инвестиции пользователя.
func (s *RecordsService) UpdateInvestment(ctx context.Context, userUID, id string, req models.DummyInvestment) (int, error) {
	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	count, err := s.repo.UpdateInvestment(ctx, models.Investment{
		Amount:   req.Amount,
		Type:     req.Type,
		Platform: req.Platform,
		Date:     date,
		Notes:    req.Notes,
	}, id, userUID)
	if err != nil {
		return 0, err
	}
	s.invalidateDashboard(userUID)
	return count, nil
}

// RemoveInvestment удаляет запись об инвестиции пользователя.
func (s *RecordsService) RemoveInvestment(ctx context.Context, userUID, id string) (int, error) {
	count, err := s.repo.RemoveInvestment(ctx, id, userUID)
	if err != nil {
		return 0, err
	}
	s.invalidateDashboard(userUID)
	return count, nil
}

// CreateSavingsGoal создает цель накопления и возвращает её ID.
func (s *RecordsService) CreateSavingsGoal(ctx context.Context, userUID string, req models.DummySavingsGoal) (string, error) {
	goal := models.SavingsGoal{
		UserUID:       userUID,
		GoalName:      req.GoalName,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Notes:         req.Notes,
	}
	if req.Deadline != "" {
		deadline, err := time.Parse(models.DateLayout, req.Deadline)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		goal.Deadline = &deadline
	}
	id, err := s.repo.CreateSavingsGoal(ctx, goal)
	if err != nil {
		return "", err
	}
	s.log.Info("created savings goal", slog.String("id", id))
	s.invalidateDashboard(userUID)
	return id, nil
}

// ListSavingsGoals возвращает цели накопления пользователя.
func (s *RecordsService) ListSavingsGoals(ctx context.Context, userUID string) ([]*models.SavingsGoal, error) {
	return s.repo.ListSavingsGoals(ctx, userUID)
}

// UpdateSavingsGoal обновляет цель накопления пользователя.
func (s *RecordsService) UpdateSavingsGoal(ctx context.Context, userUID, id string, req models.DummySavingsGoal) (int, error) {
	goal := models.SavingsGoal{
		GoalName:      req.GoalName,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Notes:         req.Notes,
	}
	if req.Deadline != "" {
		deadline, err := time.Parse(models.DateLayout, req.Deadline)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		goal.Deadline = &deadline
	}
	count, err := s.repo.UpdateSavingsGoal(ctx, goal, id, userUID)
	if err != nil {
		return 0, err
	}
	s.invalidateDashboard(userUID)
	return count, nil
}

// RemoveSavingsGoal удаляет цель накопления пользователя.
func (s *RecordsService) RemoveSavingsGoal(ctx context.Context, userUID, id string) (int, error) {
	count, err := s.repo.RemoveSavingsGoal(ctx, id, userUID)
	if err != nil {
		return 0, err
	}
	s.invalidateDashboard(userUID)
	return count, nil
}

// CreateBudget создает бюджет и возвращает его ID.
func (s *RecordsService) CreateBudget(ctx context.Context, userUID string, req models.DummyBudget) (string, error) {
	startDate, err := time.Parse(models.DateLayout, req.StartDate)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	id, err := s.repo.CreateBudget(ctx, models.Budget{
		UserUID:     userUID,
		Category:    req.Category,
		BudgetLimit: req.BudgetLimit,
		StartDate:   startDate,
	})
	if err != nil {
		return "", err
	}
	s.log.Info("created budget", slog.String("id", id))
	s.invalidateDashboard(userUID)
	return id, nil
}

// ListBudgets возвращает бюджеты пользователя.
func (s *RecordsService) ListBudgets(ctx context.Context, userUID string) ([]*models.Budget, error) {
	return s.repo.ListBudgets(ctx, userUID)
}

// UpdateBudget обновляет бюджет пользователя.
func (s *RecordsService) UpdateBudget(ctx context.Context, userUID, id string, req models.DummyBudget) (int, error) {
	startDate, err := time.Parse(models.DateLayout, req.StartDate)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	count, err := s.repo.UpdateBudget(ctx, models.Budget{
		Category:    req.Category,
		BudgetLimit: req.BudgetLimit,
		StartDate:   startDate,
	}, id, userUID)
	if err != nil {
		return 0, err
	}
	s.invalidateDashboard(userUID)
	return count, nil
}

// RemoveBudget удаляет бюджет пользователя.
func (s *RecordsService) RemoveBudget(ctx context.Context, userUID, id string) (int, error) {
	count, err := s.repo.RemoveBudget(ctx, id, userUID)
	if err != nil {
		return 0, err
	}
	s.invalidateDashboard(userUID)
	return count, nil
}
