package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shobhanapappu/groweasytracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateIncome(ctx context.Context, income models.Income) (string, error) {
	args := m.Called(ctx, income)
	return args.String(0), args.Error(1)
}

func (m *RepoMock) ListIncome(ctx context.Context, userUID string) ([]*models.Income, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Income), args.Error(1)
}

func (m *RepoMock) UpdateIncome(ctx context.Context, income models.Income, id, userUID string) (int, error) {
	args := m.Called(ctx, income, id, userUID)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) RemoveIncome(ctx context.Context, id, userUID string) (int, error) {
	args := m.Called(ctx, id, userUID)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) CreateExpense(ctx context.Context, expense models.Expense) (string, error) {
	args := m.Called(ctx, expense)
	return args.String(0), args.Error(1)
}

func (m *RepoMock) ListExpenses(ctx context.Context, userUID string) ([]*models.Expense, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Expense), args.Error(1)
}

func (m *RepoMock) UpdateExpense(ctx context.Context, expense models.Expense, id, userUID string) (int, error) {
	args := m.Called(ctx, expense, id, userUID)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) RemoveExpense(ctx context.Context, id, userUID string) (int, error) {
	args := m.Called(ctx, id, userUID)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) CreateInvestment(ctx context.Context, investment models.Investment) (string, error) {
	args := m.Called(ctx, investment)
	return args.String(0), args.Error(1)
}

func (m *RepoMock) ListInvestments(ctx context.Context, userUID string) ([]*models.Investment, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Investment), args.Error(1)
}

func (m *RepoMock) UpdateInvestment(ctx context.Context, investment models.Investment, id, userUID string) (int, error) {
	args := m.Called(ctx, investment, id, userUID)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) RemoveInvestment(ctx context.Context, id, userUID string) (int, error) {
	args := m.Called(ctx, id, userUID)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) CreateSavingsGoal(ctx context.Context, goal models.SavingsGoal) (string, error) {
	args := m.Called(ctx, goal)
	return args.String(0), args.Error(1)
}

func (m *RepoMock) ListSavingsGoals(ctx context.Context, userUID string) ([]*models.SavingsGoal, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SavingsGoal), args.Error(1)
}

func (m *RepoMock) UpdateSavingsGoal(ctx context.Context, goal models.SavingsGoal, id, userUID string) (int, error) {
	args := m.Called(ctx, goal, id, userUID)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) RemoveSavingsGoal(ctx context.Context, id, userUID string) (int, error) {
	args := m.Called(ctx, id, userUID)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) CreateBudget(ctx context.Context, budget models.Budget) (string, error) {
	args := m.Called(ctx, budget)
	return args.String(0), args.Error(1)
}

func (m *RepoMock) ListBudgets(ctx context.Context, userUID string) ([]*models.Budget, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Budget), args.Error(1)
}

func (m *RepoMock) UpdateBudget(ctx context.Context, budget models.Budget, id, userUID string) (int, error) {
	args := m.Called(ctx, budget, id, userUID)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) RemoveBudget(ctx context.Context, id, userUID string) (int, error) {
	args := m.Called(ctx, id, userUID)
	return args.Int(0), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Invalidate(key string) error {
	return m.Called(key).Error(0)
}

func NewNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRecords_CreateIncome(t *testing.T) {
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	dummyReq := models.DummyIncome{
		Amount:   2500,
		Source:   "Freelance",
		Category: "Salary",
		Date:     "2025-01-15",
		Notes:    "Website project",
	}
	income := models.Income{
		UserUID:  "uid-123",
		Amount:   2500,
		Source:   "Freelance",
		Category: "Salary",
		Date:     date,
		Notes:    "Website project",
	}

	tests := []struct {
		name       string
		setupMocks func(repo *RepoMock, cache *CacheMock)
		req        models.DummyIncome
		wantID     string
		wantErr    bool
	}{
		{
			name: "success create invalidates dashboard cache",
			setupMocks: func(repo *RepoMock, cache *CacheMock) {
				repo.On("CreateIncome", mock.Anything, income).Return("income-1", nil).Once()
				cache.On("Invalidate", "dashboard:uid-123").Return(nil).Once()
			},
			req:    dummyReq,
			wantID: "income-1",
		},
		{
			name:       "invalid date",
			setupMocks: func(_ *RepoMock, _ *CacheMock) {},
			req: models.DummyIncome{
				Amount:   2500,
				Source:   "Freelance",
				Category: "Salary",
				Date:     "not a date",
			},
			wantErr: true,
		},
		{
			name: "repo error",
			setupMocks: func(repo *RepoMock, _ *CacheMock) {
				repo.On("CreateIncome", mock.Anything, income).Return("", errors.New("db error")).Once()
			},
			req:     dummyReq,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			cache := new(CacheMock)
			svc := NewRecordsService(repo, cache, NewNoopLogger())

			tt.setupMocks(repo, cache)

			got, err := svc.CreateIncome(context.Background(), "uid-123", tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, got)
			}

			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestRecords_InvalidDateIsTyped(t *testing.T) {
	svc := NewRecordsService(new(RepoMock), new(CacheMock), NewNoopLogger())

	// Некорректная дата различима через errors.Is и до репозитория не доходит
	_, err := svc.CreateIncome(context.Background(), "uid-123", models.DummyIncome{
		Amount:   100,
		Source:   "Freelance",
		Category: "Salary",
		Date:     "10-06-2025",
	})
	assert.True(t, errors.Is(err, ErrInvalidDate))

	_, err = svc.UpdateBudget(context.Background(), "uid-123", "b1", models.DummyBudget{
		Category:    "Marketing",
		BudgetLimit: 500,
		StartDate:   "июнь",
	})
	assert.True(t, errors.Is(err, ErrInvalidDate))
}

func TestRecords_RemoveExpense(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := NewRecordsService(repo, cache, NewNoopLogger())

	repo.On("RemoveExpense", mock.Anything, "expense-1", "uid-123").Return(1, nil).Once()
	cache.On("Invalidate", "dashboard:uid-123").Return(nil).Once()

	count, err := svc.RemoveExpense(context.Background(), "uid-123", "expense-1")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestRecords_CreateSavingsGoal(t *testing.T) {
	deadline := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		req        models.DummySavingsGoal
		setupMocks func(repo *RepoMock, cache *CacheMock)
		wantErr    bool
	}{
		{
			name: "цель со сроком",
			req: models.DummySavingsGoal{
				GoalName:      "Emergency Fund",
				TargetAmount:  10000,
				CurrentAmount: 500,
				Deadline:      "2025-12-31",
			},
			setupMocks: func(repo *RepoMock, cache *CacheMock) {
				repo.On("CreateSavingsGoal", mock.Anything, mock.MatchedBy(func(goal models.SavingsGoal) bool {
					return goal.GoalName == "Emergency Fund" &&
						goal.Deadline != nil && goal.Deadline.Equal(deadline)
				})).Return("goal-1", nil).Once()
				cache.On("Invalidate", "dashboard:uid-123").Return(nil).Once()
			},
		},
		{
			name: "цель без срока — deadline nil",
			req: models.DummySavingsGoal{
				GoalName:     "Vacation",
				TargetAmount: 3000,
			},
			setupMocks: func(repo *RepoMock, cache *CacheMock) {
				repo.On("CreateSavingsGoal", mock.Anything, mock.MatchedBy(func(goal models.SavingsGoal) bool {
					return goal.GoalName == "Vacation" && goal.Deadline == nil
				})).Return("goal-2", nil).Once()
				cache.On("Invalidate", "dashboard:uid-123").Return(nil).Once()
			},
		},
		{
			name: "invalid deadline",
			req: models.DummySavingsGoal{
				GoalName:     "Bad",
				TargetAmount: 100,
				Deadline:     "31-12-2025",
			},
			setupMocks: func(_ *RepoMock, _ *CacheMock) {},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			cache := new(CacheMock)
			svc := NewRecordsService(repo, cache, NewNoopLogger())

			tt.setupMocks(repo, cache)

			_, err := svc.CreateSavingsGoal(context.Background(), "uid-123", tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestRecords_UpdateBudget(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := NewRecordsService(repo, cache, NewNoopLogger())

	startDate := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	repo.On("UpdateBudget", mock.Anything, models.Budget{
		Category:    "Food",
		BudgetLimit: 500,
		StartDate:   startDate,
	}, "budget-1", "uid-123").Return(1, nil).Once()
	cache.On("Invalidate", "dashboard:uid-123").Return(nil).Once()

	count, err := svc.UpdateBudget(context.Background(), "uid-123", "budget-1", models.DummyBudget{
		Category:    "Food",
		BudgetLimit: 500,
		StartDate:   "2025-02-01",
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}
