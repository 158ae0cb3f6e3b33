package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shobhanapappu/groweasytracker/internal/aggregate"
	"github.com/shobhanapappu/groweasytracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) ListIncome(ctx context.Context, userUID string) ([]*models.Income, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Income), args.Error(1)
}

func (m *RepoMock) ListExpenses(ctx context.Context, userUID string) ([]*models.Expense, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Expense), args.Error(1)
}

func (m *RepoMock) ListInvestments(ctx context.Context, userUID string) ([]*models.Investment, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Investment), args.Error(1)
}

func (m *RepoMock) ListSavingsGoals(ctx context.Context, userUID string) ([]*models.SavingsGoal, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SavingsGoal), args.Error(1)
}

func (m *RepoMock) ListBudgets(ctx context.Context, userUID string) ([]*models.Budget, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Budget), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	return m.Called(key, value, expiration).Error(0)
}

func NewNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func testData(now time.Time) ([]*models.Income, []*models.Expense, []*models.Investment, []*models.SavingsGoal) {
	income := []*models.Income{
		{ID: "i1", Amount: 2500, Category: "Salary", Date: now.AddDate(0, 0, -1)},
		{ID: "i2", Amount: 1500, Category: "Consulting", Date: now.AddDate(0, -1, 0)},
	}
	expenses := []*models.Expense{
		{ID: "e1", Amount: 500, Category: "Marketing", Date: now.AddDate(0, 0, -2)},
		{ID: "e2", Amount: 300, Category: "Travel", Date: now.AddDate(0, 0, -3)},
		{ID: "e3", Amount: 200, Category: "Marketing", Date: now.AddDate(0, -2, 0)},
	}
	investments := []*models.Investment{
		{ID: "inv1", Amount: 1000, Type: "Stocks", Date: now.AddDate(0, 0, -5)},
	}
	goals := []*models.SavingsGoal{
		{ID: "g1", GoalName: "Emergency Fund", TargetAmount: 10000, CurrentAmount: 500, CreatedAt: now.AddDate(0, 0, -10)},
	}
	return income, expenses, investments, goals
}

func TestDashboard_Build(t *testing.T) {
	now := time.Now().UTC()
	income, expenses, investments, goals := testData(now)

	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := NewDashboardService(repo, cache, NewNoopLogger())

	cache.On("Get", "dashboard:uid-123", mock.Anything).Return(false, nil).Once()
	repo.On("ListIncome", mock.Anything, "uid-123").Return(income, nil).Once()
	repo.On("ListExpenses", mock.Anything, "uid-123").Return(expenses, nil).Once()
	repo.On("ListInvestments", mock.Anything, "uid-123").Return(investments, nil).Once()
	repo.On("ListSavingsGoals", mock.Anything, "uid-123").Return(goals, nil).Once()
	budgets := []*models.Budget{
		{ID: "b1", Category: "Marketing", BudgetLimit: 400, StartDate: now.AddDate(0, -1, 0)},
		{ID: "b2", Category: "Travel", BudgetLimit: 1000, StartDate: now.AddDate(0, -1, 0)},
	}
	repo.On("ListBudgets", mock.Anything, "uid-123").Return(budgets, nil).Once()
	cache.On("Set", "dashboard:uid-123", mock.Anything, 15*time.Minute).Return(nil).Once()

	got, err := svc.Build(context.Background(), "uid-123")
	require.NoError(t, err)
	require.NotNil(t, got)

	// Метрики суммируются по типам
	assert.Equal(t, 4000.0, got.Metrics.Income)
	assert.Equal(t, 1000.0, got.Metrics.Expenses)
	assert.Equal(t, 1000.0, got.Metrics.Investments)
	assert.Equal(t, 500.0, got.Metrics.Savings)

	// Разбивка расходов: Marketing 700 (70%), Travel 300 (30%)
	require.Len(t, got.ExpenseCategories, 2)
	assert.Equal(t, "Marketing", got.ExpenseCategories[0].Category)
	assert.Equal(t, 700.0, got.ExpenseCategories[0].Amount)
	assert.Equal(t, 70, got.ExpenseCategories[0].Percentage)
	assert.Equal(t, "Travel", got.ExpenseCategories[1].Category)
	assert.Equal(t, 30, got.ExpenseCategories[1].Percentage)

	// Шесть месяцев, текущий — последний
	require.Len(t, got.MonthlySeries, 6)
	assert.Equal(t, now.Format("Jan"), got.MonthlySeries[5].Month)

	// Последние операции: новые первыми
	require.Len(t, got.RecentRecords, 7)
	assert.Equal(t, "i1", got.RecentRecords[0].ID)

	// Бюджеты: расход e3 старше начала бюджета и не учитывается
	require.Len(t, got.BudgetUsage, 2)
	assert.Equal(t, BudgetStatus{Category: "Marketing", Limit: 400, Spent: 500, Progress: 125, Exceeded: true}, got.BudgetUsage[0])
	assert.Equal(t, BudgetStatus{Category: "Travel", Limit: 1000, Spent: 300, Progress: 30, Exceeded: false}, got.BudgetUsage[1])

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestDashboard_BuildCacheHit(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := NewDashboardService(repo, cache, NewNoopLogger())

	cached := &Dashboard{Metrics: aggregate.Totals{Income: 42}}
	cache.On("Get", "dashboard:uid-123", mock.Anything).Return(true, nil).Run(func(args mock.Arguments) {
		ptr := args.Get(1).(**Dashboard)
		*ptr = cached
	}).Once()

	got, err := svc.Build(context.Background(), "uid-123")
	require.NoError(t, err)
	assert.Equal(t, 42.0, got.Metrics.Income)

	// Репозиторий не вызывается
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestDashboard_BuildRepoError(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := NewDashboardService(repo, cache, NewNoopLogger())

	cache.On("Get", "dashboard:uid-123", mock.Anything).Return(false, nil).Once()
	repo.On("ListIncome", mock.Anything, "uid-123").Return(nil, errors.New("db error")).Once()

	_, err := svc.Build(context.Background(), "uid-123")
	assert.Error(t, err)
}

func TestDashboard_BuildGuest(t *testing.T) {
	svc := NewDashboardService(new(RepoMock), new(CacheMock), NewNoopLogger())

	got := svc.BuildGuest(context.Background())
	require.NotNil(t, got)
	assert.Equal(t, 5000.0, got.Metrics.Income)
	assert.Equal(t, 2000.0, got.Metrics.Expenses)
	assert.Len(t, got.RecentRecords, 5)
	assert.Len(t, got.MonthlySeries, 6)
	assert.Empty(t, got.BudgetUsage)
}

func TestDashboard_Records(t *testing.T) {
	now := time.Now().UTC()
	income, expenses, investments, goals := testData(now)

	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := NewDashboardService(repo, cache, NewNoopLogger())

	repo.On("ListIncome", mock.Anything, "uid-123").Return(income, nil)
	repo.On("ListExpenses", mock.Anything, "uid-123").Return(expenses, nil)
	repo.On("ListInvestments", mock.Anything, "uid-123").Return(investments, nil)
	repo.On("ListSavingsGoals", mock.Anything, "uid-123").Return(goals, nil)

	// Только расходы за последние 7 дней, по возрастанию суммы
	got, err := svc.Records(context.Background(), "uid-123", models.FilterOptions{
		Kind:      aggregate.KindExpense,
		DateRange: models.RangeLast7Days,
		SortBy:    models.SortByAmount,
		SortOrder: models.OrderAsc,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "e2", got[0].ID)
	assert.Equal(t, "e1", got[1].ID)

	// Пустые фильтры возвращают всё
	all, err := svc.Records(context.Background(), "uid-123", models.FilterOptions{})
	require.NoError(t, err)
	assert.Len(t, all, 7)
}
