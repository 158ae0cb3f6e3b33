// Package services собирает дашборд пользователя: метрики, разбивку
// расходов по категориям, помесячную динамику и список последних операций.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/shobhanapappu/groweasytracker/internal/aggregate"
	"github.com/shobhanapappu/groweasytracker/internal/demo"
	"github.com/shobhanapappu/groweasytracker/internal/models"
)

// RecordsRepository определяет методы чтения финансовых записей.
type RecordsRepository interface {
	ListIncome(ctx context.Context, userUID string) ([]*models.Income, error)
	ListExpenses(ctx context.Context, userUID string) ([]*models.Expense, error)
	ListInvestments(ctx context.Context, userUID string) ([]*models.Investment, error)
	ListSavingsGoals(ctx context.Context, userUID string) ([]*models.SavingsGoal, error)
	ListBudgets(ctx context.Context, userUID string) ([]*models.Budget, error)
}

// Cache описывает методы для кэширования дашборда.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
}

// Dashboard — собранный дашборд пользователя. Все значения вычислены
// на один момент времени.
type Dashboard struct {
	Metrics           aggregate.Totals          `json:"metrics"`
	ExpenseCategories []aggregate.CategoryTotal `json:"expense_categories"`
	MonthlySeries     []aggregate.MonthlyPoint  `json:"monthly_series"`
	RecentRecords     []aggregate.Record        `json:"recent_records"`
	BudgetUsage       []BudgetStatus            `json:"budget_usage"`
}

// BudgetStatus — расход по бюджету относительно установленного лимита.
// Spent учитывает только расходы категории бюджета с даты его начала,
// Progress — процент использования лимита, округлённый до целого.
type BudgetStatus struct {
	Category string  `json:"category"`
	Limit    float64 `json:"limit"`
	Spent    float64 `json:"spent"`
	Progress int     `json:"progress"`
	Exceeded bool    `json:"exceeded"`
}

// DashboardService реализует сборку дашборда с кешированием.
type DashboardService struct {
	repo  RecordsRepository
	cache Cache
	log   *slog.Logger
}

// NewDashboardService создает новый экземпляр DashboardService.
func NewDashboardService(repo RecordsRepository, cache Cache, log *slog.Logger) *DashboardService {
	return &DashboardService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Build возвращает дашборд пользователя, используя кеш или полный пересчёт.
// Кеш инвалидируется сервисом записей при любом изменении данных.
func (s *DashboardService) Build(ctx context.Context, userUID string) (*Dashboard, error) {
	var result *Dashboard
	key := fmt.Sprintf("dashboard:%s", userUID)
	found, err := s.cache.Get(key, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}

	records, err := s.collect(ctx, userUID)
	if err != nil {
		return nil, err
	}
	budgets, err := s.repo.ListBudgets(ctx, userUID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var expenses []aggregate.Record
	for _, r := range records {
		if r.Kind == aggregate.KindExpense {
			expenses = append(expenses, r)
		}
	}

	recent := make([]aggregate.Record, len(records))
	copy(recent, records)
	aggregate.Sort(recent, models.SortByDate, models.OrderDesc)

	result = &Dashboard{
		Metrics:           aggregate.SumTotals(records),
		ExpenseCategories: aggregate.CategoryBreakdown(expenses),
		MonthlySeries:     aggregate.MonthlySeries(records, now),
		RecentRecords:     recent,
		BudgetUsage:       budgetUsage(budgets, expenses),
	}

	if err := s.cache.Set(key, result, 15*time.Minute); err != nil {
		s.log.Warn("failed to cache dashboard", slog.String("key", key), slog.Any("err", err))
	}
	return result, nil
}

// BuildGuest возвращает дашборд гостевого режима с синтетическими данными.
// База данных не используется.
func (s *DashboardService) BuildGuest(_ context.Context) *Dashboard {
	return &Dashboard{
		Metrics:           demo.Metrics(),
		ExpenseCategories: demo.ExpenseCategories(),
		MonthlySeries:     demo.MonthlySeries(),
		RecentRecords:     demo.Records(),
	}
}

// budgetUsage считает потраченное по каждому бюджету. Расход попадает
// в бюджет, если категория совпадает и дата не раньше начала бюджета.
func budgetUsage(budgets []*models.Budget, expenses []aggregate.Record) []BudgetStatus {
	if len(budgets) == 0 {
		return nil
	}
	usage := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		var spent float64
		for _, e := range expenses {
			if e.Category == b.Category && !e.Date.Before(b.StartDate) {
				spent += e.Amount
			}
		}
		var progress int
		if b.BudgetLimit > 0 {
			progress = int(math.Round(spent / b.BudgetLimit * 100))
		}
		usage = append(usage, BudgetStatus{
			Category: b.Category,
			Limit:    b.BudgetLimit,
			Spent:    spent,
			Progress: progress,
			Exceeded: spent > b.BudgetLimit,
		})
	}
	return usage
}

// Records возвращает записи пользователя с применёнными фильтрами
// и сортировкой. Момент времени для именованных диапазонов дат
// читается один раз.
func (s *DashboardService) Records(ctx context.Context, userUID string, opts models.FilterOptions) ([]aggregate.Record, error) {
	records, err := s.collect(ctx, userUID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	filtered := aggregate.Filter(records, opts, now)
	aggregate.Sort(filtered, opts.SortBy, opts.SortOrder)
	return filtered, nil
}

// collect загружает записи всех типов и приводит их к единому представлению.
// Для цели накопления суммой считается накопленное на данный момент,
// а датой — день создания цели.
func (s *DashboardService) collect(ctx context.Context, userUID string) ([]aggregate.Record, error) {
	income, err := s.repo.ListIncome(ctx, userUID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.repo.ListExpenses(ctx, userUID)
	if err != nil {
		return nil, err
	}
	investments, err := s.repo.ListInvestments(ctx, userUID)
	if err != nil {
		return nil, err
	}
	goals, err := s.repo.ListSavingsGoals(ctx, userUID)
	if err != nil {
		return nil, err
	}

	records := make([]aggregate.Record, 0, len(income)+len(expenses)+len(investments)+len(goals))
	for _, r := range income {
		records = append(records, aggregate.Record{
			ID:        r.ID,
			Kind:      aggregate.KindIncome,
			Amount:    r.Amount,
			Category:  r.Category,
			Date:      r.Date,
			Notes:     r.Notes,
			CreatedAt: r.CreatedAt,
		})
	}
	for _, r := range expenses {
		records = append(records, aggregate.Record{
			ID:        r.ID,
			Kind:      aggregate.KindExpense,
			Amount:    r.Amount,
			Category:  r.Category,
			Date:      r.Date,
			Notes:     r.Notes,
			CreatedAt: r.CreatedAt,
		})
	}
	for _, r := range investments {
		records = append(records, aggregate.Record{
			ID:        r.ID,
			Kind:      aggregate.KindInvestment,
			Amount:    r.Amount,
			Category:  r.Type,
			Date:      r.Date,
			Notes:     r.Notes,
			CreatedAt: r.CreatedAt,
		})
	}
	for _, r := range goals {
		records = append(records, aggregate.Record{
			ID:        r.ID,
			Kind:      aggregate.KindSavings,
			Amount:    r.CurrentAmount,
			Category:  r.GoalName,
			Date:      r.CreatedAt,
			Notes:     r.Notes,
			CreatedAt: r.CreatedAt,
		})
	}
	return records, nil
}
