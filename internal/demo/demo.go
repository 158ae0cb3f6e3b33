// Package demo содержит синтетический набор данных гостевого режима.
// Гость видит заранее подготовленный дашборд без обращений к базе:
// ничего не пишется и не читается от имени реального пользователя.
package demo

import (
	"time"

	"github.com/shobhanapappu/groweasytracker/internal/aggregate"
)

// Metrics возвращает метрики гостевого дашборда.
func Metrics() aggregate.Totals {
	return aggregate.Totals{
		Income:      5000,
		Expenses:    2000,
		Investments: 1000,
		Savings:     500,
	}
}

// Records возвращает последние операции гостевого дашборда.
func Records() []aggregate.Record {
	return []aggregate.Record{
		{
			ID:        "demo-1",
			Kind:      aggregate.KindIncome,
			Amount:    2500,
			Category:  "Freelance Work",
			Date:      time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			Notes:     "Website development project",
			CreatedAt: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:        "demo-2",
			Kind:      aggregate.KindExpense,
			Amount:    500,
			Category:  "Marketing",
			Date:      time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC),
			Notes:     "Google Ads campaign",
			CreatedAt: time.Date(2025, 1, 14, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:        "demo-3",
			Kind:      aggregate.KindInvestment,
			Amount:    1000,
			Category:  "Stocks",
			Date:      time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
			Notes:     "Tech stock portfolio",
			CreatedAt: time.Date(2025, 1, 13, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:        "demo-4",
			Kind:      aggregate.KindSavings,
			Amount:    500,
			Category:  "Emergency Fund",
			Date:      time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
			Notes:     "Monthly savings goal",
			CreatedAt: time.Date(2025, 1, 12, 16, 45, 0, 0, time.UTC),
		},
		{
			ID:        "demo-5",
			Kind:      aggregate.KindIncome,
			Amount:    1500,
			Category:  "Consulting",
			Date:      time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			Notes:     "Strategy consultation",
			CreatedAt: time.Date(2025, 1, 10, 11, 20, 0, 0, time.UTC),
		},
	}
}

// MonthlySeries возвращает помесячную динамику гостевого дашборда.
func MonthlySeries() []aggregate.MonthlyPoint {
	return []aggregate.MonthlyPoint{
		{Month: "Aug", Income: 4200, Expenses: 2800},
		{Month: "Sep", Income: 4800, Expenses: 3200},
		{Month: "Oct", Income: 5200, Expenses: 2900},
		{Month: "Nov", Income: 4600, Expenses: 3100},
		{Month: "Dec", Income: 5500, Expenses: 3400},
		{Month: "Jan", Income: 5000, Expenses: 2000},
	}
}

// ExpenseCategories возвращает разбивку расходов гостевого дашборда.
func ExpenseCategories() []aggregate.CategoryTotal {
	return aggregate.CategoryBreakdown([]aggregate.Record{
		{Kind: aggregate.KindExpense, Amount: 800, Category: "Marketing"},
		{Kind: aggregate.KindExpense, Amount: 600, Category: "Travel"},
		{Kind: aggregate.KindExpense, Amount: 400, Category: "Supplies"},
		{Kind: aggregate.KindExpense, Amount: 200, Category: "Software"},
	})
}
