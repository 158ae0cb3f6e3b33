// Package aggregate реализует агрегацию финансовых записей для дашборда:
// суммарные показатели по типам, разбивку расходов по категориям,
// помесячную динамику доходов и расходов, а также фильтрацию и сортировку
// списков записей.
//
// Все функции пакета детерминированы, не имеют побочных эффектов и
// безопасны для конкурентного вызова. Момент времени "сейчас" передаётся
// аргументом и читается вызывающей стороной один раз на вычисление.
package aggregate

import "time"

// Типы записей (дискриминант гетерогенной коллекции).
const (
	KindIncome     = "income"
	KindExpense    = "expense"
	KindInvestment = "investment"
	KindSavings    = "savings"
)

// Record — единое представление финансовой записи для агрегации.
// Для целей накопления Amount — накопленная на данный момент сумма.
type Record struct {
	ID        string    `json:"id"`
	Kind      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Totals — суммарные показатели по типам записей для карточек метрик.
type Totals struct {
	Income      float64 `json:"total_income"`
	Expenses    float64 `json:"total_expenses"`
	Investments float64 `json:"total_investments"`
	Savings     float64 `json:"total_savings"`
}

// CategoryTotal — сумма и доля одной категории в разбивке.
// Percentage округляется до целого независимо по каждой категории,
// поэтому сумма долей может отличаться от 100 — это принятая
// особенность отображения, а не инвариант корректности.
type CategoryTotal struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage int     `json:"percentage"`
}

// MonthlyPoint — доходы и расходы одного календарного месяца.
// Суммы месяца считаются независимо, это не накопительный баланс.
type MonthlyPoint struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}
