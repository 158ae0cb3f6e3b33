package aggregate

import (
	"math"
	"sort"
)

// SumTotals суммирует записи по типам. Пустой вход даёт нулевые итоги.
func SumTotals(records []Record) Totals {
	var t Totals
	for _, r := range records {
		switch r.Kind {
		case KindIncome:
			t.Income += r.Amount
		case KindExpense:
			t.Expenses += r.Amount
		case KindInvestment:
			t.Investments += r.Amount
		case KindSavings:
			t.Savings += r.Amount
		}
	}
	return t
}

// CategoryBreakdown группирует записи по категории и возвращает сумму и
// округлённую долю каждой категории в общем итоге. Сумма Amount по всем
// категориям в точности равна сумме входных записей: ни одна запись не
// теряется и не учитывается дважды. Результат упорядочен по убыванию суммы,
// при равенстве — по имени категории.
func CategoryBreakdown(records []Record) []CategoryTotal {
	if len(records) == 0 {
		return nil
	}

	byCategory := make(map[string]float64, len(records))
	var total float64
	for _, r := range records {
		byCategory[r.Category] += r.Amount
		total += r.Amount
	}

	result := make([]CategoryTotal, 0, len(byCategory))
	for category, amount := range byCategory {
		var pct int
		if total > 0 {
			pct = int(math.Round(amount / total * 100))
		}
		result = append(result, CategoryTotal{
			Category:   category,
			Amount:     amount,
			Percentage: pct,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Amount != result[j].Amount {
			return result[i].Amount > result[j].Amount
		}
		return result[i].Category < result[j].Category
	})
	return result
}
