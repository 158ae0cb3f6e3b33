package aggregate

import "time"

// monthsInSeries — глубина помесячной динамики на дашборде.
const monthsInSeries = 6

// MonthlySeries строит динамику доходов и расходов за последние шесть
// календарных месяцев, включая текущий, от старшего месяца к текущему.
// Запись попадает в месяц по календарной дате без учёта времени суток.
func MonthlySeries(records []Record, now time.Time) []MonthlyPoint {
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	points := make([]MonthlyPoint, 0, monthsInSeries)
	for i := monthsInSeries - 1; i >= 0; i-- {
		month := current.AddDate(0, -i, 0)
		point := MonthlyPoint{Month: month.Format("Jan")}
		for _, r := range records {
			if r.Date.Year() != month.Year() || r.Date.Month() != month.Month() {
				continue
			}
			switch r.Kind {
			case KindIncome:
				point.Income += r.Amount
			case KindExpense:
				point.Expenses += r.Amount
			}
		}
		points = append(points, point)
	}
	return points
}
