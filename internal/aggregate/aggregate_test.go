package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shobhanapappu/groweasytracker/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSumTotals(t *testing.T) {
	records := []Record{
		{Kind: KindIncome, Amount: 2500, Category: "Freelance Work", Date: date(2025, 1, 15)},
		{Kind: KindExpense, Amount: 500, Category: "Marketing", Date: date(2025, 1, 14)},
		{Kind: KindInvestment, Amount: 1000, Category: "Stocks", Date: date(2025, 1, 13)},
		{Kind: KindSavings, Amount: 500, Category: "Emergency Fund", Date: date(2025, 1, 12)},
		{Kind: KindIncome, Amount: 1500, Category: "Consulting", Date: date(2025, 1, 10)},
	}

	totals := SumTotals(records)
	assert.Equal(t, 4000.0, totals.Income)
	assert.Equal(t, 500.0, totals.Expenses)
	assert.Equal(t, 1000.0, totals.Investments)
	assert.Equal(t, 500.0, totals.Savings)
}

func TestSumTotals_EmptyInput(t *testing.T) {
	assert.Equal(t, Totals{}, SumTotals(nil))
	assert.Equal(t, Totals{}, SumTotals([]Record{}))
}

func TestCategoryBreakdown(t *testing.T) {
	records := []Record{
		{Kind: KindExpense, Amount: 800, Category: "Marketing"},
		{Kind: KindExpense, Amount: 600, Category: "Travel"},
		{Kind: KindExpense, Amount: 400, Category: "Supplies"},
		{Kind: KindExpense, Amount: 200, Category: "Software"},
		{Kind: KindExpense, Amount: 200, Category: "Marketing"},
	}

	breakdown := CategoryBreakdown(records)
	require.Len(t, breakdown, 4)

	// упорядочено по убыванию суммы
	assert.Equal(t, "Marketing", breakdown[0].Category)
	assert.Equal(t, 1000.0, breakdown[0].Amount)
	assert.Equal(t, 45, breakdown[0].Percentage) // 1000/2200 -> 45.45 -> 45

	// сумма по категориям в точности равна общей сумме
	var sum float64
	for _, c := range breakdown {
		sum += c.Amount
	}
	assert.Equal(t, 2200.0, sum)
}

// Доли округляются независимо и не нормируются: их сумма может
// отличаться от 100.
func TestCategoryBreakdown_PercentDrift(t *testing.T) {
	records := []Record{
		{Kind: KindExpense, Amount: 100, Category: "A"},
		{Kind: KindExpense, Amount: 100, Category: "B"},
		{Kind: KindExpense, Amount: 100, Category: "C"},
	}

	breakdown := CategoryBreakdown(records)
	require.Len(t, breakdown, 3)

	pctSum := 0
	for _, c := range breakdown {
		assert.Equal(t, 33, c.Percentage)
		pctSum += c.Percentage
	}
	assert.Equal(t, 99, pctSum)
}

func TestCategoryBreakdown_EmptyInput(t *testing.T) {
	assert.Empty(t, CategoryBreakdown(nil))
}

func TestMonthlySeries(t *testing.T) {
	now := date(2025, 1, 20)
	records := []Record{
		{Kind: KindIncome, Amount: 100, Date: date(2025, 1, 5)},
		{Kind: KindExpense, Amount: 40, Date: date(2025, 1, 10)},
		{Kind: KindIncome, Amount: 5500, Date: date(2024, 12, 3)},
		{Kind: KindExpense, Amount: 3400, Date: date(2024, 12, 28)},
		// за пределами окна в шесть месяцев
		{Kind: KindIncome, Amount: 9999, Date: date(2024, 6, 1)},
	}

	series := MonthlySeries(records, now)
	require.Len(t, series, 6)

	assert.Equal(t, []string{"Aug", "Sep", "Oct", "Nov", "Dec", "Jan"},
		[]string{series[0].Month, series[1].Month, series[2].Month, series[3].Month, series[4].Month, series[5].Month})

	jan := series[5]
	assert.Equal(t, 100.0, jan.Income)
	assert.Equal(t, 40.0, jan.Expenses)

	dec := series[4]
	assert.Equal(t, 5500.0, dec.Income)
	assert.Equal(t, 3400.0, dec.Expenses)

	// июнь не входит в окно
	for _, p := range series {
		assert.NotEqual(t, 9999.0, p.Income)
	}
}

func TestMonthlySeries_EmptyInput(t *testing.T) {
	series := MonthlySeries(nil, date(2025, 3, 1))
	require.Len(t, series, 6)
	for _, p := range series {
		assert.Zero(t, p.Income)
		assert.Zero(t, p.Expenses)
	}
}

func TestFilter_ByKind(t *testing.T) {
	records := []Record{
		{ID: "1", Kind: KindIncome, Amount: 100, Date: date(2025, 1, 5)},
		{ID: "2", Kind: KindExpense, Amount: 40, Date: date(2025, 1, 10)},
	}

	got := Filter(records, models.FilterOptions{Kind: KindExpense}, date(2025, 1, 20))
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

// Диапазон All и незаданные границы суммы возвращают вход без изменений.
func TestFilter_Identity(t *testing.T) {
	records := []Record{
		{ID: "1", Kind: KindIncome, Amount: 100, Date: date(2020, 1, 5)},
		{ID: "2", Kind: KindExpense, Amount: 40, Date: date(2025, 1, 10)},
		{ID: "3", Kind: KindSavings, Amount: 0, Date: date(2023, 7, 1)},
	}

	got := Filter(records, models.FilterOptions{DateRange: models.RangeAll}, date(2025, 1, 20))
	assert.Equal(t, records, got)

	got = Filter(records, models.FilterOptions{}, date(2025, 1, 20))
	assert.Equal(t, records, got)
}

func TestFilter_DateBuckets(t *testing.T) {
	now := date(2025, 6, 15)
	records := []Record{
		{ID: "recent", Kind: KindExpense, Amount: 10, Date: date(2025, 6, 12)},
		{ID: "month", Kind: KindExpense, Amount: 10, Date: date(2025, 5, 25)},
		{ID: "spring", Kind: KindExpense, Amount: 10, Date: date(2025, 4, 1)},
		{ID: "january", Kind: KindExpense, Amount: 10, Date: date(2025, 1, 2)},
		{ID: "lastyear", Kind: KindExpense, Amount: 10, Date: date(2024, 11, 1)},
	}

	tests := []struct {
		name      string
		dateRange string
		wantIDs   []string
	}{
		{name: "Last 7 Days", dateRange: models.RangeLast7Days, wantIDs: []string{"recent"}},
		{name: "Last 30 Days", dateRange: models.RangeLast30Days, wantIDs: []string{"recent", "month"}},
		{name: "Last 90 Days", dateRange: models.RangeLast90Days, wantIDs: []string{"recent", "month", "spring"}},
		{name: "This Year", dateRange: models.RangeThisYear, wantIDs: []string{"recent", "month", "spring", "january"}},
		{name: "All", dateRange: models.RangeAll, wantIDs: []string{"recent", "month", "spring", "january", "lastyear"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(records, models.FilterOptions{DateRange: tt.dateRange}, now)
			ids := make([]string, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilter_AmountRange(t *testing.T) {
	records := []Record{
		{ID: "small", Kind: KindExpense, Amount: 10},
		{ID: "mid", Kind: KindExpense, Amount: 50},
		{ID: "big", Kind: KindExpense, Amount: 500},
	}
	now := date(2025, 1, 1)

	min := 10.0
	max := 50.0
	got := Filter(records, models.FilterOptions{MinAmount: &min, MaxAmount: &max}, now)
	require.Len(t, got, 2)
	// границы включительны
	assert.Equal(t, "small", got[0].ID)
	assert.Equal(t, "mid", got[1].ID)

	onlyMax := 49.0
	got = Filter(records, models.FilterOptions{MaxAmount: &onlyMax}, now)
	require.Len(t, got, 1)
	assert.Equal(t, "small", got[0].ID)
}

func TestSort(t *testing.T) {
	base := []Record{
		{ID: "a", Amount: 50, Category: "Travel", Date: date(2025, 1, 10)},
		{ID: "b", Amount: 10, Category: "marketing", Date: date(2025, 1, 12)},
		{ID: "c", Amount: 50, Category: "Supplies", Date: date(2025, 1, 8)},
	}

	clone := func() []Record {
		out := make([]Record, len(base))
		copy(out, base)
		return out
	}

	t.Run("по дате по убыванию", func(t *testing.T) {
		records := clone()
		Sort(records, models.SortByDate, models.OrderDesc)
		assert.Equal(t, []string{"b", "a", "c"}, []string{records[0].ID, records[1].ID, records[2].ID})
	})

	t.Run("по сумме по возрастанию", func(t *testing.T) {
		records := clone()
		Sort(records, models.SortByAmount, models.OrderAsc)
		assert.Equal(t, "b", records[0].ID)
		// стабильность: равные суммы сохраняют исходный порядок
		assert.Equal(t, "a", records[1].ID)
		assert.Equal(t, "c", records[2].ID)
	})

	t.Run("по категории без учёта регистра", func(t *testing.T) {
		records := clone()
		Sort(records, models.SortByCategory, models.OrderAsc)
		assert.Equal(t, []string{"b", "c", "a"}, []string{records[0].ID, records[1].ID, records[2].ID})
	})
}
