package aggregate

import (
	"sort"
	"strings"
	"time"

	"github.com/shobhanapappu/groweasytracker/internal/models"
)

// Filter возвращает записи, удовлетворяющие всем заданным фильтрам.
// Именованный диапазон дат разрешается относительно переданного "сейчас".
// Пустые значения фильтров не ограничивают выборку: диапазон All и
// незаданные границы суммы возвращают вход без изменений.
func Filter(records []Record, opts models.FilterOptions, now time.Time) []Record {
	result := make([]Record, 0, len(records))
	start, bounded := rangeStart(opts.DateRange, now)

	for _, r := range records {
		if opts.Kind != "" && r.Kind != opts.Kind {
			continue
		}
		if opts.Category != "" && r.Category != opts.Category {
			continue
		}
		if bounded && r.Date.Before(start) {
			continue
		}
		if opts.MinAmount != nil && r.Amount < *opts.MinAmount {
			continue
		}
		if opts.MaxAmount != nil && r.Amount > *opts.MaxAmount {
			continue
		}
		result = append(result, r)
	}
	return result
}

// rangeStart возвращает нижнюю границу именованного диапазона дат.
// Для RangeAll и неизвестных значений границы нет.
func rangeStart(dateRange string, now time.Time) (time.Time, bool) {
	switch dateRange {
	case models.RangeLast7Days:
		return now.AddDate(0, 0, -7), true
	case models.RangeLast30Days:
		return now.AddDate(0, 0, -30), true
	case models.RangeLast90Days:
		return now.AddDate(0, 0, -90), true
	case models.RangeThisYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), true
	default:
		return time.Time{}, false
	}
}

// Sort упорядочивает записи по дате, сумме или категории. Сортировка
// стабильная: записи с равным ключом сохраняют исходный порядок.
// Неизвестное поле сортировки трактуется как дата; направление по
// умолчанию — по убыванию.
func Sort(records []Record, by, order string) {
	asc := order == models.OrderAsc

	var less func(a, b Record) bool
	switch by {
	case models.SortByAmount:
		less = func(a, b Record) bool { return a.Amount < b.Amount }
	case models.SortByCategory:
		less = func(a, b Record) bool {
			return strings.ToLower(a.Category) < strings.ToLower(b.Category)
		}
	default:
		less = func(a, b Record) bool { return a.Date.Before(b.Date) }
	}

	sort.SliceStable(records, func(i, j int) bool {
		if asc {
			return less(records[i], records[j])
		}
		return less(records[j], records[i])
	})
}
