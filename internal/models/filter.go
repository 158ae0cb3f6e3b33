// Пакет models: параметры фильтрации и сортировки списков записей.
// Структуры используются как на уровне HTTP (query-параметры),
// так и в бизнес-логике агрегации.
package models

// Именованные диапазоны дат, разрешаемые относительно "сейчас" в момент вызова.
const (
	RangeLast7Days  = "Last 7 Days"
	RangeLast30Days = "Last 30 Days"
	RangeLast90Days = "Last 90 Days"
	RangeThisYear   = "This Year"
	RangeAll        = "All"
)

// Поля сортировки списков записей.
const (
	SortByDate     = "date"
	SortByAmount   = "amount"
	SortByCategory = "category"
)

// Направления сортировки.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// FilterOptions представляет параметры фильтрации и сортировки списка записей.
// Нулевые значения означают отсутствие соответствующего фильтра:
// пустая категория — без фильтра по категории, nil границы суммы — без
// ограничения, пустой DateRange эквивалентен RangeAll.
type FilterOptions struct {
	Kind      string   // Тип записи (income, expense, investment, savings); пусто — все
	Category  string   // Категория; пусто — все категории
	DateRange string   // Именованный диапазон дат
	MinAmount *float64 // Нижняя граница суммы (включительно)
	MaxAmount *float64 // Верхняя граница суммы (включительно)
	SortBy    string   // Поле сортировки
	SortOrder string   // Направление сортировки
}
