package models

import "time"

// DateLayout — формат календарной даты записей. Время суток для
// агрегации значения не имеет, хранится только дата.
const DateLayout = "2006-01-02"

// Income представляет запись о доходе пользователя.
type Income struct {
	ID        string    // Уникальный идентификатор записи
	UserUID   string    // Идентификатор пользователя-владельца
	Amount    float64   // Сумма дохода (неотрицательная)
	Source    string    // Источник дохода
	Category  string    // Категория
	Date      time.Time // Дата получения
	Notes     string    // Произвольный комментарий
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expense представляет запись о расходе пользователя.
type Expense struct {
	ID        string
	UserUID   string
	Amount    float64   // Сумма расхода (неотрицательная)
	Vendor    string    // Получатель платежа
	Category  string    // Категория
	Date      time.Time // Дата расхода
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Investment представляет запись об инвестиции пользователя.
type Investment struct {
	ID        string
	UserUID   string
	Amount    float64   // Сумма вложения (неотрицательная)
	Type      string    // Тип инвестиции (акции, облигации и т.п.)
	Platform  string    // Платформа, через которую сделано вложение
	Date      time.Time // Дата вложения
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SavingsGoal представляет цель накопления пользователя.
// Поле Deadline может быть nil — срок не задан.
type SavingsGoal struct {
	ID            string
	UserUID       string
	GoalName      string     // Название цели
	TargetAmount  float64    // Целевая сумма
	CurrentAmount float64    // Накоплено на данный момент
	Deadline      *time.Time // Срок достижения цели
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Budget представляет месячный лимит расходов по категории.
type Budget struct {
	ID          string
	UserUID     string
	Category    string    // Категория расходов
	BudgetLimit float64   // Лимит расходов
	StartDate   time.Time // Начало действия бюджета
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DummyIncome используется для приёма данных дохода из JSON-запроса,
// прежде чем конвертировать их в Income. Дата приходит строкой,
// чтобы её можно было валидировать и парсить вручную.
type DummyIncome struct {
	Amount   float64 `json:"amount" validate:"gte=0"`      // Сумма (>=0)
	Source   string  `json:"source" validate:"required"`   // Источник дохода
	Category string  `json:"category" validate:"required"` // Категория
	Date     string  `json:"date" validate:"required"`     // Дата в формате 2006-01-02
	Notes    string  `json:"notes" validate:"omitempty"`   // Комментарий (опционально)
}

// DummyExpense используется для приёма данных расхода из JSON-запроса.
type DummyExpense struct {
	Amount   float64 `json:"amount" validate:"gte=0"`
	Vendor   string  `json:"vendor" validate:"required"`
	Category string  `json:"category" validate:"required"`
	Date     string  `json:"date" validate:"required"`
	Notes    string  `json:"notes" validate:"omitempty"`
}

// DummyInvestment используется для приёма данных инвестиции из JSON-запроса.
type DummyInvestment struct {
	Amount   float64 `json:"amount" validate:"gte=0"`
	Type     string  `json:"type" validate:"required"`
	Platform string  `json:"platform" validate:"required"`
	Date     string  `json:"date" validate:"required"`
	Notes    string  `json:"notes" validate:"omitempty"`
}

// DummySavingsGoal используется для приёма данных цели накопления из JSON-запроса.
// Срок достижения опционален.
type DummySavingsGoal struct {
	GoalName      string  `json:"goal_name" validate:"required"`
	TargetAmount  float64 `json:"target_amount" validate:"required,gt=0"`
	CurrentAmount float64 `json:"current_amount" validate:"gte=0"`
	Deadline      string  `json:"deadline" validate:"omitempty"`
	Notes         string  `json:"notes" validate:"omitempty"`
}

// DummyBudget используется для приёма данных бюджета из JSON-запроса.
type DummyBudget struct {
	Category    string  `json:"category" validate:"required"`
	BudgetLimit float64 `json:"budget_limit" validate:"required,gt=0"`
	StartDate   string  `json:"start_date" validate:"required"`
}
