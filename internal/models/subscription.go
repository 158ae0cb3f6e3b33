// Package models содержит доменные структуры приложения: подписку пользователя,
// финансовые записи четырёх типов, бюджеты, а также вспомогательные типы
// для приёма данных из JSON-запросов.
package models

import "time"

// Возможные значения плана подписки.
const (
	PlanFree    = "free"
	PlanPremium = "premium"
)

// Возможные значения статуса подписки.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Subscription представляет подписку пользователя на сервис.
// Поле TrialEndDate может быть nil — это означает, что пробный период
// не назначен (например, после перехода на premium).
type Subscription struct {
	ID           string     // Уникальный идентификатор подписки
	UserUID      string     // Идентификатор пользователя-владельца
	Plan         string     // План подписки: free или premium
	Status       string     // Статус подписки: active или inactive
	TrialEndDate *time.Time // Дата окончания пробного периода
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SubscriptionView — ответ для клиента: подписка вместе с производными
// значениями пробного периода, вычисленными на один момент времени.
type SubscriptionView struct {
	Plan               string `json:"plan"`
	Status             string `json:"status"`
	IsPremium          bool   `json:"is_premium"`
	IsTrialEnded       bool   `json:"is_trial_ended"`
	IsInTrialPeriod    bool   `json:"is_in_trial_period"`
	TrialDaysRemaining int    `json:"trial_days_remaining"`
	TrialStartDate     string `json:"trial_start_date,omitempty"`
	TrialEndDate       string `json:"trial_end_date,omitempty"`
}
