package models

import "time"

// Типы биллинга premium-подписки.
const (
	BillingMonthly = "monthly"
	BillingYearly  = "yearly"
)

// PaymentOrder представляет заказ на оплату premium-подписки,
// созданный у платёжного провайдера.
type PaymentOrder struct {
	ID        string // Внутренний идентификатор заказа
	OrderID   string // Идентификатор заказа у провайдера
	UserUID   string // Пользователь, оплачивающий подписку
	Amount    int64  // Сумма в минимальных единицах валюты (пайсы)
	Currency  string // Валюта заказа
	Billing   string // Тип биллинга: monthly или yearly
	Status    string // Статус заказа у провайдера
	CreatedAt time.Time
}

// DummyOrder используется для приёма запроса на создание заказа из JSON.
// Сумма приходит в основных единицах валюты и конвертируется в пайсы
// на стороне бизнес-логики.
type DummyOrder struct {
	Amount  float64 `json:"amount" validate:"required,gt=0"`
	Billing string  `json:"billing" validate:"required,oneof=monthly yearly"`
}
