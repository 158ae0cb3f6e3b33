package paymentprovider

// CreateOrderRequest представляет запрос на создание заказа в Razorpay.
// Сумма указывается в минимальных единицах валюты (пайсах).
type CreateOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt,omitempty"`
	Notes    map[string]string `json:"notes,omitempty"` // дополнительная инфа: user_uid, billing
}

// CreateOrderResponse представляет ответ Razorpay на создание заказа.
type CreateOrderResponse struct {
	ID        string `json:"id"`     // ID заказа в Razorpay
	Entity    string `json:"entity"` // всегда "order"
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Receipt   string `json:"receipt"`
	Status    string `json:"status"`     // created, attempted, paid
	CreatedAt int64  `json:"created_at"` // unix-время
}
