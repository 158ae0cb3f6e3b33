package middlewarectx

import (
	"context"

	"github.com/shobhanapappu/groweasytracker/internal/models"
)

// Service описывает интерфейс сервиса для валидации JWT токена.
type Service interface {
	ValidateToken(ctx context.Context, token string) (*models.User, string, bool, error)
}

// SubscriptionServiceInterface определяет интерфейс для проверки premium-доступа.
type SubscriptionServiceInterface interface {
	HasPremiumAccess(ctx context.Context, userUID string) (bool, error)
}
