// Package services содержит бизнес-логику для работы с подпиской пользователя
// и вычисления состояния пробного периода.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shobhanapappu/groweasytracker/internal/access"
	"github.com/shobhanapappu/groweasytracker/internal/models"
)

// SubscriptionRepository определяет методы для работы с подписками в хранилище.
type SubscriptionRepository interface {
	// GetSubscriptionByUserUID возвращает подписку пользователя или nil, если её нет.
	GetSubscriptionByUserUID(ctx context.Context, userUID string) (*models.Subscription, error)
	// UpgradeSubscription переводит подписку на план premium.
	UpgradeSubscription(ctx context.Context, userUID string) (int, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// SubscriptionService реализует бизнес-логику работы с подпиской, включая кеширование.
type SubscriptionService struct {
	repo  SubscriptionRepository
	cache Cache
	log   *slog.Logger
}

// NewSubscriptionService создает новый экземпляр SubscriptionService.
func NewSubscriptionService(repo SubscriptionRepository, cache Cache, log *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func cacheKey(userUID string) string {
	return fmt.Sprintf("subscription:%s", userUID)
}

// Get возвращает подписку пользователя, используя кеш или репозиторий.
// Отсутствие подписки (nil) не кешируется.
func (s *SubscriptionService) Get(ctx context.Context, userUID string) (*models.Subscription, error) {
	var result *models.Subscription
	key := cacheKey(userUID)
	found, err := s.cache.Get(key, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}
	result, err = s.repo.GetSubscriptionByUserUID(ctx, userUID)
	if err != nil {
		return nil, err
	}

	if result != nil {
		if err := s.cache.Set(key, result, time.Hour); err != nil {
			s.log.Warn("failed to add to cache", slog.String("key", key), slog.Any("err", err))
		}
	}
	return result, nil
}

// View возвращает представление подписки пользователя с производными
// значениями пробного периода. Момент времени читается один раз.
func (s *SubscriptionService) View(ctx context.Context, userUID string) (models.SubscriptionView, error) {
	sub, err := s.Get(ctx, userUID)
	if err != nil {
		return models.SubscriptionView{}, err
	}
	return access.View(sub, time.Now().UTC()), nil
}

// HasPremiumAccess сообщает, доступны ли пользователю premium-функции.
func (s *SubscriptionService) HasPremiumAccess(ctx context.Context, userUID string) (bool, error) {
	sub, err := s.Get(ctx, userUID)
	if err != nil {
		return false, err
	}
	return access.HasPremiumAccess(sub, time.Now().UTC()), nil
}

// Upgrade переводит подписку пользователя на план premium и инвалидирует кеш.
func (s *SubscriptionService) Upgrade(ctx context.Context, userUID string) error {
	count, err := s.repo.UpgradeSubscription(ctx, userUID)
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("subscription not found for user %s", userUID)
	}

	key := cacheKey(userUID)
	if err := s.cache.Invalidate(key); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", key), slog.Any("err", err))
	}
	s.log.Info("subscription upgraded to premium", slog.String("user_uid", userUID))
	return nil
}
