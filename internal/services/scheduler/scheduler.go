// Package services содержит планировщик напоминаний: периодически ищет
// пользователей, чей пробный период заканчивается завтра, и публикует
// уведомления в очередь брокера.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/shobhanapappu/groweasytracker/internal/lib/sl"
	"github.com/shobhanapappu/groweasytracker/internal/models"
	"github.com/shobhanapappu/groweasytracker/internal/rabbitmq"
)

// TrialRepository возвращает пользователей с истекающим пробным периодом.
type TrialRepository interface {
	FindTrialsEndingOn(ctx context.Context, day time.Time) ([]*models.TrialNotice, error)
}

// SchedulerService периодически публикует уведомления об окончании
// пробного периода.
type SchedulerService struct {
	repo TrialRepository
	log  *slog.Logger
	tick time.Duration
}

// NewSchedulerService создает новый экземпляр SchedulerService.
func NewSchedulerService(repo TrialRepository, log *slog.Logger, tick time.Duration) *SchedulerService {
	return &SchedulerService{
		repo: repo,
		log:  log,
		tick: tick,
	}
}

// NotifyExpiringTrials запускает цикл поиска и публикации уведомлений.
// Первый проход выполняется сразу, далее по тикеру до отмены контекста.
func (s *SchedulerService) NotifyExpiringTrials(ctx context.Context, channel *amqp.Channel) {
	s.runNotifyExpiringTrials(ctx, channel)

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runNotifyExpiringTrials(ctx, channel)
		}
	}
}

func (s *SchedulerService) runNotifyExpiringTrials(ctx context.Context, channel *amqp.Channel) {
	s.log.Info("starting service to find trials ending tomorrow")
	tomorrow := time.Now().UTC().AddDate(0, 0, 1)
	notices, err := s.repo.FindTrialsEndingOn(ctx, tomorrow)
	if err != nil {
		s.log.Error("failed to find expiring trials", sl.Err(err))
		return
	}
	if len(notices) == 0 {
		s.log.Info("no expiring trials found")
		return
	}
	s.log.Info("found expiring trials", "count", len(notices))
	for _, notice := range notices {
		err = rabbitmq.PublishMessage(channel, rabbitmq.NotificationsExchange, rabbitmq.TrialRoutingKey, notice)
		if err != nil {
			s.log.Error("failed to publish message", sl.Err(err))
		}
	}
}
