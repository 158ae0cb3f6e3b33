// Package scheduler собирает приложение планировщика напоминаний.
package scheduler

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/shobhanapappu/groweasytracker/internal/config"
	"github.com/shobhanapappu/groweasytracker/internal/rabbitmq"
	schedulerservice "github.com/shobhanapappu/groweasytracker/internal/services/scheduler"
	"github.com/shobhanapappu/groweasytracker/internal/storage/repository"
)

type App struct {
	conn             *amqp.Connection
	ch               *amqp.Channel
	schedulerService *schedulerservice.SchedulerService
	logger           *slog.Logger
}

func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.Retries, cfg.RabbitMQ.RetryDelay)
	if err != nil {
		return nil, err
	}

	queues := rabbitmq.GetNotificationQueues()
	ch, err := rabbitmq.SetupChannel(conn, queues)
	if err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			logger.Error("failed to close RabbitMQ connection", slog.Any("err", closeErr))
		}
		return nil, err
	}

	schedulerService := schedulerservice.NewSchedulerService(db, logger, cfg.RabbitMQ.TickInterval)

	return &App{
		conn:             conn,
		ch:               ch,
		schedulerService: schedulerService,
		logger:           logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info("notification scheduler started")
	a.schedulerService.NotifyExpiringTrials(ctx, a.ch)

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close RabbitMQ channel", slog.Any("err", err))
	}
	return a.conn.Close()
}
