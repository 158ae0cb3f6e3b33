// Package sender собирает приложение воркера почтовых уведомлений.
package sender

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/shobhanapappu/groweasytracker/internal/config"
	"github.com/shobhanapappu/groweasytracker/internal/lib/smtp"
	"github.com/shobhanapappu/groweasytracker/internal/rabbitmq"
	senderservice "github.com/shobhanapappu/groweasytracker/internal/services/sender"
)

type App struct {
	conn          *amqp.Connection
	ch            *amqp.Channel
	senderService *senderservice.SenderService
	logger        *slog.Logger
}

func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
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

	transport := smtp.NewTransport(cfg, logger)
	senderService := senderservice.NewSenderService(logger, transport)

	return &App{
		conn:          conn,
		ch:            ch,
		senderService: senderService,
		logger:        logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	err := rabbitmq.ConsumerMessage(ctx, a.ch, rabbitmq.TrialQueue, a.senderService.SendTrialEndingNotice)
	if err != nil {
		a.logger.Error("failed to start trial notifications consumer", slog.Any("err", err))
		return err
	}

	a.logger.Info("notification sender started", slog.String("queue", rabbitmq.TrialQueue))
	<-ctx.Done()

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close RabbitMQ channel", slog.Any("err", err))
	}
	return a.conn.Close()
}
