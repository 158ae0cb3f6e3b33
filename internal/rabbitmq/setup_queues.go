package rabbitmq

// Exchange и маршрутизация уведомлений об окончании пробного периода.
const (
	NotificationsExchange = "notifications"
	TrialQueue            = "notifications.trial"
	TrialRoutingKey       = "trial.expiring"
)

type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: TrialQueue, RoutingKey: TrialRoutingKey},
		// при необходимости дополнительные очереди для других воркеров
	}
}
