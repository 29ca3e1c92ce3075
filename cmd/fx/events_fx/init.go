package events_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"wanderwise/internal/services"
	"wanderwise/pkg/config"
	"wanderwise/pkg/mq"
)

var Module = fx.Provide(
	providePublisher, services.NewEventEmitter)

// providePublisher falls back to a logging no-op when no broker is configured
// or the broker cannot be reached at startup.
func providePublisher(lc fx.Lifecycle, cfg config.App, log *zap.Logger) mq.Publisher {
	if cfg.AMQPURL == "" {
		log.Info("AMQP_URL not set, trip events are logged only")
		return mq.NewNoopPublisher(log)
	}

	pub, err := mq.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		log.Warn("rabbitmq unavailable, trip events are logged only", zap.Error(err))
		return mq.NewNoopPublisher(log)
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return pub.Close()
		},
	})
	log.Info("publishing trip events", zap.String("exchange", cfg.AMQPExchange))
	return pub
}
