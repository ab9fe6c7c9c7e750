package components

import (
	"context"
	"log/slog"

	"groundio/internal/infra/mq"
	"groundio/internal/pkg/config"
	"groundio/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewMQConfig,
		NewRelayPublisher,
		worker.NewRelay,
	),
	fx.Invoke(startRelay),
)

func NewMQConfig(cfg config.Config) config.MQConfig {
	return cfg.MQ
}

func NewRelayPublisher(p *mq.Publisher) worker.Publisher {
	return p
}

func startRelay(lc fx.Lifecycle, relay *worker.Relay, cfg config.Config) {
	if !cfg.MQ.RelayEnabled {
		slog.Info("outbox relay disabled")
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start()
			slog.Info("outbox relay started", "interval", cfg.MQ.PollInterval, "batch_size", cfg.MQ.BatchSize)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return relay.Stop(ctx)
		},
	})
}
