package bootstrap

import (
	"context"

	"groundio/internal/infra/mq"
	"groundio/internal/pkg/config"

	"go.uber.org/fx"
)

var MQModule = fx.Module("mq",
	fx.Provide(
		NewPublisher,
	),
)

// NewPublisher does not dial; the first publish opens the connection.
func NewPublisher(lc fx.Lifecycle, cfg config.Config) *mq.Publisher {
	publisher := mq.NewPublisher(cfg.MQ)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher
}
