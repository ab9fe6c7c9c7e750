package components

import (
	"groundio/internal/infra/cache"
	"groundio/internal/infra/catalog"
	"groundio/internal/infra/stream"
	"groundio/internal/pkg/config"
	"groundio/internal/usecase/queries"
	"groundio/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var AdapterModule = fx.Module("adapter",
	fx.Provide(
		fx.Annotate(
			NewVenueCache,
			fx.As(new(queries.VenueCache)),
			fx.As(new(shared.VenueCacheInvalidator)),
		),
		fx.Annotate(
			stream.NewFeed,
			fx.As(new(shared.LivePublisher)),
			fx.As(new(shared.LiveSubscriber)),
		),
		fx.Annotate(
			catalog.Load,
			fx.As(new(queries.VenueFallback)),
		),
	),
)

func NewVenueCache(client *redis.Client, cfg config.Config) *cache.VenueCache {
	return cache.NewVenueCache(client, cfg.Redis.VenueCacheTTL)
}
