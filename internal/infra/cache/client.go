package cache

import (
	"context"
	"log/slog"
	"time"

	"groundio/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// Connect returns a client even when the first ping fails; callers treat
// Redis as optional and log per-operation errors.
func Connect(cfg config.RedisConfig) (*redis.Client, func()) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable at startup", "addr", cfg.Addr, "error", err.Error())
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}
	return client, cleanup
}
