package bootstrap

import (
	"context"
	"log/slog"

	"groundio/internal/infra/db"
	"groundio/internal/pkg/config"
	"groundio/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, errs.Wrapf(err, "connect postgres %s:%s/%s", cfg.DB.Host, cfg.DB.Port, cfg.DB.DBName)
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("database pool ready",
				"host", cfg.DB.Host,
				"database", cfg.DB.DBName,
				"max_conns", pool.Stat().MaxConns(),
				"timezone", cfg.DB.TimeZone)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return pool, nil
}
