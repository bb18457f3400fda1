package bootstrap

import (
	"context"
	"log/slog"

	"yacht-charter/internal/infra/db"
	"yacht-charter/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, closePool, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			stat := pool.Stat()
			slog.Info("database pool ready",
				"host", cfg.DB.Host,
				"db", cfg.DB.DBName,
				"max_conns", stat.MaxConns())
			return nil
		},
		OnStop: func(_ context.Context) error {
			closePool()
			return nil
		},
	})

	return pool, nil
}
