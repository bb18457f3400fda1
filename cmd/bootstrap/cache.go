package bootstrap

import (
	"context"
	"log/slog"

	"yacht-charter/internal/infra/cache"
	"yacht-charter/internal/pkg/config"
	"yacht-charter/internal/usecase/commands"
	"yacht-charter/internal/usecase/queries"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCalendarCache,
	),
)

type CalendarCacheResult struct {
	fx.Out

	Reader      queries.CalendarCache
	Invalidator commands.CalendarInvalidator
}

// NewCalendarCache returns nil ports when Redis is disabled so callers skip
// caching entirely.
func NewCalendarCache(lc fx.Lifecycle, cfg config.Config) CalendarCacheResult {
	if !cfg.Redis.Enabled {
		slog.Info("calendar cache disabled")
		return CalendarCacheResult{}
	}

	c := cache.NewRedisCache(cfg.Redis)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := c.Ping(ctx); err != nil {
				// reads fall through to postgres on cache errors
				slog.Warn("redis unreachable, calendar cache will miss", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return c.Close()
		},
	})
	return CalendarCacheResult{Reader: c, Invalidator: c}
}
