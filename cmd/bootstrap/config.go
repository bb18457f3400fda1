package bootstrap

import (
	"time"

	"yacht-charter/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		ServerLocation,
	),
)

// ServerLocation is the zone "today" is evaluated in.
func ServerLocation(cfg config.Config) *time.Location {
	return cfg.App.Location()
}
