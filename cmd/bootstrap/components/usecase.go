package components

import (
	"time"

	"yacht-charter/internal/domain/booking"
	"yacht-charter/internal/domain/pricing"
	"yacht-charter/internal/pkg/clock"
	"yacht-charter/internal/pkg/config"
	"yacht-charter/internal/usecase/commands"
	"yacht-charter/internal/usecase/notify"
	"yacht-charter/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		pricing.NewFirstMatchResolver,
		fx.As(new(pricing.Resolver)),
	),
	func(clk clock.Clock, loc *time.Location, resolver pricing.Resolver) booking.Services {
		return booking.Services{
			Clock:    clk,
			Location: loc,
			Resolver: resolver,
		}
	},
	fx.Annotate(
		notify.NewDispatcherFromConfig,
		fx.As(new(commands.NotificationDispatcher)),
	),
	func(cfg config.Config) commands.BookingConfig {
		return commands.BookingConfig{IdempotencyTTL: cfg.Idempotency.TTL}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewYachtUseCase,
		commands.NewPricingUseCase,
		commands.NewBookingUseCase,
		commands.NewReviewUseCase,
		commands.NewMessageUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewYachtQueries,
		queries.NewPricingQueries,
		queries.NewBookingQueries,
		queries.NewReviewQueries,
		queries.NewMessageQueries,
	),
)
