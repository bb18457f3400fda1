package components

import (
	"yacht-charter/internal/handler"
	"yacht-charter/internal/handler/api"
	"yacht-charter/internal/handler/middleware"
	"yacht-charter/internal/pkg/jwt"
	"yacht-charter/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		fx.Annotate(
			func(s *jwt.Service) *jwt.Service { return s },
			fx.As(new(middleware.TokenValidator)),
		),
		fx.Annotate(
			func(q queries.UserQueries) queries.UserQueries { return q },
			fx.As(new(middleware.UserLookup)),
		),
		middleware.NewAuthMiddleware,
		api.NewYachtHandler,
		api.NewPricingHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		api.NewUserHandler,
		api.NewMessageHandler,
	),
	fx.Invoke(handler.NewRouter),
)
