package components

import (
	"yacht-charter/internal/infra/outbox"
	"yacht-charter/internal/infra/pgquery"
	"yacht-charter/internal/infra/readstore"
	"yacht-charter/internal/infra/repository"
	"yacht-charter/internal/infra/uow"
	"yacht-charter/internal/usecase/queries"
	"yacht-charter/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	fx.Annotate(
		NewSQLQueries,
		fx.As(new(readstore.YachtReadQueries)),
		fx.As(new(readstore.BookingReadQueries)),
		fx.As(new(readstore.PricingReadQueries)),
		fx.As(new(readstore.ReviewViewQueries)),
		fx.As(new(readstore.UserReadQueries)),
		fx.As(new(readstore.MessageViewQueries)),
		fx.As(new(repository.IdempotencyWriteQueries)),
		fx.As(new(outbox.JobQueries)),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Yacht
		fx.Annotate(
			readstore.NewYachtReadStore,
			fx.As(new(queries.YachtReadStore)),
		),
		// Booking
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(queries.CalendarReadStore)),
		),
		// Pricing
		fx.Annotate(
			readstore.NewPricingReadStore,
			fx.As(new(queries.PricingReadStore)),
		),
		// Review
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Messaging
		fx.Annotate(
			readstore.NewMessageReadStore,
			fx.As(new(queries.MessageReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork owns the transactional repositories
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Pool-bound stores used outside request transactions
		repository.NewIdempotencyRepository,
		outbox.NewPgStore,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgquery.Queries {
	return pgquery.New()
}

func NewDBTX(pool *pgxpool.Pool) pgquery.DBTX {
	return pool
}
