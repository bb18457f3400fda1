package components

import (
	"context"

	"yacht-charter/internal/infra/broker/kafka"
	"yacht-charter/internal/infra/outbox"
	"yacht-charter/internal/infra/repository"
	"yacht-charter/internal/pkg/clock"
	"yacht-charter/internal/pkg/config"
	"yacht-charter/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		clock.NewRealClock,
		NewKafkaProducer,
		func(store *outbox.PgStore, producer *kafka.Producer, clk clock.Clock, cfg config.Config) *outbox.Relay {
			return outbox.NewRelay(store, producer, clk, cfg.Outbox)
		},
		func(repo *repository.IdempotencyRepository, cfg config.Config) *worker.Janitor {
			return worker.NewJanitor(repo, cfg.Idempotency.SweepInterval)
		},
	),
	fx.Invoke(startWorkers),
)

func NewKafkaProducer(lc fx.Lifecycle, cfg config.Config) (*kafka.Producer, error) {
	p, err := kafka.NewProducer(cfg.Kafka.Brokers, kafka.NewSaramaConfig(cfg.Kafka))
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p, nil
}

func startWorkers(lc fx.Lifecycle, relay *outbox.Relay, janitor *worker.Janitor) {
	g := worker.NewGroup()
	g.Add("outbox-relay", relay)
	g.Add("idempotency-janitor", janitor)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			g.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return g.Stop(ctx)
		},
	})
}
