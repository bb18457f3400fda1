//go:build unit

package outbox_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"yacht-charter/internal/infra/outbox"
	"yacht-charter/internal/pkg/clock"
	"yacht-charter/internal/pkg/config"
	"yacht-charter/internal/pkg/errs"
	outboxmock "yacht-charter/tests/mock/outbox"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func relayConfig() config.OutboxConfig {
	return config.OutboxConfig{
		BatchSize:   20,
		MaxAttempts: 3,
		Backoff:     []time.Duration{time.Second, time.Minute},
		Source:      "app://yacht-charter-test",
		Lease:       15 * time.Second,
	}
}

func sampleJob(attempts int) outbox.Job {
	return outbox.Job{
		ID:          uuid.New(),
		Kind:        "notify_owner_of_new_booking",
		Topic:       "notifications.v1",
		EventName:   "booking.created",
		AggregateID: uuid.NewString(),
		RecipientID: uuid.New(),
		Payload:     []byte(`{"event":"booking.created","total_price":"4000.00"}`),
		OccurredAt:  now.Add(-time.Minute),
		Attempts:    attempts,
	}
}

func TestRelay_ProcessOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes a CloudEvents envelope and marks the job sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := outboxmock.NewMockStore(ctrl)
		producer := outboxmock.NewMockProducer(ctrl)
		relay := outbox.NewRelay(store, producer, clock.NewMockClock(now), relayConfig())

		job := sampleJob(0)
		store.EXPECT().Claim(ctx, now, 15*time.Second, int32(20)).Return([]outbox.Job{job}, nil)
		producer.EXPECT().Publish(ctx, job.Topic, job.RecipientID.String(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, payload []byte, headers map[string]string) error {
				var evt map[string]any
				require.NoError(t, json.Unmarshal(payload, &evt))
				assert.Equal(t, "1.0", evt["specversion"])
				assert.Equal(t, job.ID.String(), evt["id"])
				assert.Equal(t, "booking.created.v1", evt["type"])
				assert.Equal(t, "app://yacht-charter-test", evt["source"])
				assert.Equal(t, job.RecipientID.String(), evt["subject"])
				assert.Equal(t, map[string]any{"event": "booking.created", "total_price": "4000.00"}, evt["data"])
				assert.Equal(t, "application/cloudevents+json", headers["content-type"])
				assert.Equal(t, job.Kind, headers["notification-kind"])
				return nil
			})
		store.EXPECT().MarkSent(ctx, job.ID).Return(nil)

		sent, err := relay.ProcessOnce(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("failed publish is rescheduled with backoff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := outboxmock.NewMockStore(ctrl)
		producer := outboxmock.NewMockProducer(ctrl)
		relay := outbox.NewRelay(store, producer, clock.NewMockClock(now), relayConfig())

		job := sampleJob(1)
		store.EXPECT().Claim(ctx, now, gomock.Any(), gomock.Any()).Return([]outbox.Job{job}, nil)
		producer.EXPECT().Publish(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errs.New("broker unavailable"))
		store.EXPECT().Reschedule(ctx, job.ID, now.Add(time.Minute), gomock.Any()).Return(nil)

		sent, err := relay.ProcessOnce(ctx)

		require.NoError(t, err)
		assert.Equal(t, 0, sent)
	})

	t.Run("last attempt marks the job failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := outboxmock.NewMockStore(ctrl)
		producer := outboxmock.NewMockProducer(ctrl)
		relay := outbox.NewRelay(store, producer, clock.NewMockClock(now), relayConfig())

		job := sampleJob(2)
		store.EXPECT().Claim(ctx, now, gomock.Any(), gomock.Any()).Return([]outbox.Job{job}, nil)
		producer.EXPECT().Publish(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errs.New("broker unavailable"))
		store.EXPECT().MarkFailed(ctx, job.ID, gomock.Any()).Return(nil)

		_, err := relay.ProcessOnce(ctx)
		require.NoError(t, err)
	})

	t.Run("corrupt payload never reaches the broker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := outboxmock.NewMockStore(ctrl)
		producer := outboxmock.NewMockProducer(ctrl)
		relay := outbox.NewRelay(store, producer, clock.NewMockClock(now), relayConfig())

		job := sampleJob(0)
		job.Payload = []byte("not json")
		store.EXPECT().Claim(ctx, now, gomock.Any(), gomock.Any()).Return([]outbox.Job{job}, nil)
		store.EXPECT().Reschedule(ctx, job.ID, now.Add(time.Second), gomock.Any()).Return(nil)

		_, err := relay.ProcessOnce(ctx)
		require.NoError(t, err)
	})

	t.Run("claim failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := outboxmock.NewMockStore(ctrl)
		relay := outbox.NewRelay(store, outboxmock.NewMockProducer(ctrl), clock.NewMockClock(now), relayConfig())

		store.EXPECT().Claim(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errs.New("connection refused"))

		_, err := relay.ProcessOnce(ctx)
		assert.Error(t, err)
	})
}

func TestRelay_Run(t *testing.T) {
	t.Run("missing producer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		relay := outbox.NewRelay(outboxmock.NewMockStore(ctrl), nil, clock.NewMockClock(now), relayConfig())

		err := relay.Run(context.Background())
		assert.ErrorIs(t, err, outbox.ErrRelayNotConfigured)
	})

	t.Run("stops with the context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := outboxmock.NewMockStore(ctrl)
		store.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		cfg := relayConfig()
		cfg.Interval = 5 * time.Millisecond
		relay := outbox.NewRelay(store, outboxmock.NewMockProducer(ctrl), clock.NewMockClock(now), cfg)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()

		err := relay.Run(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
