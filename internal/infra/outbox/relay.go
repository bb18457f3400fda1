package outbox

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"yacht-charter/internal/pkg/clock"
	"yacht-charter/internal/pkg/config"
	"yacht-charter/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRelayNotConfigured = errs.New("outbox: relay missing dependencies")

type Store interface {
	Claim(ctx context.Context, now time.Time, lease time.Duration, limit int32) ([]Job, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	Reschedule(ctx context.Context, id uuid.UUID, runAt time.Time, lastErr string) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastErr string) error
}

type Producer interface {
	Publish(ctx context.Context, topic string, key string, payload []byte, headers map[string]string) error
}

// Relay moves queued notification jobs to the broker.
type Relay struct {
	store       Store
	producer    Producer
	clock       clock.Clock
	interval    time.Duration
	batchSize   int32
	maxAttempts int
	lease       time.Duration
	backoff     []time.Duration
	source      string
}

func NewRelay(store Store, producer Producer, clk clock.Clock, cfg config.OutboxConfig) *Relay {
	return &Relay{
		store:       store,
		producer:    producer,
		clock:       clk,
		interval:    cfg.Interval,
		batchSize:   cfg.BatchSize,
		maxAttempts: int(cfg.MaxAttempts),
		lease:       cfg.Lease,
		backoff:     cfg.Backoff,
		source:      cfg.Source,
	}
}

func (r *Relay) Run(ctx context.Context) error {
	if r.store == nil || r.producer == nil {
		return ErrRelayNotConfigured
	}
	ticker := time.NewTicker(r.tick())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := r.ProcessOnce(ctx); err != nil {
				slog.ErrorContext(ctx, "outbox relay batch failed", "error", err.Error())
			}
		}
	}
}

// ProcessOnce publishes one batch and reports how many jobs were sent.
func (r *Relay) ProcessOnce(ctx context.Context) (int, error) {
	jobs, err := r.store.Claim(ctx, r.clock.Now(), r.leaseFor(), r.limit())
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, job := range jobs {
		if err := r.publish(ctx, job); err != nil {
			if ferr := r.fail(ctx, job, err); ferr != nil {
				return sent, ferr
			}
			continue
		}
		if err := r.store.MarkSent(ctx, job.ID); err != nil {
			return sent, err
		}
		sent++
	}
	return sent, nil
}

func (r *Relay) publish(ctx context.Context, job Job) error {
	payload, headers, err := r.formatPayload(job)
	if err != nil {
		return err
	}
	return r.producer.Publish(ctx, job.Topic, job.RecipientID.String(), payload, headers)
}

func (r *Relay) fail(ctx context.Context, job Job, cause error) error {
	attempts := job.Attempts + 1
	if r.maxAttempts > 0 && attempts >= r.maxAttempts {
		slog.ErrorContext(ctx, "notification job gave up",
			"job_id", job.ID, "event", job.EventName, "attempts", attempts, "error", cause.Error())
		return r.store.MarkFailed(ctx, job.ID, cause.Error())
	}
	slog.WarnContext(ctx, "notification job publish failed",
		"job_id", job.ID, "event", job.EventName, "attempts", attempts, "error", cause.Error())
	return r.store.Reschedule(ctx, job.ID, r.nextRetry(job.Attempts), cause.Error())
}

// formatPayload wraps the job data in a CloudEvents 1.0 envelope.
func (r *Relay) formatPayload(job Job) ([]byte, map[string]string, error) {
	data := map[string]any{}
	if err := json.Unmarshal(job.Payload, &data); err != nil {
		return nil, nil, errs.Wrap(err, "invalid job payload")
	}
	evt := map[string]any{
		"specversion":     "1.0",
		"id":              job.ID.String(),
		"type":            job.EventName + ".v1",
		"source":          r.source,
		"subject":         job.RecipientID.String(),
		"time":            job.OccurredAt.UTC().Format(time.RFC3339Nano),
		"datacontenttype": "application/json",
		"data":            data,
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to encode cloudevent")
	}
	headers := map[string]string{
		"content-type":      "application/cloudevents+json",
		"notification-kind": job.Kind,
	}
	return payload, headers, nil
}

func (r *Relay) nextRetry(attempts int) time.Time {
	now := r.clock.Now()
	if attempts < len(r.backoff) {
		return now.Add(r.backoff[attempts])
	}
	if len(r.backoff) > 0 {
		return now.Add(r.backoff[len(r.backoff)-1])
	}
	return now.Add(5 * time.Second)
}

func (r *Relay) tick() time.Duration {
	if r.interval <= 0 {
		return 500 * time.Millisecond
	}
	return r.interval
}

func (r *Relay) limit() int32 {
	if r.batchSize <= 0 {
		return 50
	}
	return r.batchSize
}

func (r *Relay) leaseFor() time.Duration {
	if r.lease <= 0 {
		return 30 * time.Second
	}
	return r.lease
}
