package worker

import (
	"context"
	"log/slog"
	"time"

	"yacht-charter/internal/pkg/errs"
)

// ExpiredKeyPurger deletes idempotency records past their expiry.
type ExpiredKeyPurger interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// Janitor periodically purges expired idempotency keys so the table does not
// grow without bound.
type Janitor struct {
	purger   ExpiredKeyPurger
	interval time.Duration
}

var ErrJanitorNotConfigured = errs.New("janitor: missing purger")

func NewJanitor(purger ExpiredKeyPurger, interval time.Duration) *Janitor {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Janitor{purger: purger, interval: interval}
}

func (j *Janitor) Run(ctx context.Context) error {
	if j.purger == nil {
		return ErrJanitorNotConfigured
	}
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := j.SweepOnce(ctx); err != nil {
				slog.ErrorContext(ctx, "idempotency sweep failed", "error", err.Error())
			}
		}
	}
}

func (j *Janitor) SweepOnce(ctx context.Context) (int64, error) {
	n, err := j.purger.DeleteExpired(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slog.InfoContext(ctx, "expired idempotency keys purged", "count", n)
	}
	return n, nil
}
