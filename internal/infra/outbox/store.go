package outbox

import (
	"context"
	"time"

	"yacht-charter/internal/infra"
	"yacht-charter/internal/infra/pgquery"
	"yacht-charter/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// Job is a claimed notification row.
type Job struct {
	ID          uuid.UUID
	Kind        string
	Topic       string
	EventName   string
	AggregateID string
	RecipientID uuid.UUID
	Payload     []byte
	OccurredAt  time.Time
	Attempts    int
}

type JobQueries interface {
	ClaimDueNotificationJobs(ctx context.Context, db pgquery.DBTX, arg pgquery.ClaimDueNotificationJobsParams) ([]pgquery.NotificationJob, error)
	MarkNotificationJobSent(ctx context.Context, db pgquery.DBTX, id uuid.UUID) error
	RescheduleNotificationJob(ctx context.Context, db pgquery.DBTX, arg pgquery.RescheduleNotificationJobParams) error
	FailNotificationJob(ctx context.Context, db pgquery.DBTX, arg pgquery.FailNotificationJobParams) error
}

type PgStore struct {
	queries JobQueries
	db      pgquery.DBTX
}

func NewPgStore(queries JobQueries, db pgquery.DBTX) *PgStore {
	return &PgStore{queries: queries, db: db}
}

func (s *PgStore) Claim(ctx context.Context, now time.Time, lease time.Duration, limit int32) ([]Job, error) {
	rows, err := s.queries.ClaimDueNotificationJobs(ctx, s.db, pgquery.ClaimDueNotificationJobsParams{
		Now:        pgconv.TimeToPgtype(now),
		LeaseUntil: pgconv.TimeToPgtype(now.Add(lease)),
		Limit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	jobs := make([]Job, len(rows))
	for i, row := range rows {
		jobs[i] = Job{
			ID:          row.ID,
			Kind:        row.Kind,
			Topic:       row.Topic,
			EventName:   row.EventName,
			AggregateID: row.AggregateID,
			RecipientID: row.RecipientID,
			Payload:     row.Payload,
			OccurredAt:  pgconv.TimeFromPgtype(row.OccurredAt),
			Attempts:    int(row.Attempts),
		}
	}
	return jobs, nil
}

func (s *PgStore) MarkSent(ctx context.Context, id uuid.UUID) error {
	if err := s.queries.MarkNotificationJobSent(ctx, s.db, id); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

func (s *PgStore) Reschedule(ctx context.Context, id uuid.UUID, runAt time.Time, lastErr string) error {
	err := s.queries.RescheduleNotificationJob(ctx, s.db, pgquery.RescheduleNotificationJobParams{
		ID:        id,
		RunAt:     pgconv.TimeToPgtype(runAt),
		LastError: pgconv.StringToPgtype(lastErr),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to reschedule notification job", err)
	}
	return nil
}

func (s *PgStore) MarkFailed(ctx context.Context, id uuid.UUID, lastErr string) error {
	err := s.queries.FailNotificationJob(ctx, s.db, pgquery.FailNotificationJobParams{
		ID:        id,
		LastError: pgconv.StringToPgtype(lastErr),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}
