package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createNotificationJob = `
INSERT INTO notification_jobs (kind, topic, event_name, aggregate_id, recipient_id, payload, occurred_at, run_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

type CreateNotificationJobParams struct {
	Kind        string
	Topic       string
	EventName   string
	AggregateID string
	RecipientID uuid.UUID
	Payload     []byte
	OccurredAt  pgtype.Timestamptz
	RunAt       pgtype.Timestamptz
}

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob,
		arg.Kind, arg.Topic, arg.EventName, arg.AggregateID, arg.RecipientID, arg.Payload, arg.OccurredAt, arg.RunAt,
	)
	return err
}

// Claiming pushes run_at to the lease deadline, so a relay that dies mid
// batch leaves its jobs to be picked up again once the lease runs out.
const claimDueNotificationJobs = `
UPDATE notification_jobs j
SET run_at = $2, updated_at = now()
FROM (
    SELECT id
    FROM notification_jobs
    WHERE status = 'queued' AND run_at <= $1
    ORDER BY run_at, id
    LIMIT $3
    FOR UPDATE SKIP LOCKED
) due
WHERE j.id = due.id
RETURNING j.id, j.kind, j.topic, j.event_name, j.aggregate_id, j.recipient_id, j.payload, j.occurred_at,
          j.run_at, j.attempts, j.status, j.last_error, j.created_at, j.updated_at`

type ClaimDueNotificationJobsParams struct {
	Now        pgtype.Timestamptz
	LeaseUntil pgtype.Timestamptz
	Limit      int32
}

func (q *Queries) ClaimDueNotificationJobs(ctx context.Context, db DBTX, arg ClaimDueNotificationJobsParams) ([]NotificationJob, error) {
	rows, err := db.Query(ctx, claimDueNotificationJobs, arg.Now, arg.LeaseUntil, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row scanner) (NotificationJob, error) {
		var j NotificationJob
		err := row.Scan(
			&j.ID, &j.Kind, &j.Topic, &j.EventName, &j.AggregateID, &j.RecipientID, &j.Payload,
			&j.OccurredAt, &j.RunAt, &j.Attempts, &j.Status, &j.LastError, &j.CreatedAt, &j.UpdatedAt,
		)
		return j, err
	})
}

const markNotificationJobSent = `
UPDATE notification_jobs
SET status = 'sent', attempts = attempts + 1, last_error = NULL, updated_at = now()
WHERE id = $1`

func (q *Queries) MarkNotificationJobSent(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, markNotificationJobSent, id)
	return err
}

const rescheduleNotificationJob = `
UPDATE notification_jobs
SET attempts = attempts + 1, run_at = $2, last_error = $3, updated_at = now()
WHERE id = $1`

type RescheduleNotificationJobParams struct {
	ID        uuid.UUID
	RunAt     pgtype.Timestamptz
	LastError pgtype.Text
}

func (q *Queries) RescheduleNotificationJob(ctx context.Context, db DBTX, arg RescheduleNotificationJobParams) error {
	_, err := db.Exec(ctx, rescheduleNotificationJob, arg.ID, arg.RunAt, arg.LastError)
	return err
}

const failNotificationJob = `
UPDATE notification_jobs
SET status = 'failed', attempts = attempts + 1, last_error = $2, updated_at = now()
WHERE id = $1`

type FailNotificationJobParams struct {
	ID        uuid.UUID
	LastError pgtype.Text
}

func (q *Queries) FailNotificationJob(ctx context.Context, db DBTX, arg FailNotificationJobParams) error {
	_, err := db.Exec(ctx, failNotificationJob, arg.ID, arg.LastError)
	return err
}
