package repository

import (
	"context"

	"yacht-charter/internal/infra"
	"yacht-charter/internal/infra/pgquery"
	"yacht-charter/internal/pkg/pgconv"
	"yacht-charter/internal/usecase/shared"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateNotificationJobParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      pgquery.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db pgquery.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, job shared.NotificationJob) error {
	params := pgquery.CreateNotificationJobParams{
		Kind:        job.Kind,
		Topic:       job.Topic,
		EventName:   job.EventName,
		AggregateID: job.AggregateID,
		RecipientID: job.RecipientID,
		Payload:     job.Payload,
		OccurredAt:  pgconv.TimeToPgtype(job.OccurredAt),
		RunAt:       pgconv.TimeToPgtype(job.RunAt),
	}

	if err := r.queries.CreateNotificationJob(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}
