package repository

import (
	"context"

	"yacht-charter/internal/infra"
	"yacht-charter/internal/infra/pgquery"

	"github.com/google/uuid"
)

type RatingStatsWriteQueries interface {
	RecalcYachtRatingStats(ctx context.Context, db pgquery.DBTX, yachtID uuid.UUID) error
}

type RatingStatsRepository struct {
	q  RatingStatsWriteQueries
	db pgquery.DBTX
}

func NewRatingStatsRepository(q RatingStatsWriteQueries, db pgquery.DBTX) *RatingStatsRepository {
	return &RatingStatsRepository{q: q, db: db}
}

func (r *RatingStatsRepository) RecalcYachtRatingStats(ctx context.Context, yachtID uuid.UUID) error {
	if err := r.q.RecalcYachtRatingStats(ctx, r.db, yachtID); err != nil {
		return infra.WrapRepoErr("failed to recalculate yacht rating stats", err)
	}
	return nil
}
