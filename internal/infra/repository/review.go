package repository

import (
	"context"

	"yacht-charter/internal/domain/review"
	"yacht-charter/internal/infra"
	"yacht-charter/internal/infra/pgquery"
	"yacht-charter/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateReviewParams) error
	UpdateReview(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateReviewParams) (int64, error)
	DeleteReview(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (int64, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
	db      pgquery.DBTX
}

func NewReviewRepository(queries ReviewWriteQueries, db pgquery.DBTX) *ReviewRepository {
	return &ReviewRepository{
		queries: queries,
		db:      db,
	}
}

// Create relies on the unique booking_id index: a second review for the
// same booking surfaces as DUPLICATE_KEY.
func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) error {
	if err := r.queries.CreateReview(ctx, r.db, converter.ReviewToCreateParams(rev)); err != nil {
		return infra.WrapRepoErr("failed to create review", err)
	}
	return nil
}

func (r *ReviewRepository) Update(ctx context.Context, rev *review.Review) error {
	n, err := r.queries.UpdateReview(ctx, r.db, converter.ReviewToUpdateParams(rev))
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, reviewID uuid.UUID) error {
	n, err := r.queries.DeleteReview(ctx, r.db, reviewID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}
