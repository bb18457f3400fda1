package readstore

import (
	"context"

	"yacht-charter/internal/domain/review"
	"yacht-charter/internal/infra"
	"yacht-charter/internal/infra/pgquery"
	"yacht-charter/internal/infra/repository/converter"
	"yacht-charter/internal/pkg/pgconv"
	"yacht-charter/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewViewQueries interface {
	GetReview(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Review, error)
	GetReviewForUpdate(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Review, error)
	ReviewExistsForBooking(ctx context.Context, db pgquery.DBTX, bookingID uuid.UUID) (bool, error)
	GetReviewView(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.ReviewViewRow, error)
	ListReviewsByYacht(ctx context.Context, db pgquery.DBTX, arg pgquery.ListReviewsByYachtParams) ([]pgquery.ReviewViewRow, error)
	GetYachtRatingStats(ctx context.Context, db pgquery.DBTX, yachtID uuid.UUID) (pgquery.YachtRatingStat, error)
}

type ReviewReadStore struct {
	queries ReviewViewQueries
	db      pgquery.DBTX
}

func NewReviewReadStore(queries ReviewViewQueries, db pgquery.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	row, err := r.queries.GetReviewView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review view by id", err)
	}
	return toReviewView(row), nil
}

func (r *ReviewReadStore) ListByYacht(ctx context.Context, p queries.ReviewListParams) ([]*queries.ReviewView, error) {
	params := pgquery.ListReviewsByYachtParams{
		YachtID:   p.YachtID,
		MinRating: toPgInt4(p.MinRating),
		MaxRating: toPgInt4(p.MaxRating),
		Limit:     p.Limit,
	}
	if p.After != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(p.After.CreatedAt)
		params.AfterID = pgconv.UUIDToPgtype(p.After.ID)
	}

	rows, err := r.queries.ListReviewsByYacht(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by yacht", err)
	}
	result := make([]*queries.ReviewView, len(rows))
	for i, row := range rows {
		result[i] = toReviewView(row)
	}
	return result, nil
}

func (r *ReviewReadStore) GetYachtRatingStats(ctx context.Context, yachtID uuid.UUID) (*queries.YachtRatingStats, error) {
	row, err := r.queries.GetYachtRatingStats(ctx, r.db, yachtID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			// return zero stats if not initialized yet
			return &queries.YachtRatingStats{YachtID: yachtID}, nil
		}
		return nil, infra.WrapRepoErr("failed to get yacht rating stats", err)
	}
	avg, err := pgconv.Float64FromNumeric(row.AverageRating)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid average rating", err)
	}
	return &queries.YachtRatingStats{
		YachtID:       row.YachtID,
		TotalReviews:  row.TotalReviews,
		AverageRating: avg,
		Rating1Count:  row.Rating1Count,
		Rating2Count:  row.Rating2Count,
		Rating3Count:  row.Rating3Count,
		Rating4Count:  row.Rating4Count,
		Rating5Count:  row.Rating5Count,
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *ReviewReadStore) Load(ctx context.Context, id uuid.UUID, forUpdate bool) (*review.Review, error) {
	get := r.queries.GetReview
	if forUpdate {
		get = r.queries.GetReviewForUpdate
	}
	row, err := get(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load review", err)
	}
	return converter.ReviewFromRow(row), nil
}

func (r *ReviewReadStore) ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	exists, err := r.queries.ReviewExistsForBooking(ctx, r.db, bookingID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check review existence", err)
	}
	return exists, nil
}

func toReviewView(row pgquery.ReviewViewRow) *queries.ReviewView {
	return &queries.ReviewView{
		ID:           row.ID,
		BookingID:    row.BookingID,
		YachtID:      row.YachtID,
		YachtTitle:   row.YachtTitle,
		ReviewerID:   row.ReviewerID,
		ReviewerName: row.ReviewerName,
		Rating:       int(row.Rating),
		Comment:      pgconv.StringFromPgtype(row.Comment),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
