package queries

import (
	"context"
	"time"

	"yacht-charter/internal/domain/review"
	"yacht-charter/internal/infra"

	"github.com/google/uuid"
)

type ReviewFilters struct {
	MinRating *int
	MaxRating *int
}

type ReviewListParams struct {
	YachtID uuid.UUID
	ReviewFilters
	After *Keyset
	Limit int32
}

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListByYacht(ctx context.Context, params ReviewListParams) ([]*ReviewView, error)
	GetYachtRatingStats(ctx context.Context, yachtID uuid.UUID) (*YachtRatingStats, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListByYacht(ctx context.Context, yachtID uuid.UUID, filters ReviewFilters, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error)
	GetYachtRatingStats(ctx context.Context, yachtID uuid.UUID) (*YachtRatingStats, error)
}

type reviewQueriesImpl struct {
	repo ReviewReadStore
}

func NewReviewQueries(repo ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	rv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, review.ErrReviewNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (q *reviewQueriesImpl) ListByYacht(ctx context.Context, yachtID uuid.UUID, filters ReviewFilters, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error) {
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)
	rows, err := q.repo.ListByYacht(ctx, ReviewListParams{
		YachtID:       yachtID,
		ReviewFilters: filters,
		After:         after,
		Limit:         int32(limit + 1), // #nosec G115 -- bounded by MaxListLimit
	})
	if err != nil {
		return nil, nil, err
	}
	items, next := page(rows, limit, func(v *ReviewView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
	return items, next, nil
}

func (q *reviewQueriesImpl) GetYachtRatingStats(ctx context.Context, yachtID uuid.UUID) (*YachtRatingStats, error) {
	return q.repo.GetYachtRatingStats(ctx, yachtID)
}
