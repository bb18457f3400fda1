package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reviewColumns = `r.id, r.booking_id, r.rating, r.comment, r.created_at, r.updated_at`

func reviewDest(r *Review) []any {
	return []any{&r.ID, &r.BookingID, &r.Rating, &r.Comment, &r.CreatedAt, &r.UpdatedAt}
}

func scanReview(row scanner) (Review, error) {
	var r Review
	err := row.Scan(reviewDest(&r)...)
	return r, err
}

const getReview = `SELECT ` + reviewColumns + ` FROM reviews r WHERE r.id = $1`

func (q *Queries) GetReview(ctx context.Context, db DBTX, id uuid.UUID) (Review, error) {
	return scanReview(db.QueryRow(ctx, getReview, id))
}

const getReviewForUpdate = getReview + ` FOR UPDATE`

func (q *Queries) GetReviewForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Review, error) {
	return scanReview(db.QueryRow(ctx, getReviewForUpdate, id))
}

const reviewExistsForBooking = `SELECT EXISTS (SELECT 1 FROM reviews WHERE booking_id = $1)`

func (q *Queries) ReviewExistsForBooking(ctx context.Context, db DBTX, bookingID uuid.UUID) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, reviewExistsForBooking, bookingID).Scan(&exists)
	return exists, err
}

const createReview = `
INSERT INTO reviews (id, booking_id, rating, comment, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`

type CreateReviewParams struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	Rating    int16
	Comment   pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) CreateReview(ctx context.Context, db DBTX, arg CreateReviewParams) error {
	_, err := db.Exec(ctx, createReview, arg.ID, arg.BookingID, arg.Rating, arg.Comment, arg.CreatedAt, arg.UpdatedAt)
	return err
}

const updateReview = `UPDATE reviews SET rating = $2, comment = $3, updated_at = $4 WHERE id = $1`

type UpdateReviewParams struct {
	ID        uuid.UUID
	Rating    int16
	Comment   pgtype.Text
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateReview(ctx context.Context, db DBTX, arg UpdateReviewParams) (int64, error) {
	tag, err := db.Exec(ctx, updateReview, arg.ID, arg.Rating, arg.Comment, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteReview = `DELETE FROM reviews WHERE id = $1`

func (q *Queries) DeleteReview(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteReview, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ReviewViewRow adds the booking, yacht and reviewer context of a review.
type ReviewViewRow struct {
	Review
	YachtID      uuid.UUID
	YachtTitle   string
	ReviewerID   uuid.UUID
	ReviewerName string
}

func scanReviewViewRow(row scanner) (ReviewViewRow, error) {
	var r ReviewViewRow
	err := row.Scan(append(reviewDest(&r.Review), &r.YachtID, &r.YachtTitle, &r.ReviewerID, &r.ReviewerName)...)
	return r, err
}

const reviewViewSelect = `
SELECT ` + reviewColumns + `, b.yacht_id, y.title, u.id, u.name
FROM reviews r
JOIN bookings b ON b.id = r.booking_id
JOIN yachts y ON y.id = b.yacht_id
JOIN users u ON u.id = b.user_id`

const getReviewView = reviewViewSelect + ` WHERE r.id = $1`

func (q *Queries) GetReviewView(ctx context.Context, db DBTX, id uuid.UUID) (ReviewViewRow, error) {
	return scanReviewViewRow(db.QueryRow(ctx, getReviewView, id))
}

const listReviewsByYacht = reviewViewSelect + `
WHERE b.yacht_id = $1
  AND ($2::int IS NULL OR r.rating >= $2)
  AND ($3::int IS NULL OR r.rating <= $3)
  AND ($4::timestamptz IS NULL OR (r.created_at, r.id) < ($4, $5::uuid))
ORDER BY r.created_at DESC, r.id DESC
LIMIT $6`

type ListReviewsByYachtParams struct {
	YachtID        uuid.UUID
	MinRating      pgtype.Int4
	MaxRating      pgtype.Int4
	AfterCreatedAt pgtype.Timestamptz
	AfterID        pgtype.UUID
	Limit          int32
}

func (q *Queries) ListReviewsByYacht(ctx context.Context, db DBTX, arg ListReviewsByYachtParams) ([]ReviewViewRow, error) {
	rows, err := db.Query(ctx, listReviewsByYacht,
		arg.YachtID, arg.MinRating, arg.MaxRating, arg.AfterCreatedAt, arg.AfterID, arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanReviewViewRow)
}

const recalcYachtRatingStats = `
INSERT INTO yacht_rating_stats (
    yacht_id, total_reviews, average_rating,
    rating_1_count, rating_2_count, rating_3_count, rating_4_count, rating_5_count, updated_at
)
SELECT $1,
       count(r.id),
       COALESCE(round(avg(r.rating), 2), 0),
       count(*) FILTER (WHERE r.rating = 1),
       count(*) FILTER (WHERE r.rating = 2),
       count(*) FILTER (WHERE r.rating = 3),
       count(*) FILTER (WHERE r.rating = 4),
       count(*) FILTER (WHERE r.rating = 5),
       now()
FROM reviews r
JOIN bookings b ON b.id = r.booking_id
WHERE b.yacht_id = $1
ON CONFLICT (yacht_id) DO UPDATE SET
    total_reviews  = EXCLUDED.total_reviews,
    average_rating = EXCLUDED.average_rating,
    rating_1_count = EXCLUDED.rating_1_count,
    rating_2_count = EXCLUDED.rating_2_count,
    rating_3_count = EXCLUDED.rating_3_count,
    rating_4_count = EXCLUDED.rating_4_count,
    rating_5_count = EXCLUDED.rating_5_count,
    updated_at     = EXCLUDED.updated_at`

func (q *Queries) RecalcYachtRatingStats(ctx context.Context, db DBTX, yachtID uuid.UUID) error {
	_, err := db.Exec(ctx, recalcYachtRatingStats, yachtID)
	return err
}

const getYachtRatingStats = `
SELECT yacht_id, total_reviews, average_rating,
       rating_1_count, rating_2_count, rating_3_count, rating_4_count, rating_5_count, updated_at
FROM yacht_rating_stats
WHERE yacht_id = $1`

func (q *Queries) GetYachtRatingStats(ctx context.Context, db DBTX, yachtID uuid.UUID) (YachtRatingStat, error) {
	var s YachtRatingStat
	err := db.QueryRow(ctx, getYachtRatingStats, yachtID).Scan(
		&s.YachtID, &s.TotalReviews, &s.AverageRating,
		&s.Rating1Count, &s.Rating2Count, &s.Rating3Count, &s.Rating4Count, &s.Rating5Count,
		&s.UpdatedAt,
	)
	return s, err
}
