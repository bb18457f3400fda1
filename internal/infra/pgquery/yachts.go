package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const yachtColumns = `y.id, y.owner_id, y.title, y.description, y.type, y.capacity, y.location, y.status, y.created_at, y.updated_at`

func scanYacht(row scanner, extra ...any) (Yacht, error) {
	var y Yacht
	dest := append([]any{
		&y.ID, &y.OwnerID, &y.Title, &y.Description, &y.Type,
		&y.Capacity, &y.Location, &y.Status, &y.CreatedAt, &y.UpdatedAt,
	}, extra...)
	err := row.Scan(dest...)
	return y, err
}

const getYacht = `SELECT ` + yachtColumns + ` FROM yachts y WHERE y.id = $1`

func (q *Queries) GetYacht(ctx context.Context, db DBTX, id uuid.UUID) (Yacht, error) {
	return scanYacht(db.QueryRow(ctx, getYacht, id))
}

const getYachtForUpdate = getYacht + ` FOR UPDATE`

// GetYachtForUpdate locks the yacht row; concurrent bookings for the same
// yacht serialize on it.
func (q *Queries) GetYachtForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Yacht, error) {
	return scanYacht(db.QueryRow(ctx, getYachtForUpdate, id))
}

const createYacht = `
INSERT INTO yachts (id, owner_id, title, description, type, capacity, location, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

type CreateYachtParams struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Type        string
	Capacity    int32
	Location    string
	Status      string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

func (q *Queries) CreateYacht(ctx context.Context, db DBTX, arg CreateYachtParams) error {
	_, err := db.Exec(ctx, createYacht,
		arg.ID, arg.OwnerID, arg.Title, arg.Description, arg.Type,
		arg.Capacity, arg.Location, arg.Status, arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

const updateYacht = `
UPDATE yachts
SET title = $2, description = $3, type = $4, capacity = $5, location = $6, status = $7, updated_at = $8
WHERE id = $1`

type UpdateYachtParams struct {
	ID          uuid.UUID
	Title       string
	Description string
	Type        string
	Capacity    int32
	Location    string
	Status      string
	UpdatedAt   pgtype.Timestamptz
}

func (q *Queries) UpdateYacht(ctx context.Context, db DBTX, arg UpdateYachtParams) (int64, error) {
	tag, err := db.Exec(ctx, updateYacht,
		arg.ID, arg.Title, arg.Description, arg.Type, arg.Capacity, arg.Location, arg.Status, arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteYacht = `DELETE FROM yachts WHERE id = $1`

func (q *Queries) DeleteYacht(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteYacht, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const countActiveBookings = `
SELECT count(*) FROM bookings
WHERE yacht_id = $1 AND status IN ('pending', 'confirmed')`

func (q *Queries) CountActiveBookings(ctx context.Context, db DBTX, yachtID uuid.UUID) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countActiveBookings, yachtID).Scan(&n)
	return n, err
}

// YachtListRow is a yacht with its cheapest current price and rating summary.
type YachtListRow struct {
	Yacht
	MinPricePerWeek pgtype.Numeric
	AverageRating   pgtype.Numeric
	TotalReviews    int32
}

const yachtListSelect = `
SELECT ` + yachtColumns + `,
       mp.min_price,
       COALESCE(rs.average_rating, 0),
       COALESCE(rs.total_reviews, 0)
FROM yachts y
LEFT JOIN LATERAL (
    SELECT min(p.price_per_week) AS min_price
    FROM pricing_periods p
    WHERE p.yacht_id = y.id AND p.end_date >= current_date
) mp ON TRUE
LEFT JOIN yacht_rating_stats rs ON rs.yacht_id = y.id`

func scanYachtListRow(row scanner) (YachtListRow, error) {
	var r YachtListRow
	y, err := scanYacht(row, &r.MinPricePerWeek, &r.AverageRating, &r.TotalReviews)
	r.Yacht = y
	return r, err
}

const getYachtView = yachtListSelect + ` WHERE y.id = $1`

func (q *Queries) GetYachtView(ctx context.Context, db DBTX, id uuid.UUID) (YachtListRow, error) {
	return scanYachtListRow(db.QueryRow(ctx, getYachtView, id))
}

// Keyset pagination only applies to the "latest" ordering; the other sorts
// return a single page.
const listYachts = yachtListSelect + `
WHERE ($1::text IS NULL OR y.title ILIKE '%' || $1 || '%' OR y.description ILIKE '%' || $1 || '%')
  AND ($2::text IS NULL OR y.type = $2)
  AND ($3::int IS NULL OR y.capacity >= $3)
  AND ($4::text IS NULL OR y.location ILIKE '%' || $4 || '%')
  AND ($5::text IS NULL OR y.status = $5)
  AND ($6::uuid IS NULL OR y.owner_id = $6)
  AND ($7::timestamptz IS NULL OR (y.created_at, y.id) < ($7, $8::uuid))
ORDER BY
    CASE WHEN $9 = 'price_low' THEN mp.min_price END ASC NULLS LAST,
    CASE WHEN $9 = 'price_high' THEN mp.min_price END DESC NULLS LAST,
    CASE WHEN $9 = 'rating' THEN rs.average_rating END DESC NULLS LAST,
    y.created_at DESC, y.id DESC
LIMIT $10`

type ListYachtsParams struct {
	Search         pgtype.Text
	Type           pgtype.Text
	MinCapacity    pgtype.Int4
	Location       pgtype.Text
	Status         pgtype.Text
	OwnerID        pgtype.UUID
	AfterCreatedAt pgtype.Timestamptz
	AfterID        pgtype.UUID
	Sort           string
	Limit          int32
}

func (q *Queries) ListYachts(ctx context.Context, db DBTX, arg ListYachtsParams) ([]YachtListRow, error) {
	rows, err := db.Query(ctx, listYachts,
		arg.Search, arg.Type, arg.MinCapacity, arg.Location, arg.Status, arg.OwnerID,
		arg.AfterCreatedAt, arg.AfterID, arg.Sort, arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanYachtListRow)
}
