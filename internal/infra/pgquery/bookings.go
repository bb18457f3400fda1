package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `b.id, b.yacht_id, b.user_id, b.start_date, b.end_date, b.notes, b.total_price, b.status, b.created_at, b.updated_at`

func bookingDest(b *Booking) []any {
	return []any{
		&b.ID, &b.YachtID, &b.UserID, &b.StartDate, &b.EndDate,
		&b.Notes, &b.TotalPrice, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	}
}

// BookingWithOwner carries the yacht owner next to the booking row.
type BookingWithOwner struct {
	Booking
	YachtOwnerID uuid.UUID
}

func scanBookingWithOwner(row scanner) (BookingWithOwner, error) {
	var b BookingWithOwner
	err := row.Scan(append(bookingDest(&b.Booking), &b.YachtOwnerID)...)
	return b, err
}

const getBookingWithOwner = `
SELECT ` + bookingColumns + `, y.owner_id
FROM bookings b
JOIN yachts y ON y.id = b.yacht_id
WHERE b.id = $1`

func (q *Queries) GetBookingWithOwner(ctx context.Context, db DBTX, id uuid.UUID) (BookingWithOwner, error) {
	return scanBookingWithOwner(db.QueryRow(ctx, getBookingWithOwner, id))
}

const getBookingWithOwnerForUpdate = getBookingWithOwner + ` FOR UPDATE OF b`

func (q *Queries) GetBookingWithOwnerForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (BookingWithOwner, error) {
	return scanBookingWithOwner(db.QueryRow(ctx, getBookingWithOwnerForUpdate, id))
}

const createBooking = `
INSERT INTO bookings (id, yacht_id, user_id, start_date, end_date, notes, total_price, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

type CreateBookingParams struct {
	ID         uuid.UUID
	YachtID    uuid.UUID
	UserID     uuid.UUID
	StartDate  pgtype.Date
	EndDate    pgtype.Date
	Notes      pgtype.Text
	TotalPrice pgtype.Numeric
	Status     string
	CreatedAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) error {
	_, err := db.Exec(ctx, createBooking,
		arg.ID, arg.YachtID, arg.UserID, arg.StartDate, arg.EndDate,
		arg.Notes, arg.TotalPrice, arg.Status, arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

// The status guard makes a lost update visible as zero affected rows.
const updateBookingStatus = `
UPDATE bookings
SET status = $3, updated_at = $4
WHERE id = $1 AND status = $2`

type UpdateBookingStatusParams struct {
	ID         uuid.UUID
	FromStatus string
	ToStatus   string
	UpdatedAt  pgtype.Timestamptz
}

func (q *Queries) UpdateBookingStatus(ctx context.Context, db DBTX, arg UpdateBookingStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updateBookingStatus, arg.ID, arg.FromStatus, arg.ToStatus, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteBooking = `DELETE FROM bookings WHERE id = $1`

func (q *Queries) DeleteBooking(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteBooking, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type BookingSlot struct {
	ID        uuid.UUID
	StartDate pgtype.Date
	EndDate   pgtype.Date
	Status    string
}

func scanBookingSlot(row scanner) (BookingSlot, error) {
	var s BookingSlot
	err := row.Scan(&s.ID, &s.StartDate, &s.EndDate, &s.Status)
	return s, err
}

// Inclusive overlap: a stay ending on the day another starts still collides.
const listActiveBookingSlots = `
SELECT id, start_date, end_date, status
FROM bookings
WHERE yacht_id = $1
  AND status IN ('pending', 'confirmed')
  AND start_date <= $3 AND $2 <= end_date
ORDER BY start_date, id`

type ListActiveBookingSlotsParams struct {
	YachtID   uuid.UUID
	StartDate pgtype.Date
	EndDate   pgtype.Date
}

func (q *Queries) ListActiveBookingSlots(ctx context.Context, db DBTX, arg ListActiveBookingSlotsParams) ([]BookingSlot, error) {
	rows, err := db.Query(ctx, listActiveBookingSlots, arg.YachtID, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanBookingSlot)
}

// BookingViewRow joins what booking listings display.
type BookingViewRow struct {
	Booking
	YachtOwnerID   uuid.UUID
	YachtTitle     string
	RequesterName  string
	RequesterEmail string
	HasReview      bool
}

func scanBookingViewRow(row scanner) (BookingViewRow, error) {
	var b BookingViewRow
	err := row.Scan(append(bookingDest(&b.Booking),
		&b.YachtOwnerID, &b.YachtTitle, &b.RequesterName, &b.RequesterEmail, &b.HasReview,
	)...)
	return b, err
}

const bookingViewSelect = `
SELECT ` + bookingColumns + `, y.owner_id, y.title, u.name, u.email,
       EXISTS (SELECT 1 FROM reviews r WHERE r.booking_id = b.id)
FROM bookings b
JOIN yachts y ON y.id = b.yacht_id
JOIN users u ON u.id = b.user_id`

const getBookingView = bookingViewSelect + ` WHERE b.id = $1`

func (q *Queries) GetBookingView(ctx context.Context, db DBTX, id uuid.UUID) (BookingViewRow, error) {
	return scanBookingViewRow(db.QueryRow(ctx, getBookingView, id))
}

const listBookings = bookingViewSelect + `
WHERE ($1::uuid IS NULL OR b.user_id = $1)
  AND ($2::uuid IS NULL OR y.owner_id = $2)
  AND ($3::uuid IS NULL OR b.yacht_id = $3)
  AND ($4::text IS NULL OR b.status = $4)
  AND ($5::timestamptz IS NULL OR (b.created_at, b.id) < ($5, $6::uuid))
ORDER BY b.created_at DESC, b.id DESC
LIMIT $7`

type ListBookingsParams struct {
	RequesterID    pgtype.UUID
	OwnerID        pgtype.UUID
	YachtID        pgtype.UUID
	Status         pgtype.Text
	AfterCreatedAt pgtype.Timestamptz
	AfterID        pgtype.UUID
	Limit          int32
}

func (q *Queries) ListBookings(ctx context.Context, db DBTX, arg ListBookingsParams) ([]BookingViewRow, error) {
	rows, err := db.Query(ctx, listBookings,
		arg.RequesterID, arg.OwnerID, arg.YachtID, arg.Status, arg.AfterCreatedAt, arg.AfterID, arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanBookingViewRow)
}
