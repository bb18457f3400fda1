package repository

import (
	"context"

	"yacht-charter/internal/domain/booking"
	"yacht-charter/internal/infra"
	"yacht-charter/internal/infra/pgquery"
	"yacht-charter/internal/infra/repository/converter"
	"yacht-charter/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateBookingParams) error
	UpdateBookingStatus(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateBookingStatusParams) (int64, error)
	DeleteBooking(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      pgquery.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db pgquery.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking, from booking.Status) error {
	params := pgquery.UpdateBookingStatusParams{
		ID:         b.ID(),
		FromStatus: from.String(),
		ToStatus:   b.Status().String(),
		UpdatedAt:  pgconv.TimeToPgtype(b.UpdatedAt()),
	}
	n, err := r.queries.UpdateBookingStatus(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteBooking(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
