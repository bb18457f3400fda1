package converter

import (
	"yacht-charter/internal/domain/booking"
	"yacht-charter/internal/domain/pricing"
	"yacht-charter/internal/infra/pgquery"
	"yacht-charter/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) pgquery.CreateBookingParams {
	return pgquery.CreateBookingParams{
		ID:         b.ID(),
		YachtID:    b.YachtID(),
		UserID:     b.RequesterID(),
		StartDate:  pgconv.DateToPgtype(b.StartDate()),
		EndDate:    pgconv.DateToPgtype(b.EndDate()),
		Notes:      pgconv.OptionalText(b.Notes()),
		TotalPrice: pgconv.CentsToNumeric(b.TotalPrice().Cents()),
		Status:     b.Status().String(),
		CreatedAt:  pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromRow(row pgquery.BookingWithOwner) (*booking.Booking, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	cents, err := pgconv.CentsFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, err
	}
	total, err := pricing.NewMoney(cents)
	if err != nil {
		return nil, err
	}
	return booking.Reconstruct(
		row.ID,
		row.YachtID,
		row.UserID,
		row.YachtOwnerID,
		pgconv.DateFromPgtype(row.StartDate),
		pgconv.DateFromPgtype(row.EndDate),
		pgconv.StringFromPgtype(row.Notes),
		total,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func SlotFromRow(row pgquery.BookingSlot) (booking.Slot, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return booking.Slot{}, err
	}
	return booking.Slot{
		BookingID: row.ID,
		Start:     pgconv.DateFromPgtype(row.StartDate),
		End:       pgconv.DateFromPgtype(row.EndDate),
		Status:    status,
	}, nil
}
