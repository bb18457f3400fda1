package readstore

import (
	"context"

	"yacht-charter/internal/domain/booking"
	"yacht-charter/internal/domain/calendar"
	"yacht-charter/internal/infra"
	"yacht-charter/internal/infra/pgquery"
	"yacht-charter/internal/infra/repository/converter"
	"yacht-charter/internal/pkg/pgconv"
	"yacht-charter/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBookingView(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.BookingViewRow, error)
	ListBookings(ctx context.Context, db pgquery.DBTX, arg pgquery.ListBookingsParams) ([]pgquery.BookingViewRow, error)
	GetBookingWithOwner(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.BookingWithOwner, error)
	GetBookingWithOwnerForUpdate(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.BookingWithOwner, error)
	ListActiveBookingSlots(ctx context.Context, db pgquery.DBTX, arg pgquery.ListActiveBookingSlotsParams) ([]pgquery.BookingSlot, error)
	CountActiveBookings(ctx context.Context, db pgquery.DBTX, yachtID uuid.UUID) (int64, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      pgquery.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db pgquery.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return toBookingView(row)
}

func (r *BookingReadStore) List(ctx context.Context, p queries.BookingListParams) ([]*queries.BookingView, error) {
	params := pgquery.ListBookingsParams{
		RequesterID: pgconv.UUIDPtrToPgtype(p.RequesterID),
		OwnerID:     pgconv.UUIDPtrToPgtype(p.OwnerID),
		YachtID:     pgconv.UUIDPtrToPgtype(p.YachtID),
		Status:      pgconv.StringPtrToPgtype(p.Status),
		Limit:       p.Limit,
	}
	if p.After != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(p.After.CreatedAt)
		params.AfterID = pgconv.UUIDToPgtype(p.After.ID)
	}

	rows, err := r.queries.ListBookings(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	result := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		v, err := toBookingView(row)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

// Load returns the aggregate, optionally locking its row.
func (r *BookingReadStore) Load(ctx context.Context, id uuid.UUID, forUpdate bool) (*booking.Booking, error) {
	get := r.queries.GetBookingWithOwner
	if forUpdate {
		get = r.queries.GetBookingWithOwnerForUpdate
	}
	row, err := get(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load booking", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking row", err)
	}
	return b, nil
}

// ActiveSlots lists pending and confirmed bookings overlapping window.
func (r *BookingReadStore) ActiveSlots(ctx context.Context, yachtID uuid.UUID, window calendar.Range) ([]booking.Slot, error) {
	rows, err := r.queries.ListActiveBookingSlots(ctx, r.db, pgquery.ListActiveBookingSlotsParams{
		YachtID:   yachtID,
		StartDate: pgconv.DateToPgtype(window.Start()),
		EndDate:   pgconv.DateToPgtype(window.End()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active booking slots", err)
	}
	slots := make([]booking.Slot, 0, len(rows))
	for _, row := range rows {
		s, err := converter.SlotFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert booking slot", err)
		}
		slots = append(slots, s)
	}
	return slots, nil
}

func (r *BookingReadStore) OccupiedRanges(ctx context.Context, yachtID uuid.UUID, window calendar.Range) ([]queries.OccupiedRange, error) {
	slots, err := r.ActiveSlots(ctx, yachtID, window)
	if err != nil {
		return nil, err
	}
	out := make([]queries.OccupiedRange, 0, len(slots))
	for _, s := range slots {
		out = append(out, queries.OccupiedRange{
			BookingID: s.BookingID,
			StartDate: calendar.FormatDate(s.Start),
			EndDate:   calendar.FormatDate(s.End),
			Status:    s.Status.String(),
		})
	}
	return out, nil
}

func (r *BookingReadStore) CountActive(ctx context.Context, yachtID uuid.UUID) (int, error) {
	n, err := r.queries.CountActiveBookings(ctx, r.db, yachtID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active bookings", err)
	}
	return int(n), nil
}

func toBookingView(row pgquery.BookingViewRow) (*queries.BookingView, error) {
	cents, err := pgconv.CentsFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking total price", err)
	}
	return &queries.BookingView{
		ID:             row.ID,
		YachtID:        row.YachtID,
		YachtTitle:     row.YachtTitle,
		YachtOwnerID:   row.YachtOwnerID,
		RequesterID:    row.UserID,
		RequesterName:  row.RequesterName,
		RequesterEmail: row.RequesterEmail,
		StartDate:      calendar.FormatDate(pgconv.DateFromPgtype(row.StartDate)),
		EndDate:        calendar.FormatDate(pgconv.DateFromPgtype(row.EndDate)),
		Notes:          pgconv.StringPtrFromPgtype(row.Notes),
		TotalPrice:     formatCents(cents),
		Status:         row.Status,
		HasReview:      row.HasReview,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
