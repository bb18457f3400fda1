package queries

import (
	"context"
	"time"

	"yacht-charter/internal/domain/booking"
	"yacht-charter/internal/domain/policy"
	"yacht-charter/internal/infra"

	"github.com/google/uuid"
)

// BookingScope narrows a listing to one side of the marketplace.
type BookingScope string

const (
	ScopeMine     BookingScope = "mine"
	ScopeMyYachts BookingScope = "my_yachts"
	ScopeAll      BookingScope = "all"
)

type BookingFilters struct {
	Status  *booking.Status
	YachtID *uuid.UUID
}

// BookingListParams is the read store's view of a listing request.
type BookingListParams struct {
	RequesterID *uuid.UUID
	OwnerID     *uuid.UUID
	YachtID     *uuid.UUID
	Status      *string
	After       *Keyset
	Limit       int32
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, params BookingListParams) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor policy.Actor, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem skips authorization; used to replay idempotent requests.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, actor policy.Actor, scope BookingScope, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor policy.Actor, id uuid.UUID) (*BookingView, error) {
	v, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	subject := policy.BookingSubject{
		RequesterID:  v.RequesterID,
		YachtOwnerID: v.YachtOwnerID,
		Status:       booking.Status(v.Status),
		HasReview:    v.HasReview,
	}
	if !policy.CanViewBooking(actor, subject) {
		return nil, policy.Denied("view booking")
	}
	return v, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *bookingQueriesImpl) List(
	ctx context.Context,
	actor policy.Actor,
	scope BookingScope,
	filters BookingFilters,
	cursor *Cursor,
	limit int,
) ([]*BookingView, *Cursor, error) {
	params := BookingListParams{YachtID: filters.YachtID}
	if filters.Status != nil {
		s := filters.Status.String()
		params.Status = &s
	}

	id := actor.ID()
	switch scope {
	case ScopeMine:
		if !actor.HasCapability(policy.CapViewOwnBookings) {
			return nil, nil, policy.Denied("list bookings")
		}
		params.RequesterID = &id
	case ScopeMyYachts:
		if !actor.HasCapability(policy.CapManageYachtBookings) {
			return nil, nil, policy.Denied("list yacht bookings")
		}
		params.OwnerID = &id
	case ScopeAll:
		if !policy.CanListAllBookings(actor) {
			return nil, nil, policy.Denied("list all bookings")
		}
	default:
		return nil, nil, policy.Denied("list bookings")
	}

	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)
	params.After = after
	params.Limit = int32(limit + 1) // #nosec G115 -- bounded by MaxListLimit

	rows, err := q.store.List(ctx, params)
	if err != nil {
		return nil, nil, err
	}
	items, next := page(rows, limit, func(v *BookingView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
	return items, next, nil
}
