package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"yacht-charter/internal/domain/booking"
	"yacht-charter/internal/domain/calendar"
	"yacht-charter/internal/domain/policy"
	"yacht-charter/internal/infra"
	"yacht-charter/internal/pkg/clock"
	"yacht-charter/internal/pkg/errs"
	"yacht-charter/internal/usecase/queries"
	"yacht-charter/internal/usecase/shared"

	"github.com/google/uuid"
)

const createBookingEndpoint = "POST /api/bookings"

var (
	ErrIdempotencyInProgress = errs.Mark(errs.New("a request with this idempotency key is still in progress"), errs.ErrPrecondition)
	ErrIdempotencyKeyReused  = errs.Mark(errs.New("idempotency key was used with a different request"), errs.ErrPrecondition)
	errIdempotencyNoResult   = errs.New("completed request missing result booking id")
)

type CreateBookingInput struct {
	YachtID   uuid.UUID `json:"yacht_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Notes     string    `json:"notes"`
}

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	// Create places a pending booking. A non-nil idempotencyKey makes retries
	// of the same request return the first result.
	Create(ctx context.Context, actor policy.Actor, in CreateBookingInput, idempotencyKey *uuid.UUID) (*CreateBookingResult, error)
	Confirm(ctx context.Context, actor policy.Actor, id uuid.UUID) (*queries.BookingView, error)
	Reject(ctx context.Context, actor policy.Actor, id uuid.UUID) (*queries.BookingView, error)
	Cancel(ctx context.Context, actor policy.Actor, id uuid.UUID) (*queries.BookingView, error)
	Complete(ctx context.Context, actor policy.Actor, id uuid.UUID) (*queries.BookingView, error)
	Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error
}

type BookingConfig struct {
	IdempotencyTTL time.Duration
}

type bookingUseCaseImpl struct {
	uow        shared.UnitOfWork
	services   booking.Services
	dispatcher NotificationDispatcher
	cache      CalendarInvalidator
	bookings   queries.BookingQueries
	clock      clock.Clock
	loc        *time.Location
	cfg        BookingConfig
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	services booking.Services,
	dispatcher NotificationDispatcher,
	cache CalendarInvalidator,
	bookings queries.BookingQueries,
	cfg BookingConfig,
) BookingCommands {
	loc := services.Location
	if loc == nil {
		loc = time.UTC
	}
	if cfg.IdempotencyTTL <= 0 {
		cfg.IdempotencyTTL = 24 * time.Hour
	}
	return &bookingUseCaseImpl{
		uow:        uow,
		services:   services,
		dispatcher: dispatcher,
		cache:      cache,
		bookings:   bookings,
		clock:      services.Clock,
		loc:        loc,
		cfg:        cfg,
	}
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, actor policy.Actor, in CreateBookingInput, idempotencyKey *uuid.UUID) (*CreateBookingResult, error) {
	if !policy.CanCreateBooking(actor) {
		return nil, policy.Denied("create booking")
	}

	if idempotencyKey != nil {
		replayed, err := uc.reserveKey(ctx, *idempotencyKey, actor.ID(), requestHash(in))
		if err != nil {
			return nil, err
		}
		if replayed != nil {
			return &CreateBookingResult{Booking: replayed, IsReplayed: true}, nil
		}
	}

	created, err := uc.create(ctx, actor, in, idempotencyKey)
	if err != nil {
		if idempotencyKey != nil {
			uc.releaseKey(ctx, *idempotencyKey, actor.ID())
		}
		return nil, err
	}
	invalidateCalendar(ctx, uc.cache, created.YachtID())

	// Read-after-write for the full representation
	view, err := uc.bookings.GetByIDSystem(ctx, created.ID())
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{Booking: view}, nil
}

func (uc *bookingUseCaseImpl) create(ctx context.Context, actor policy.Actor, in CreateBookingInput, idempotencyKey *uuid.UUID) (*booking.Booking, error) {
	var created *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Lock the yacht row so overlapping requests for it serialize here.
		y, err := tx.Reads().YachtForUpdate(ctx, in.YachtID)
		if err != nil {
			return err
		}
		stay := calendar.RangeOf(calendar.Day(in.StartDate), calendar.Day(in.EndDate))
		slots, err := tx.Reads().ActiveSlots(ctx, y.ID(), stay)
		if err != nil {
			return err
		}
		periods, err := tx.Reads().PeriodsForYacht(ctx, y.ID())
		if err != nil {
			return err
		}

		b, err := booking.New(uc.services,
			booking.Yacht{ID: y.ID(), OwnerID: y.OwnerID(), Available: y.AcceptsBookings()},
			booking.Request{RequesterID: actor.ID(), Start: in.StartDate, End: in.EndDate, Notes: in.Notes},
			slots, periods,
		)
		if err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}
		if err := uc.dispatcher.Dispatch(ctx, tx.Notifications(), b.PullEvents()); err != nil {
			return err
		}
		if idempotencyKey != nil {
			if err := tx.Idempotency().UpdateStatusCompleted(ctx, *idempotencyKey, actor.ID(), idHash(b.ID()), b.ID()); err != nil {
				return err
			}
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// reserveKey claims the idempotency key for this request. A non-nil view
// means the request already completed and must be replayed.
func (uc *bookingUseCaseImpl) reserveKey(ctx context.Context, key, userID uuid.UUID, hash string) (*queries.BookingView, error) {
	expiresAt := uc.clock.Now().Add(uc.cfg.IdempotencyTTL)

	var reserved bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, err := tx.Idempotency().TryInsert(ctx, key, userID, createBookingEndpoint, hash, expiresAt)
		if err != nil {
			return err
		}
		if !inserted {
			inserted, err = tx.Idempotency().ClaimExpired(ctx, key, userID, createBookingEndpoint, hash, expiresAt)
			if err != nil {
				return err
			}
		}
		reserved = inserted
		return nil
	})
	if err != nil {
		return nil, err
	}
	if reserved {
		return nil, nil
	}

	existing, err := uc.uow.CommandReads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, err
	}
	if existing.RequestHash != hash {
		return nil, ErrIdempotencyKeyReused
	}
	switch existing.Status {
	case shared.IdempotencyCompleted:
		if existing.ResultBookingID == nil {
			return nil, errIdempotencyNoResult
		}
		return uc.bookings.GetByIDSystem(ctx, *existing.ResultBookingID)
	default:
		return nil, ErrIdempotencyInProgress
	}
}

func (uc *bookingUseCaseImpl) releaseKey(ctx context.Context, key, userID uuid.UUID) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, key, userID)
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to release idempotency key", "key", key, "error", err.Error())
	}
}

func (uc *bookingUseCaseImpl) Confirm(ctx context.Context, actor policy.Actor, id uuid.UUID) (*queries.BookingView, error) {
	return uc.transition(ctx, actor, id, "confirm booking", policy.CanUpdateBooking, func(b *booking.Booking, now time.Time) error {
		return b.Confirm(now)
	})
}

func (uc *bookingUseCaseImpl) Reject(ctx context.Context, actor policy.Actor, id uuid.UUID) (*queries.BookingView, error) {
	return uc.transition(ctx, actor, id, "reject booking", policy.CanUpdateBooking, func(b *booking.Booking, now time.Time) error {
		return b.Reject(now)
	})
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, actor policy.Actor, id uuid.UUID) (*queries.BookingView, error) {
	return uc.transition(ctx, actor, id, "cancel booking", policy.CanCancelBooking, func(b *booking.Booking, now time.Time) error {
		by := booking.InitiatorRequester
		if !actor.Is(b.RequesterID()) {
			by = booking.InitiatorAdmin
		}
		return b.Cancel(by, calendar.Today(now, uc.loc), now)
	})
}

func (uc *bookingUseCaseImpl) Complete(ctx context.Context, actor policy.Actor, id uuid.UUID) (*queries.BookingView, error) {
	return uc.transition(ctx, actor, id, "complete booking", policy.CanCompleteBooking, func(b *booking.Booking, now time.Time) error {
		return b.Complete(now)
	})
}

func (uc *bookingUseCaseImpl) transition(
	ctx context.Context,
	actor policy.Actor,
	id uuid.UUID,
	action string,
	allowed func(policy.Actor, policy.BookingSubject) bool,
	apply func(b *booking.Booking, now time.Time) error,
) (*queries.BookingView, error) {
	var yachtID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BookingForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !allowed(actor, policy.BookingSubjectOf(b, false)) {
			return policy.Denied(action)
		}
		from := b.Status()
		if err := apply(b, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateStatus(ctx, b, from); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return booking.ErrStatusChanged
			}
			return err
		}
		yachtID = b.YachtID()
		return uc.dispatcher.Dispatch(ctx, tx.Notifications(), b.PullEvents())
	})
	if err != nil {
		return nil, err
	}
	invalidateCalendar(ctx, uc.cache, yachtID)
	return uc.bookings.GetByIDSystem(ctx, id)
}

func (uc *bookingUseCaseImpl) Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	if !policy.CanDeleteBooking(actor) {
		return policy.Denied("delete booking")
	}
	var yachtID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BookingForUpdate(ctx, id)
		if err != nil {
			return err
		}
		yachtID = b.YachtID()
		return tx.Bookings().Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	invalidateCalendar(ctx, uc.cache, yachtID)
	return nil
}

func requestHash(in CreateBookingInput) string {
	data, _ := json.Marshal(struct {
		YachtID uuid.UUID `json:"yacht_id"`
		Start   string    `json:"start_date"`
		End     string    `json:"end_date"`
		Notes   string    `json:"notes"`
	}{in.YachtID, calendar.FormatDate(in.StartDate), calendar.FormatDate(in.EndDate), in.Notes})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func idHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
