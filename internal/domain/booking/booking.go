package booking

import (
	"strings"
	"time"
	"unicode/utf8"

	"yacht-charter/internal/domain/calendar"
	"yacht-charter/internal/domain/pricing"
	"yacht-charter/internal/domain/shared/events"
	"yacht-charter/internal/pkg/clock"

	"github.com/google/uuid"
)

// Initiator identifies who cancels a booking.
type Initiator string

const (
	InitiatorRequester Initiator = "requester"
	InitiatorAdmin     Initiator = "admin"
)

type Booking struct {
	id           uuid.UUID
	yachtID      uuid.UUID
	requesterID  uuid.UUID
	yachtOwnerID uuid.UUID
	stay         calendar.Range
	notes        string
	totalPrice   pricing.Money
	status       Status
	createdAt    time.Time
	updatedAt    time.Time

	events.EventRecorder
}

type Services struct {
	Clock    clock.Clock
	Location *time.Location
	Resolver pricing.Resolver
}

// Yacht is the snapshot of the boat taken under lock when booking.
type Yacht struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Available bool
}

type Request struct {
	RequesterID uuid.UUID
	Start       time.Time
	End         time.Time
	Notes       string
}

// New validates a booking request and prices it. Checks run in a fixed order
// and the first failure is returned: yacht availability, start date, minimum
// stay, then calendar conflicts.
func New(svc Services, y Yacht, req Request, existing []Slot, periods []*pricing.Period) (*Booking, error) {
	if !y.Available {
		return nil, ErrYachtUnavailable
	}

	now := svc.Clock.Now()
	start, end := calendar.Day(req.Start), calendar.Day(req.End)
	if start.Before(calendar.Today(now, svc.Location)) {
		return nil, ErrStartInPast
	}
	if calendar.DaysBetween(start, end) < MinStayDays {
		return nil, ErrStayTooShort
	}
	stay, err := calendar.NewRange(start, end)
	if err != nil {
		return nil, err
	}
	if !IsAvailable(stay, existing) {
		return nil, ErrDatesConflict
	}

	notes := strings.TrimSpace(req.Notes)
	if utf8.RuneCountInString(notes) > MaxNotesLength {
		return nil, ErrNotesTooLong
	}

	resolver := svc.Resolver
	if resolver == nil {
		resolver = pricing.NewFirstMatchResolver()
	}

	b := &Booking{
		id:           uuid.New(),
		yachtID:      y.ID,
		requesterID:  req.RequesterID,
		yachtOwnerID: y.OwnerID,
		stay:         stay,
		notes:        notes,
		totalPrice:   resolver.Quote(periods, stay).Total,
		status:       StatusPending,
		createdAt:    now,
		updatedAt:    now,
	}
	b.record(EventCreated, "", now, "")
	return b, nil
}

// Reconstruct rebuilds a persisted booking. ownerID is the yacht's owner and
// is not stored on the booking row.
func Reconstruct(id, yachtID, requesterID, ownerID uuid.UUID, start, end time.Time, notes string,
	totalPrice pricing.Money, status Status, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		id:           id,
		yachtID:      yachtID,
		requesterID:  requesterID,
		yachtOwnerID: ownerID,
		stay:         calendar.RangeOf(start, end),
		notes:        notes,
		totalPrice:   totalPrice,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (b *Booking) Confirm(now time.Time) error {
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.transition(StatusConfirmed, EventConfirmed, now)
	return nil
}

// Reject is the owner-side refusal of a pending request.
func (b *Booking) Reject(now time.Time) error {
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.transition(StatusCancelled, EventRejected, now)
	return nil
}

// Cancel withdraws a pending or confirmed booking. A confirmed booking, or a
// pending one cancelled by its requester, must not have started yet. today is
// the current date in the server zone.
func (b *Booking) Cancel(by Initiator, today, now time.Time) error {
	if !b.status.BlocksCalendar() {
		return ErrNotCancellable
	}
	needsFutureStart := b.status == StatusConfirmed || by != InitiatorAdmin
	if needsFutureStart && !b.stay.Start().After(calendar.Day(today)) {
		return ErrAlreadyStarted
	}
	from := b.status
	b.status = StatusCancelled
	b.updatedAt = now
	b.record(EventCancelled, from, now, by)
	return nil
}

func (b *Booking) Complete(now time.Time) error {
	if b.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	b.transition(StatusCompleted, EventCompleted, now)
	return nil
}

func (b *Booking) transition(to Status, event string, now time.Time) {
	from := b.status
	b.status = to
	b.updatedAt = now
	b.record(event, from, now, "")
}

func (b *Booking) Slot() Slot {
	return Slot{BookingID: b.id, Start: b.stay.Start(), End: b.stay.End(), Status: b.status}
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) YachtID() uuid.UUID        { return b.yachtID }
func (b *Booking) RequesterID() uuid.UUID    { return b.requesterID }
func (b *Booking) YachtOwnerID() uuid.UUID   { return b.yachtOwnerID }
func (b *Booking) Stay() calendar.Range      { return b.stay }
func (b *Booking) StartDate() time.Time      { return b.stay.Start() }
func (b *Booking) EndDate() time.Time        { return b.stay.End() }
func (b *Booking) Notes() string             { return b.notes }
func (b *Booking) TotalPrice() pricing.Money { return b.totalPrice }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }
