package booking

import (
	"time"

	"yacht-charter/internal/domain/shared/events"

	"github.com/google/uuid"
)

const (
	EventCreated   = "booking.created"
	EventConfirmed = "booking.confirmed"
	EventRejected  = "booking.rejected"
	EventCancelled = "booking.cancelled"
	EventCompleted = "booking.completed"
)

// Event is recorded on every lifecycle transition.
type Event struct {
	events.BaseEvent
	BookingID   uuid.UUID `json:"booking_id"`
	YachtID     uuid.UUID `json:"yacht_id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	RequesterID uuid.UUID `json:"requester_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	TotalPrice  string    `json:"total_price"`
	From        Status    `json:"from,omitempty"`
	To          Status    `json:"to"`
	// CancelledBy is set on booking.cancelled only.
	CancelledBy Initiator `json:"cancelled_by,omitempty"`
}

func (e Event) Recipient(p events.Party) (uuid.UUID, bool) {
	switch p {
	case events.PartyOwner:
		return e.OwnerID, e.OwnerID != uuid.Nil
	case events.PartyRequester:
		return e.RequesterID, e.RequesterID != uuid.Nil
	}
	return uuid.Nil, false
}

func (b *Booking) record(name string, from Status, at time.Time, by Initiator) {
	e := Event{
		BaseEvent:   events.NewBaseEvent(name, b.id, at),
		BookingID:   b.id,
		YachtID:     b.yachtID,
		OwnerID:     b.yachtOwnerID,
		RequesterID: b.requesterID,
		StartDate:   b.stay.Start(),
		EndDate:     b.stay.End(),
		TotalPrice:  b.totalPrice.String(),
		From:        from,
		To:          b.status,
		CancelledBy: by,
	}
	b.Record(e)
}
