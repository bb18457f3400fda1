package events

import (
	"time"

	"github.com/google/uuid"
)

type DomainEvent interface {
	EventName() string
	AggregateID() string
	OccurredAt() time.Time
}

// Party names the roles a notification can be addressed to.
type Party string

const (
	PartyOwner     Party = "owner"
	PartyRequester Party = "requester"
	PartyRecipient Party = "recipient"
)

// Addressed events know which user plays each party.
type Addressed interface {
	DomainEvent
	Recipient(p Party) (uuid.UUID, bool)
}

type EventRecorder struct {
	pending []DomainEvent
}

func (r *EventRecorder) Record(event DomainEvent) {
	if event == nil {
		return
	}
	r.pending = append(r.pending, event)
}

func (r *EventRecorder) PendingEvents() []DomainEvent {
	out := make([]DomainEvent, len(r.pending))
	copy(out, r.pending)
	return out
}

func (r *EventRecorder) ClearEvents() {
	r.pending = nil
}

// PullEvents returns the pending events and clears the recorder.
func (r *EventRecorder) PullEvents() []DomainEvent {
	out := r.pending
	r.pending = nil
	return out
}

type BaseEvent struct {
	Name      string    `json:"event"`
	Aggregate string    `json:"aggregate_id"`
	Time      time.Time `json:"occurred_at"`
}

func NewBaseEvent(name string, aggregateID uuid.UUID, at time.Time) BaseEvent {
	return BaseEvent{Name: name, Aggregate: aggregateID.String(), Time: at.UTC()}
}

func (e BaseEvent) EventName() string     { return e.Name }
func (e BaseEvent) AggregateID() string   { return e.Aggregate }
func (e BaseEvent) OccurredAt() time.Time { return e.Time }
