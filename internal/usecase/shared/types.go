package shared

import (
	"time"

	"github.com/google/uuid"
)

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

// NotificationJob is one outbox row: an event addressed to one recipient.
type NotificationJob struct {
	Kind        string
	Topic       string
	EventName   string
	AggregateID string
	RecipientID uuid.UUID
	Payload     []byte
	OccurredAt  time.Time
	RunAt       time.Time
}
