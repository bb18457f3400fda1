package pgquery

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type Yacht struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Type        string
	Capacity    int32
	Location    string
	Status      string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type PricingPeriod struct {
	ID           uuid.UUID
	YachtID      uuid.UUID
	StartDate    pgtype.Date
	EndDate      pgtype.Date
	PricePerWeek pgtype.Numeric
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type Booking struct {
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

type Review struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	Rating    int16
	Comment   pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type Conversation struct {
	ID               uuid.UUID
	ParticipantOneID uuid.UUID
	ParticipantTwoID uuid.UUID
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

type Message struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	SenderID       uuid.UUID
	Body           string
	ReadAt         pgtype.Timestamptz
	CreatedAt      pgtype.Timestamptz
}

type YachtRatingStat struct {
	YachtID       uuid.UUID
	TotalReviews  int32
	AverageRating pgtype.Numeric
	Rating1Count  int32
	Rating2Count  int32
	Rating3Count  int32
	Rating4Count  int32
	Rating5Count  int32
	UpdatedAt     pgtype.Timestamptz
}

type IdempotencyKey struct {
	Key              uuid.UUID
	UserID           uuid.UUID
	Endpoint         string
	RequestHash      string
	ResponseBodyHash pgtype.Text
	Status           string
	ResultBookingID  pgtype.UUID
	ExpiresAt        pgtype.Timestamptz
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

type NotificationJob struct {
	ID          uuid.UUID
	Kind        string
	Topic       string
	EventName   string
	AggregateID string
	RecipientID uuid.UUID
	Payload     []byte
	OccurredAt  pgtype.Timestamptz
	RunAt       pgtype.Timestamptz
	Attempts    int32
	Status      string
	LastError   pgtype.Text
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}
