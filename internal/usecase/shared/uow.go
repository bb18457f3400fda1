package shared

import (
	"context"
	"time"

	"yacht-charter/internal/domain/booking"
	"yacht-charter/internal/domain/calendar"
	"yacht-charter/internal/domain/message"
	"yacht-charter/internal/domain/pricing"
	"yacht-charter/internal/domain/review"
	"yacht-charter/internal/domain/user"
	"yacht-charter/internal/domain/yacht"
	"yacht-charter/internal/infra/pgquery"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pgquery.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db pgquery.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx exposes repositories bound to one open transaction.
type Tx interface {
	Yachts() YachtRepository
	Bookings() BookingRepository
	Pricing() PricingRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Conversations() ConversationRepository
	Messages() MessageRepository
	Reads() CommandReads
	DB() pgquery.DBTX
}

// CommandReads loads aggregates for the write side. Missing rows come back
// as the domain's not-found error.
type CommandReads interface {
	YachtByID(ctx context.Context, id uuid.UUID) (*yacht.Yacht, error)
	// YachtForUpdate locks the yacht row until the transaction ends.
	YachtForUpdate(ctx context.Context, id uuid.UUID) (*yacht.Yacht, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	BookingForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ActiveSlots(ctx context.Context, yachtID uuid.UUID, within calendar.Range) ([]booking.Slot, error)
	CountActiveBookings(ctx context.Context, yachtID uuid.UUID) (int, error)
	PeriodsForYacht(ctx context.Context, yachtID uuid.UUID) ([]*pricing.Period, error)
	PeriodByID(ctx context.Context, id uuid.UUID) (*pricing.Period, error)
	ReviewByID(ctx context.Context, id uuid.UUID) (*review.Review, error)
	ReviewExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error)
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UserForUpdate(ctx context.Context, id uuid.UUID) (*user.User, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	ConversationByID(ctx context.Context, id uuid.UUID) (*message.Conversation, error)
	MessageByID(ctx context.Context, id uuid.UUID) (*message.Message, error)
}

type YachtRepository interface {
	Create(ctx context.Context, y *yacht.Yacht) error
	Update(ctx context.Context, y *yacht.Yacht) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	// UpdateStatus persists a transition; from is the status the row must
	// still hold.
	UpdateStatus(ctx context.Context, b *booking.Booking, from booking.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PricingRepository interface {
	Create(ctx context.Context, p *pricing.Period) error
	Update(ctx context.Context, p *pricing.Period) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, rev *review.Review) error
	Update(ctx context.Context, rev *review.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RatingStatsRepository interface {
	RecalcYachtRatingStats(ctx context.Context, yachtID uuid.UUID) error
}

type IdempotencyRepository interface {
	// TryInsert reports whether the key was newly reserved.
	TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	ClaimExpired(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, key, userID uuid.UUID, resultHash string, bookingID uuid.UUID) error
	Release(ctx context.Context, key, userID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, job NotificationJob) error
}

type UserRepository interface {
	UpdateRole(ctx context.Context, u *user.User) error
}

type ConversationRepository interface {
	// Open inserts c unless its pair already has a conversation, and returns
	// the stored one either way.
	Open(ctx context.Context, c *message.Conversation) (*message.Conversation, error)
	Touch(ctx context.Context, c *message.Conversation) error
}

type MessageRepository interface {
	Create(ctx context.Context, m *message.Message) error
	MarkRead(ctx context.Context, m *message.Message) error
	// MarkConversationRead stamps every unread message not sent by readerID.
	MarkConversationRead(ctx context.Context, conversationID, readerID uuid.UUID, at time.Time) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
