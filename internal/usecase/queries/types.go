package queries

import (
	"time"

	"github.com/google/uuid"
)

type BookingView struct {
	ID             uuid.UUID `json:"id"`
	YachtID        uuid.UUID `json:"yacht_id"`
	YachtTitle     string    `json:"yacht_title"`
	YachtOwnerID   uuid.UUID `json:"yacht_owner_id"`
	RequesterID    uuid.UUID `json:"requester_id"`
	RequesterName  string    `json:"requester_name"`
	RequesterEmail string    `json:"requester_email"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	Notes          *string   `json:"notes,omitempty"`
	TotalPrice     string    `json:"total_price"`
	Status         string    `json:"status"`
	HasReview      bool      `json:"has_review"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type YachtView struct {
	ID              uuid.UUID `json:"id"`
	OwnerID         uuid.UUID `json:"owner_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Type            string    `json:"type"`
	Capacity        int32     `json:"capacity"`
	Location        string    `json:"location"`
	Status          string    `json:"status"`
	MinPricePerWeek *string   `json:"min_price_per_week,omitempty"`
	AverageRating   float64   `json:"average_rating"`
	TotalReviews    int32     `json:"total_reviews"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type PricingPeriodView struct {
	ID           uuid.UUID `json:"id"`
	YachtID      uuid.UUID `json:"yacht_id"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	PricePerWeek string    `json:"price_per_week"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ReviewView struct {
	ID           uuid.UUID `json:"id"`
	BookingID    uuid.UUID `json:"booking_id"`
	YachtID      uuid.UUID `json:"yacht_id"`
	YachtTitle   string    `json:"yacht_title"`
	ReviewerID   uuid.UUID `json:"reviewer_id"`
	ReviewerName string    `json:"reviewer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type YachtRatingStats struct {
	YachtID       uuid.UUID `json:"yacht_id"`
	TotalReviews  int32     `json:"total_reviews"`
	AverageRating float64   `json:"average_rating"`
	Rating1Count  int32     `json:"rating_1_count"`
	Rating2Count  int32     `json:"rating_2_count"`
	Rating3Count  int32     `json:"rating_3_count"`
	Rating4Count  int32     `json:"rating_4_count"`
	Rating5Count  int32     `json:"rating_5_count"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type UserView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type QuoteSegmentView struct {
	StartDate    string     `json:"start_date"`
	EndDate      string     `json:"end_date"`
	PeriodID     *uuid.UUID `json:"period_id,omitempty"`
	PricePerWeek string     `json:"price_per_week"`
}

type QuoteView struct {
	YachtID    uuid.UUID          `json:"yacht_id"`
	StartDate  string             `json:"start_date"`
	EndDate    string             `json:"end_date"`
	Weeks      int                `json:"weeks"`
	TotalPrice string             `json:"total_price"`
	Segments   []QuoteSegmentView `json:"segments"`
}

type OccupiedRange struct {
	BookingID uuid.UUID `json:"booking_id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Status    string    `json:"status"`
}

type CalendarView struct {
	YachtID  uuid.UUID       `json:"yacht_id"`
	From     string          `json:"from"`
	To       string          `json:"to"`
	Occupied []OccupiedRange `json:"occupied"`
}

type ParticipantView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type MessageView struct {
	ID             uuid.UUID  `json:"id"`
	ConversationID uuid.UUID  `json:"conversation_id"`
	SenderID       uuid.UUID  `json:"sender_id"`
	Body           string     `json:"body"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ConversationSummaryView is an inbox line as seen by one participant.
type ConversationSummaryView struct {
	ID          uuid.UUID       `json:"id"`
	With        ParticipantView `json:"with"`
	LastMessage *MessageView    `json:"last_message,omitempty"`
	UnreadCount int64           `json:"unread_count"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ConversationView struct {
	ID           uuid.UUID         `json:"id"`
	Participants []ParticipantView `json:"participants"`
	Messages     []*MessageView    `json:"messages"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// Includes reports whether userID is one of the two participants.
func (v *ConversationView) Includes(userID uuid.UUID) bool {
	for _, p := range v.Participants {
		if p.ID == userID {
			return true
		}
	}
	return false
}
