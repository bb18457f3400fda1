package response

import (
	"time"

	"yacht-charter/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
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

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return copyInto[BookingResponse](v)
}

func FromBookingList(items []*queries.BookingView) []*BookingResponse {
	return copyList(items, FromBookingView)
}
