package response

import (
	"time"

	"yacht-charter/internal/usecase/queries"

	"github.com/google/uuid"
)

type YachtResponse struct {
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

func FromYachtView(v *queries.YachtView) *YachtResponse {
	return copyInto[YachtResponse](v)
}

func FromYachtList(items []*queries.YachtView) []*YachtResponse {
	return copyList(items, FromYachtView)
}
