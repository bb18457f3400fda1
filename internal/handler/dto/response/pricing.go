package response

import (
	"time"

	"yacht-charter/internal/usecase/queries"

	"github.com/google/uuid"
)

type PricingPeriodResponse struct {
	ID           uuid.UUID `json:"id"`
	YachtID      uuid.UUID `json:"yacht_id"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	PricePerWeek string    `json:"price_per_week"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromPricingPeriodView(v *queries.PricingPeriodView) *PricingPeriodResponse {
	return copyInto[PricingPeriodResponse](v)
}

func FromPricingPeriodList(items []*queries.PricingPeriodView) []*PricingPeriodResponse {
	return copyList(items, FromPricingPeriodView)
}
