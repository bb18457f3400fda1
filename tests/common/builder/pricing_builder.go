//go:build unit || e2e

package builder

import (
	"time"

	"yacht-charter/internal/domain/pricing"

	"github.com/google/uuid"
)

type PeriodBuilder struct {
	ID           uuid.UUID
	YachtID      uuid.UUID
	Start        time.Time
	End          time.Time
	PricePerWeek pricing.Money
	CreatedAt    time.Time
}

// NewPeriodBuilder defaults to a summer season at 2000.00 per week.
func NewPeriodBuilder() *PeriodBuilder {
	return &PeriodBuilder{
		ID:           uuid.New(),
		YachtID:      uuid.New(),
		Start:        date(2024, 6, 1),
		End:          date(2024, 8, 31),
		PricePerWeek: pricing.MustMoney(200000),
		CreatedAt:    DefaultNow,
	}
}

func (p *PeriodBuilder) Build() *pricing.Period {
	return pricing.ReconstructPeriod(p.ID, p.YachtID, p.Start, p.End, p.PricePerWeek, p.CreatedAt, p.CreatedAt)
}

func (p *PeriodBuilder) BuildDomain() (*pricing.Period, error) {
	return pricing.NewPeriod(p.YachtID, p.Start, p.End, p.PricePerWeek, p.CreatedAt)
}

func (p *PeriodBuilder) WithYachtID(id uuid.UUID) *PeriodBuilder {
	p.YachtID = id
	return p
}

func (p *PeriodBuilder) WithDates(start, end time.Time) *PeriodBuilder {
	p.Start = start
	p.End = end
	return p
}

func (p *PeriodBuilder) WithPrice(cents int64) *PeriodBuilder {
	p.PricePerWeek = pricing.MustMoney(cents)
	return p
}
