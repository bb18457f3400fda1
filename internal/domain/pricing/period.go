package pricing

import (
	"time"

	"yacht-charter/internal/domain/calendar"
	"yacht-charter/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPeriodEndBeforeStart = errs.Validation("end_date", "end date must not be before start date")
	ErrPeriodNotFound       = errs.Mark(errs.New("pricing period not found"), errs.ErrNotFound)
)

// Period is an owner-defined seasonal weekly rate over an inclusive
// [start, end] date interval.
type Period struct {
	id           uuid.UUID
	yachtID      uuid.UUID
	start        time.Time
	end          time.Time
	pricePerWeek Money
	createdAt    time.Time
	updatedAt    time.Time
}

func NewPeriod(yachtID uuid.UUID, start, end time.Time, pricePerWeek Money, now time.Time) (*Period, error) {
	p := &Period{
		id:        uuid.New(),
		yachtID:   yachtID,
		createdAt: now,
		updatedAt: now,
	}
	if err := p.Change(start, end, pricePerWeek, now); err != nil {
		return nil, err
	}
	return p, nil
}

func ReconstructPeriod(id, yachtID uuid.UUID, start, end time.Time, pricePerWeek Money, createdAt, updatedAt time.Time) *Period {
	return &Period{
		id:           id,
		yachtID:      yachtID,
		start:        calendar.Day(start),
		end:          calendar.Day(end),
		pricePerWeek: pricePerWeek,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (p *Period) Change(start, end time.Time, pricePerWeek Money, now time.Time) error {
	s, e := calendar.Day(start), calendar.Day(end)
	if e.Before(s) {
		return ErrPeriodEndBeforeStart
	}
	if pricePerWeek.Cents() < 0 {
		return ErrNegativeMoney
	}
	p.start = s
	p.end = e
	p.pricePerWeek = pricePerWeek
	p.updatedAt = now
	return nil
}

// Contains reports whether d falls inside the inclusive period.
func (p *Period) Contains(d time.Time) bool {
	return calendar.RangesOverlap(p.start, p.end, d, d)
}

func (p *Period) ID() uuid.UUID        { return p.id }
func (p *Period) YachtID() uuid.UUID   { return p.yachtID }
func (p *Period) Start() time.Time     { return p.start }
func (p *Period) End() time.Time       { return p.end }
func (p *Period) PricePerWeek() Money  { return p.pricePerWeek }
func (p *Period) CreatedAt() time.Time { return p.createdAt }
func (p *Period) UpdatedAt() time.Time { return p.updatedAt }
