package pricing

import (
	"slices"
	"time"

	"yacht-charter/internal/domain/calendar"

	"github.com/google/uuid"
)

// Segment is one weekly slice of a stay and the rate applied to it.
type Segment struct {
	Start    time.Time
	End      time.Time
	PeriodID *uuid.UUID
	Price    Money
}

type Quote struct {
	Total    Money
	Segments []Segment
}

type Resolver interface {
	Quote(periods []*Period, stay calendar.Range) Quote
}

// FirstMatchResolver prices each segment with the earliest-starting period
// that contains the segment start. Segments outside every period are free.
type FirstMatchResolver struct{}

func NewFirstMatchResolver() *FirstMatchResolver {
	return &FirstMatchResolver{}
}

func (r *FirstMatchResolver) Quote(periods []*Period, stay calendar.Range) Quote {
	ordered := slices.Clone(periods)
	slices.SortStableFunc(ordered, func(a, b *Period) int {
		return a.Start().Compare(b.Start())
	})

	segments := stay.Segments()
	q := Quote{Segments: make([]Segment, 0, len(segments))}
	for _, seg := range segments {
		s := Segment{Start: seg.Start(), End: seg.End()}
		if p := firstContaining(ordered, seg.Start()); p != nil {
			id := p.ID()
			s.PeriodID = &id
			s.Price = p.PricePerWeek()
		}
		q.Total = q.Total.Add(s.Price)
		q.Segments = append(q.Segments, s)
	}
	return q
}

// Total is Quote without the breakdown.
func Total(periods []*Period, stay calendar.Range) Money {
	return NewFirstMatchResolver().Quote(periods, stay).Total
}

func firstContaining(ordered []*Period, d time.Time) *Period {
	for _, p := range ordered {
		if p.Contains(d) {
			return p
		}
	}
	return nil
}
