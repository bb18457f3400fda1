//go:build unit || e2e

package builder

import (
	"time"

	"yacht-charter/internal/domain/booking"
	"yacht-charter/internal/domain/calendar"
	"yacht-charter/internal/domain/pricing"
	"yacht-charter/internal/pkg/clock"

	"github.com/google/uuid"
)

// Reference point shared by the domain builders: today is 2024-06-01 and the
// default stay is two weeks in July.
var (
	DefaultNow   = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	DefaultStart = date(2024, 7, 1)
	DefaultEnd   = date(2024, 7, 15)
)

type BookingBuilder struct {
	ID          uuid.UUID
	YachtID     uuid.UUID
	OwnerID     uuid.UUID
	RequesterID uuid.UUID
	Start       time.Time
	End         time.Time
	Notes       string
	Status      booking.Status
	TotalPrice  pricing.Money
	Available   bool
	Now         time.Time
	Location    *time.Location
	Existing    []booking.Slot
	Periods     []*pricing.Period
}

func NewBookingBuilder() *BookingBuilder {
	yachtID := uuid.New()
	return &BookingBuilder{
		ID:          uuid.New(),
		YachtID:     yachtID,
		OwnerID:     uuid.New(),
		RequesterID: uuid.New(),
		Start:       DefaultStart,
		End:         DefaultEnd,
		Notes:       "Family trip",
		Status:      booking.StatusPending,
		TotalPrice:  pricing.MustMoney(400000),
		Available:   true,
		Now:         DefaultNow,
		Location:    time.UTC,
		Periods: []*pricing.Period{
			NewPeriodBuilder().WithYachtID(yachtID).Build(),
		},
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// BuildDomain runs the creation path with all its checks.
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	svc := booking.Services{
		Clock:    clock.NewMockClock(b.Now),
		Location: b.Location,
		Resolver: pricing.NewFirstMatchResolver(),
	}
	y := booking.Yacht{ID: b.YachtID, OwnerID: b.OwnerID, Available: b.Available}
	req := booking.Request{RequesterID: b.RequesterID, Start: b.Start, End: b.End, Notes: b.Notes}
	return booking.New(svc, y, req, b.Existing, b.Periods)
}

// BuildReconstructed skips validation and sets Status directly.
func (b *BookingBuilder) BuildReconstructed() *booking.Booking {
	return booking.Reconstruct(b.ID, b.YachtID, b.RequesterID, b.OwnerID, b.Start, b.End, b.Notes,
		b.TotalPrice, b.Status, b.Now, b.Now)
}

func (b *BookingBuilder) BuildSlot() booking.Slot {
	return booking.Slot{BookingID: b.ID, Start: b.Start, End: b.End, Status: b.Status}
}

func (b *BookingBuilder) WithDates(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithRequesterID(id uuid.UUID) *BookingBuilder {
	b.RequesterID = id
	return b
}

func (b *BookingBuilder) WithOwnerID(id uuid.UUID) *BookingBuilder {
	b.OwnerID = id
	return b
}

func (b *BookingBuilder) WithYachtID(id uuid.UUID) *BookingBuilder {
	b.YachtID = id
	return b
}

func (b *BookingBuilder) WithNow(now time.Time) *BookingBuilder {
	b.Now = now
	return b
}

func (b *BookingBuilder) WithExisting(slots ...booking.Slot) *BookingBuilder {
	b.Existing = append(b.Existing, slots...)
	return b
}

func (b *BookingBuilder) WithPeriods(periods ...*pricing.Period) *BookingBuilder {
	b.Periods = periods
	return b
}

func (b *BookingBuilder) AsUnavailableYacht() *BookingBuilder {
	b.Available = false
	return b
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date is a shorthand for a UTC calendar date.
func Date(y int, m time.Month, d int) time.Time {
	return date(y, m, d)
}

func MustRange(start, end time.Time) calendar.Range {
	r, err := calendar.NewRange(start, end)
	if err != nil {
		panic(err)
	}
	return r
}
