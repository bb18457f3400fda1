package booking

import (
	"time"

	"yacht-charter/internal/domain/calendar"

	"github.com/google/uuid"
)

// Slot is the part of an existing booking that availability cares about.
type Slot struct {
	BookingID uuid.UUID
	Start     time.Time
	End       time.Time
	Status    Status
}

func (s Slot) Range() calendar.Range {
	return calendar.RangeOf(s.Start, s.End)
}

// Conflicts returns the slots that block the candidate stay. Only pending
// and confirmed bookings hold dates.
func Conflicts(stay calendar.Range, slots []Slot) []Slot {
	var out []Slot
	for _, s := range slots {
		if !s.Status.BlocksCalendar() {
			continue
		}
		if calendar.RangesOverlap(stay.Start(), stay.End(), s.Start, s.End) {
			out = append(out, s)
		}
	}
	return out
}

func IsAvailable(stay calendar.Range, slots []Slot) bool {
	return len(Conflicts(stay, slots)) == 0
}
