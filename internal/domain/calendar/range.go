package calendar

import "time"

// Range is a stay interval [Start, End).
type Range struct {
	start time.Time
	end   time.Time
}

func NewRange(start, end time.Time) (Range, error) {
	s, e := Day(start), Day(end)
	if !s.Before(e) {
		return Range{}, ErrInvalidRange
	}
	return Range{start: s, end: e}, nil
}

// RangeOf builds a range from trusted values, such as persisted rows,
// without validating the order.
func RangeOf(start, end time.Time) Range {
	return Range{start: Day(start), end: Day(end)}
}

func (r Range) Start() time.Time { return r.start }
func (r Range) End() time.Time   { return r.end }
func (r Range) Days() int        { return DaysBetween(r.start, r.end) }
func (r Range) Weeks() int       { return WeeksBetween(r.start, r.end) }
func (r Range) IsZero() bool     { return r.start.IsZero() && r.end.IsZero() }

func (r Range) Overlaps(other Range) bool {
	return RangesOverlap(r.start, r.end, other.start, other.end)
}

// Segments splits the range into WeeksBetween consecutive 7-day slices
// starting at Start. The final slice is clipped to End.
func (r Range) Segments() []Range {
	weeks := r.Weeks()
	out := make([]Range, 0, weeks)
	for i := 0; i < weeks; i++ {
		s := AddDays(r.start, i*DaysPerWeek)
		e := AddDays(s, DaysPerWeek)
		if e.After(r.end) {
			e = r.end
		}
		out = append(out, Range{start: s, end: e})
	}
	return out
}

func (r Range) String() string {
	return "[" + FormatDate(r.start) + ", " + FormatDate(r.end) + ")"
}
