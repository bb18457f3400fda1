// Package calendar holds the date arithmetic shared by pricing and
// availability. Dates carry no time of day: every value is normalised to
// midnight UTC before comparison.
package calendar

import (
	"time"

	"yacht-charter/internal/pkg/errs"
)

const (
	DateLayout  = "2006-01-02"
	DaysPerWeek = 7

	day = 24 * time.Hour
)

var ErrInvalidRange = errs.Mark(errs.New("start date must be before end date"), errs.ErrValidation)

// Day strips the time of day, keeping the calendar date as seen in t's zone.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return Day(now.In(loc))
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, errs.Wrapf(err, "parse date %q", s)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return Day(t).Format(DateLayout)
}

// DaysBetween counts elapsed days, end exclusive.
func DaysBetween(start, end time.Time) int {
	return int(Day(end).Sub(Day(start)) / day)
}

// WeeksBetween is ceil(DaysBetween / 7); non-positive spans yield 0.
func WeeksBetween(start, end time.Time) int {
	days := DaysBetween(start, end)
	if days <= 0 {
		return 0
	}
	return (days + DaysPerWeek - 1) / DaysPerWeek
}

// RangesOverlap is the inclusive overlap test. Ranges that share a boundary
// day overlap.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !Day(aStart).After(Day(bEnd)) && !Day(bStart).After(Day(aEnd))
}

func AddDays(t time.Time, n int) time.Time {
	return Day(t).AddDate(0, 0, n)
}
