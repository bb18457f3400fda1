package booking

import "yacht-charter/internal/pkg/errs"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

var ErrInvalidStatus = errs.Validation("status", "unknown booking status")

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// IsTerminal reports states that accept no further transition.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// BlocksCalendar reports whether a booking in this state holds its dates.
func (s Status) BlocksCalendar() bool {
	return s == StatusPending || s == StatusConfirmed
}

// ActiveStatuses are the states that occupy the yacht calendar.
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed}
}

func (s Status) String() string { return string(s) }
