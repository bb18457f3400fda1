package yacht

import "yacht-charter/internal/pkg/errs"

type Type string

const (
	TypeSailboat  Type = "sailboat"
	TypeMotorboat Type = "motorboat"
	TypeCatamaran Type = "catamaran"
	TypeYacht     Type = "yacht"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeSailboat, TypeMotorboat, TypeCatamaran, TypeYacht:
		return true
	}
	return false
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}

type Status string

const (
	StatusAvailable        Status = "available"
	StatusUnavailable      Status = "unavailable"
	StatusUnderMaintenance Status = "under_maintenance"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusUnavailable, StatusUnderMaintenance:
		return true
	}
	return false
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// AcceptsBookings reports whether new bookings may be placed.
func (s Status) AcceptsBookings() bool { return s == StatusAvailable }

var (
	ErrInvalidType   = errs.Validation("type", "type must be one of sailboat, motorboat, catamaran, yacht")
	ErrInvalidStatus = errs.Validation("status", "status must be one of available, unavailable, under_maintenance")
)
