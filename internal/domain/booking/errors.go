package booking

import "yacht-charter/internal/pkg/errs"

const (
	MinStayDays    = 7
	MaxNotesLength = 1000
)

var (
	ErrYachtUnavailable = errs.Mark(errs.New("yacht is not available for booking"), errs.ErrPrecondition)
	ErrStartInPast      = errs.Validation("start_date", "start date must be today or later")
	ErrStayTooShort     = errs.Validation("end_date", "minimum booking duration is 7 days")
	ErrDatesConflict    = errs.Validation("start_date", "selected dates overlap another booking")
	ErrNotesTooLong     = errs.Validation("notes", "notes must be at most 1000 characters")

	ErrNotPending      = errs.Mark(errs.New("booking is not pending"), errs.ErrPrecondition)
	ErrNotConfirmed    = errs.Mark(errs.New("booking is not confirmed"), errs.ErrPrecondition)
	ErrNotCancellable  = errs.Mark(errs.New("booking cannot be cancelled in its current state"), errs.ErrPrecondition)
	ErrAlreadyStarted  = errs.Mark(errs.New("booking has already started"), errs.ErrPrecondition)
	ErrStatusChanged   = errs.Mark(errs.New("booking status changed concurrently"), errs.ErrPrecondition)
	ErrBookingNotFound = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
)
