package request

import (
	"strings"

	"yacht-charter/internal/domain/booking"
	"yacht-charter/internal/pkg/errs"
	"yacht-charter/internal/usecase/commands"
	"yacht-charter/internal/usecase/queries"

	"github.com/google/uuid"
)

var errInvalidYachtID = errs.Validation("yacht_id", "must be a UUID")

type CreateBookingRequest struct {
	YachtID   uuid.UUID `json:"yacht_id" binding:"required"`
	StartDate string    `json:"start_date" binding:"required"`
	EndDate   string    `json:"end_date" binding:"required"`
	Notes     *string   `json:"notes,omitempty"`
}

func (r CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	start, err := parseDate("start_date", r.StartDate)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	end, err := parseDate("end_date", r.EndDate)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	in := commands.CreateBookingInput{YachtID: r.YachtID, StartDate: start, EndDate: end}
	if r.Notes != nil {
		in.Notes = strings.TrimSpace(*r.Notes)
	}
	return in, nil
}

type BookingListQuery struct {
	PageQuery
	Scope   string `form:"scope"`
	Status  string `form:"status"`
	YachtID string `form:"yacht_id"`
}

func (q BookingListQuery) ToFilters() (queries.BookingScope, queries.BookingFilters, error) {
	scope := queries.ScopeMine
	if q.Scope != "" {
		scope = queries.BookingScope(q.Scope)
	}
	var f queries.BookingFilters
	if q.Status != "" {
		st, err := booking.ParseStatus(q.Status)
		if err != nil {
			return "", queries.BookingFilters{}, err
		}
		f.Status = &st
	}
	if q.YachtID != "" {
		id, err := uuid.Parse(q.YachtID)
		if err != nil {
			return "", queries.BookingFilters{}, errInvalidYachtID
		}
		f.YachtID = &id
	}
	return scope, f, nil
}
