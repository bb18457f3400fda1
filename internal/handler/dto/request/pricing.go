package request

import (
	"time"

	"yacht-charter/internal/usecase/commands"
)

type PricingPeriodRequest struct {
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date" binding:"required"`
	PricePerWeek string `json:"price_per_week" binding:"required"`
}

func (r PricingPeriodRequest) ToInput() (commands.PeriodInput, error) {
	start, err := parseDate("start_date", r.StartDate)
	if err != nil {
		return commands.PeriodInput{}, err
	}
	end, err := parseDate("end_date", r.EndDate)
	if err != nil {
		return commands.PeriodInput{}, err
	}
	return commands.PeriodInput{StartDate: start, EndDate: end, PricePerWeek: r.PricePerWeek}, nil
}

type QuoteQuery struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}

func (q QuoteQuery) Dates() (time.Time, time.Time, error) {
	start, err := parseDate("start_date", q.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDate("end_date", q.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// CalendarQuery defaults both bounds server side when omitted.
type CalendarQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}

func (q CalendarQuery) Dates() (time.Time, time.Time, error) {
	from, err := parseOptionalDate("from", q.From)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := parseOptionalDate("to", q.To)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}
