package request

import (
	"time"

	"yacht-charter/internal/domain/calendar"
	"yacht-charter/internal/pkg/errs"
	"yacht-charter/internal/usecase/queries"
)

// PageQuery is the keyset pagination shared by list endpoints.
type PageQuery struct {
	Limit int    `form:"limit"`
	After string `form:"after"`
}

func (q PageQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}

func (q PageQuery) PageLimit() int {
	return queries.ValidateLimit(q.Limit)
}

func parseDate(field, s string) (time.Time, error) {
	t, err := calendar.ParseDate(s)
	if err != nil {
		return time.Time{}, errs.Validation(field, "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

func parseOptionalDate(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return parseDate(field, s)
}
