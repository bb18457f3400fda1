package yacht

import (
	"strings"
	"unicode/utf8"

	"yacht-charter/internal/pkg/errs"
)

const (
	MinCapacity          = 1
	MaxCapacity          = 100
	MaxTitleLength       = 255
	MaxDescriptionLength = 5000
	MaxLocationLength    = 255
)

var (
	ErrTitleRequired       = errs.Validation("title", "title is required")
	ErrTitleTooLong        = errs.Validation("title", "title must be at most 255 characters")
	ErrDescriptionRequired = errs.Validation("description", "description is required")
	ErrDescriptionTooLong  = errs.Validation("description", "description must be at most 5000 characters")
	ErrLocationRequired    = errs.Validation("location", "location is required")
	ErrLocationTooLong     = errs.Validation("location", "location must be at most 255 characters")
	ErrInvalidCapacity     = errs.Validation("capacity", "capacity must be between 1 and 100")

	ErrYachtNotFound     = errs.Mark(errs.New("yacht not found"), errs.ErrNotFound)
	ErrHasActiveBookings = errs.Mark(errs.New("yacht has pending or confirmed bookings"), errs.ErrPrecondition)
)

type Capacity int

func NewCapacity(v int) (Capacity, error) {
	if v < MinCapacity || v > MaxCapacity {
		return 0, ErrInvalidCapacity
	}
	return Capacity(v), nil
}

func (c Capacity) Int() int { return int(c) }

func boundedText(s string, limit int, required, tooLong error) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", required
	}
	if utf8.RuneCountInString(t) > limit {
		return "", tooLong
	}
	return t, nil
}
