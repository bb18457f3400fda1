package user

import (
	"regexp"
	"strings"

	"yacht-charter/internal/pkg/errs"
)

var (
	ErrInvalidEmail = errs.Validation("email", "invalid email format")
	ErrInvalidRole  = errs.Validation("role", "invalid role")
	ErrUserNotFound = errs.Mark(errs.New("user not found"), errs.ErrNotFound)
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}
