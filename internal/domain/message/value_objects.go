package message

import (
	"strings"
	"unicode/utf8"

	"yacht-charter/internal/pkg/errs"
)

const MaxBodyLength = 1000

var (
	ErrEmptyBody   = errs.Validation("message", "message is required")
	ErrBodyTooLong = errs.Validation("message", "message must be at most 1000 characters")
)

type Body struct {
	text string
}

func NewBody(s string) (Body, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Body{}, ErrEmptyBody
	}
	if utf8.RuneCountInString(t) > MaxBodyLength {
		return Body{}, ErrBodyTooLong
	}
	return Body{text: t}, nil
}

func (b Body) String() string { return b.text }

// Preview cuts the body to n runes, marking the cut with an ellipsis.
func (b Body) Preview(n int) string {
	if utf8.RuneCountInString(b.text) <= n {
		return b.text
	}
	return string([]rune(b.text)[:n]) + "..."
}
