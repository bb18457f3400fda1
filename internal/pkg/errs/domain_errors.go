package errs

import (
	"errors"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Error classes. Concrete errors are marked with one of these so the
// transport layer can map them without knowing every sentinel.
var (
	ErrValidation   = errors.New("validation failed")
	ErrForbidden    = errors.New("action not permitted")
	ErrPrecondition = errors.New("precondition failed")
	ErrNotFound     = errors.New("not found")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, f := range fe {
		if f.Field == "" {
			parts = append(parts, f.Message)
			continue
		}
		parts = append(parts, f.Field+": "+f.Message)
	}
	return strings.Join(parts, "; ")
}

// Validation returns a validation-class error for a single field.
func Validation(field, msg string) error {
	return cr.Mark(FieldErrors{{Field: field, Message: msg}}, ErrValidation)
}

// Fields extracts field-level messages from a validation error chain.
func Fields(err error) FieldErrors {
	var fe FieldErrors
	if cr.As(err, &fe) {
		return fe
	}
	return nil
}
