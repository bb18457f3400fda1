package policy

import "yacht-charter/internal/pkg/errs"

// Denied reports that the actor may not perform action.
func Denied(action string) error {
	return errs.Mark(errs.Newf("not allowed to %s", action), errs.ErrForbidden)
}
