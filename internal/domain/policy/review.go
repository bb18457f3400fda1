package policy

import (
	"time"

	"yacht-charter/internal/domain/review"

	"github.com/google/uuid"
)

type ReviewSubject struct {
	AuthorID  uuid.UUID
	CreatedAt time.Time
}

// CanEditOrDeleteReview allows admins at any time and the author while the
// edit window is open.
func CanEditOrDeleteReview(a Actor, r ReviewSubject, now time.Time) bool {
	if a.HasCapability(CapManageAllReviews) {
		return true
	}
	return a.Is(r.AuthorID) && now.Sub(r.CreatedAt) < review.EditWindow
}
