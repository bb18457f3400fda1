//go:build unit || e2e

package builder

import (
	"time"

	"yacht-charter/internal/domain/booking"
	"yacht-charter/internal/domain/review"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ID        uuid.UUID
	Booking   *BookingBuilder
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// NewReviewBuilder reviews a completed booking.
func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ID:        uuid.New(),
		Booking:   NewBookingBuilder().WithStatus(booking.StatusCompleted),
		Rating:    5,
		Comment:   "Excellent boat and crew!",
		CreatedAt: date(2024, 7, 16),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) BuildDomain() (*review.Review, error) {
	return review.New(r.Booking.BuildReconstructed(), r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildReconstructed() *review.Review {
	return review.Reconstruct(r.ID, r.Booking.ID, r.Rating, r.Comment, r.CreatedAt, r.CreatedAt)
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) WithCreatedAt(t time.Time) *ReviewBuilder {
	r.CreatedAt = t
	return r
}
