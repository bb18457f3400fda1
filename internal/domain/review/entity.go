package review

import (
	"time"

	"yacht-charter/internal/domain/booking"
	"yacht-charter/internal/domain/shared/events"
	"yacht-charter/internal/pkg/errs"

	"github.com/google/uuid"
)

// EditWindow is how long after creation the author may change a review.
const EditWindow = 24 * time.Hour

const EventCreated = "review.created"

var (
	ErrInvalidRating       = errs.Validation("rating", "rating must be between 1 and 5")
	ErrCommentTooLong      = errs.Validation("comment", "comment must be at most 2000 characters")
	ErrBookingNotCompleted = errs.Mark(errs.New("booking is not completed"), errs.ErrPrecondition)
	ErrReviewAlreadyExists = errs.Mark(errs.New("review already exists for this booking"), errs.ErrPrecondition)
	ErrReviewNotFound      = errs.Mark(errs.New("review not found"), errs.ErrNotFound)
	ErrBookingMismatch     = errs.Mark(errs.New("review does not belong to booking"), errs.ErrPrecondition)
)

// Review belongs to exactly one booking. The author is not stored; it is
// the booking's requester, see DeriveReviewer.
type Review struct {
	id        uuid.UUID
	bookingID uuid.UUID
	rating    Rating
	comment   Comment
	createdAt time.Time
	updatedAt time.Time

	events.EventRecorder
}

// Created is recorded when a review is posted.
type Created struct {
	events.BaseEvent
	ReviewID   uuid.UUID `json:"review_id"`
	BookingID  uuid.UUID `json:"booking_id"`
	YachtID    uuid.UUID `json:"yacht_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	ReviewerID uuid.UUID `json:"reviewer_id"`
	Rating     int       `json:"rating"`
}

func (e Created) Recipient(p events.Party) (uuid.UUID, bool) {
	switch p {
	case events.PartyOwner:
		return e.OwnerID, e.OwnerID != uuid.Nil
	case events.PartyRequester:
		return e.ReviewerID, e.ReviewerID != uuid.Nil
	}
	return uuid.Nil, false
}

// New creates the review of a completed booking.
func New(b *booking.Booking, rating int, comment string, now time.Time) (*Review, error) {
	if b.Status() != booking.StatusCompleted {
		return nil, ErrBookingNotCompleted
	}
	r, err := NewRating(rating)
	if err != nil {
		return nil, err
	}
	c, err := NewComment(comment)
	if err != nil {
		return nil, err
	}

	rv := &Review{
		id:        uuid.New(),
		bookingID: b.ID(),
		rating:    r,
		comment:   c,
		createdAt: now,
		updatedAt: now,
	}
	rv.Record(Created{
		BaseEvent:  events.NewBaseEvent(EventCreated, rv.id, now),
		ReviewID:   rv.id,
		BookingID:  b.ID(),
		YachtID:    b.YachtID(),
		OwnerID:    b.YachtOwnerID(),
		ReviewerID: b.RequesterID(),
		Rating:     r.Value(),
	})
	return rv, nil
}

func Reconstruct(id, bookingID uuid.UUID, rating int, comment string, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:        id,
		bookingID: bookingID,
		rating:    Rating{value: rating},
		comment:   Comment{text: comment},
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Review) Update(rating int, comment string, now time.Time) error {
	rt, err := NewRating(rating)
	if err != nil {
		return err
	}
	c, err := NewComment(comment)
	if err != nil {
		return err
	}
	r.rating = rt
	r.comment = c
	r.updatedAt = now
	return nil
}

// DeriveReviewer walks Review -> Booking -> requester.
func DeriveReviewer(r *Review, b *booking.Booking) (uuid.UUID, error) {
	if r == nil || b == nil || r.bookingID != b.ID() {
		return uuid.Nil, ErrBookingMismatch
	}
	return b.RequesterID(), nil
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) BookingID() uuid.UUID { return r.bookingID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }
