package policy

import (
	"yacht-charter/internal/domain/booking"

	"github.com/google/uuid"
)

// BookingSubject is what booking predicates need to know about a booking.
type BookingSubject struct {
	RequesterID  uuid.UUID
	YachtOwnerID uuid.UUID
	Status       booking.Status
	HasReview    bool
}

func BookingSubjectOf(b *booking.Booking, hasReview bool) BookingSubject {
	return BookingSubject{
		RequesterID:  b.RequesterID(),
		YachtOwnerID: b.YachtOwnerID(),
		Status:       b.Status(),
		HasReview:    hasReview,
	}
}

func isBookingAdmin(a Actor) bool {
	return a.HasCapability(CapViewAllBookings)
}

func CanViewBooking(a Actor, b BookingSubject) bool {
	return isBookingAdmin(a) || a.Is(b.RequesterID) || a.Is(b.YachtOwnerID)
}

func CanCreateBooking(a Actor) bool {
	return a.HasCapability(CapCreateBooking)
}

// CanUpdateBooking gates confirm and reject. Only the relationship is
// checked here; the booking itself refuses a transition from the wrong state.
func CanUpdateBooking(a Actor, b BookingSubject) bool {
	return isBookingAdmin(a) || a.Is(b.YachtOwnerID)
}

func CanCompleteBooking(a Actor, b BookingSubject) bool {
	return isBookingAdmin(a) || a.Is(b.YachtOwnerID)
}

func CanCancelBooking(a Actor, b BookingSubject) bool {
	return isBookingAdmin(a) || a.Is(b.RequesterID)
}

func CanDeleteBooking(a Actor) bool {
	return isBookingAdmin(a)
}

// CanListAllBookings gates the admin listing.
func CanListAllBookings(a Actor) bool {
	return isBookingAdmin(a)
}

func CanCreateReview(a Actor, b BookingSubject) bool {
	return a.Is(b.RequesterID) && b.Status == booking.StatusCompleted && !b.HasReview
}
