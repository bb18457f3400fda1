package policy

import "github.com/google/uuid"

type YachtSubject struct {
	OwnerID uuid.UUID
	// ActiveBookings counts pending and confirmed bookings.
	ActiveBookings int
}

func isYachtAdmin(a Actor) bool {
	return a.HasCapability(CapManageAllYachts)
}

func CanCreateYacht(a Actor) bool {
	return a.HasCapability(CapCreateYacht)
}

func CanUpdateYacht(a Actor, y YachtSubject) bool {
	return isYachtAdmin(a) || (a.Is(y.OwnerID) && a.HasCapability(CapUpdateOwnYacht))
}

func CanDeleteYacht(a Actor, y YachtSubject) bool {
	if isYachtAdmin(a) {
		return true
	}
	return a.Is(y.OwnerID) && a.HasCapability(CapDeleteOwnYacht) && y.ActiveBookings == 0
}

func CanManagePricing(a Actor, y YachtSubject) bool {
	return isYachtAdmin(a) || (a.Is(y.OwnerID) && a.HasCapability(CapManageOwnYachtPricing))
}
