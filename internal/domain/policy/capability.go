package policy

import "yacht-charter/internal/domain/user"

type Capability string

const (
	CapViewYachts      Capability = "view yachts"
	CapCreateYacht     Capability = "create yacht"
	CapUpdateOwnYacht  Capability = "update own yacht"
	CapDeleteOwnYacht  Capability = "delete own yacht"
	CapManageAllYachts Capability = "manage all yachts"

	CapCreateBooking       Capability = "create booking"
	CapViewOwnBookings     Capability = "view own bookings"
	CapCancelOwnBooking    Capability = "cancel own booking"
	CapManageYachtBookings Capability = "manage yacht bookings"
	CapViewAllBookings     Capability = "view all bookings"

	CapCreateReview     Capability = "create review"
	CapViewReviews      Capability = "view reviews"
	CapDeleteOwnReview  Capability = "delete own review"
	CapManageAllReviews Capability = "manage all reviews"

	CapManageOwnYachtPricing Capability = "manage own yacht pricing"

	CapSendMessage      Capability = "send message"
	CapViewOwnMessages  Capability = "view own messages"
	CapDeleteOwnMessage Capability = "delete own message"
)

func AllCapabilities() []Capability {
	return []Capability{
		CapViewYachts, CapCreateYacht, CapUpdateOwnYacht, CapDeleteOwnYacht, CapManageAllYachts,
		CapCreateBooking, CapViewOwnBookings, CapCancelOwnBooking, CapManageYachtBookings, CapViewAllBookings,
		CapCreateReview, CapViewReviews, CapDeleteOwnReview, CapManageAllReviews,
		CapManageOwnYachtPricing,
		CapSendMessage, CapViewOwnMessages, CapDeleteOwnMessage,
	}
}

func clientCapabilities() []Capability {
	return []Capability{
		CapViewYachts,
		CapCreateYacht,
		CapCreateBooking,
		CapViewOwnBookings,
		CapCancelOwnBooking,
		CapCreateReview,
		CapViewReviews,
		CapDeleteOwnReview,
		CapSendMessage,
		CapViewOwnMessages,
		CapDeleteOwnMessage,
	}
}

// DefaultRoleCapabilities is the role table loaded into the RBAC enforcer.
// Owners inherit everything a client holds.
func DefaultRoleCapabilities() map[user.Role][]Capability {
	owner := append(clientCapabilities(),
		CapUpdateOwnYacht,
		CapDeleteOwnYacht,
		CapManageYachtBookings,
		CapManageOwnYachtPricing,
	)
	return map[user.Role][]Capability{
		user.RoleClient: clientCapabilities(),
		user.RoleOwner:  owner,
		user.RoleAdmin:  AllCapabilities(),
	}
}

// CapabilityResolver answers whether a role grants a capability.
type CapabilityResolver interface {
	Allows(role user.Role, capability Capability) bool
}

// StaticResolver serves DefaultRoleCapabilities from memory.
type StaticResolver map[user.Role]map[Capability]struct{}

func NewStaticResolver(table map[user.Role][]Capability) StaticResolver {
	r := make(StaticResolver, len(table))
	for role, caps := range table {
		set := make(map[Capability]struct{}, len(caps))
		for _, c := range caps {
			set[c] = struct{}{}
		}
		r[role] = set
	}
	return r
}

func (r StaticResolver) Allows(role user.Role, capability Capability) bool {
	_, ok := r[role][capability]
	return ok
}
