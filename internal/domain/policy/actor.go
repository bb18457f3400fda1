package policy

import (
	"yacht-charter/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller: who they are and what their role grants.
type Actor struct {
	id       uuid.UUID
	role     user.Role
	resolver CapabilityResolver
}

func NewActor(id uuid.UUID, role user.Role, resolver CapabilityResolver) Actor {
	return Actor{id: id, role: role, resolver: resolver}
}

func (a Actor) ID() uuid.UUID   { return a.id }
func (a Actor) Role() user.Role { return a.role }

func (a Actor) HasCapability(c Capability) bool {
	if a.resolver == nil || a.id == uuid.Nil {
		return false
	}
	return a.resolver.Allows(a.role, c)
}

func (a Actor) Is(id uuid.UUID) bool {
	return a.id != uuid.Nil && a.id == id
}
