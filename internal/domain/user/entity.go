package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the marketplace participant as known to this service. Credentials
// live with the identity provider.
type User struct {
	id        uuid.UUID
	name      string
	email     Email
	role      Role
	createdAt time.Time
}

func NewUser(name string, email Email, role Role, now time.Time) (*User, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &User{
		id:        uuid.New(),
		name:      name,
		email:     email,
		role:      role,
		createdAt: now,
	}, nil
}

func ReconstructUser(id uuid.UUID, name string, email Email, role Role, createdAt time.Time) *User {
	return &User{id: id, name: name, email: email, role: role, createdAt: createdAt}
}

// PromoteToOwner upgrades a client once they list a yacht. It reports
// whether the role changed.
func (u *User) PromoteToOwner() bool {
	if u.role != RoleClient {
		return false
	}
	u.role = RoleOwner
	return true
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
