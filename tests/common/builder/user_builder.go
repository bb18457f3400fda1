//go:build unit || e2e

package builder

import (
	"yacht-charter/internal/domain/user"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:    uuid.New(),
		Name:  "Test Client",
		Email: "client@example.com",
		Role:  string(user.RoleClient),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	return user.NewUser(u.Name, email, role, DefaultNow)
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsOwner() *UserBuilder {
	u.Role = string(user.RoleOwner)
	u.Email = "owner@example.com"
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = string(user.RoleAdmin)
	u.Email = "admin@example.com"
	return u
}

// Reconstruct keeps the builder ID, for fixtures that need stable identities.
func (u *UserBuilder) Reconstruct() *user.User {
	email, _ := user.NewEmail(u.Email)
	return user.ReconstructUser(u.ID, u.Name, email, user.Role(u.Role), DefaultNow)
}
