package converter

import (
	"yacht-charter/internal/domain/user"
	"yacht-charter/internal/infra/pgquery"
	"yacht-charter/internal/pkg/pgconv"
)

func UserFromRow(row pgquery.User) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(row.ID, row.Name, email, role, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}
