package repository

import (
	"context"

	"yacht-charter/internal/domain/user"
	"yacht-charter/internal/infra"
	"yacht-charter/internal/infra/pgquery"
)

type UserWriteQueries interface {
	UpdateUserRole(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateUserRoleParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      pgquery.DBTX
}

func NewUserRepository(queries UserWriteQueries, db pgquery.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) UpdateRole(ctx context.Context, u *user.User) error {
	n, err := r.queries.UpdateUserRole(ctx, r.db, pgquery.UpdateUserRoleParams{ID: u.ID(), Role: u.Role().String()})
	if err != nil {
		return infra.WrapRepoErr("failed to update user role", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
