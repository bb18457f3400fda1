package readstore

import (
	"context"

	"yacht-charter/internal/domain/user"
	"yacht-charter/internal/infra"
	"yacht-charter/internal/infra/pgquery"
	"yacht-charter/internal/infra/repository/converter"
	"yacht-charter/internal/pkg/pgconv"
	"yacht-charter/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUser(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.User, error)
	GetUserForUpdate(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.User, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      pgquery.DBTX
}

func NewUserReadStore(queries UserReadQueries, db pgquery.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.GetUser(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.UserView{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
		Role:  row.Role,
	}, nil
}

func (r *UserReadStore) Load(ctx context.Context, id uuid.UUID, forUpdate bool) (*user.User, error) {
	get := r.queries.GetUser
	if forUpdate {
		get = r.queries.GetUserForUpdate
	}
	row, err := get(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load user", err)
	}
	u, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert user row", err)
	}
	return u, nil
}
