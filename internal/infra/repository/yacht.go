package repository

import (
	"context"

	"yacht-charter/internal/domain/yacht"
	"yacht-charter/internal/infra"
	"yacht-charter/internal/infra/pgquery"
	"yacht-charter/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type YachtWriteQueries interface {
	CreateYacht(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateYachtParams) error
	UpdateYacht(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateYachtParams) (int64, error)
	DeleteYacht(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (int64, error)
}

type YachtRepository struct {
	queries YachtWriteQueries
	db      pgquery.DBTX
}

func NewYachtRepository(queries YachtWriteQueries, db pgquery.DBTX) *YachtRepository {
	return &YachtRepository{queries: queries, db: db}
}

func (r *YachtRepository) Create(ctx context.Context, y *yacht.Yacht) error {
	if err := r.queries.CreateYacht(ctx, r.db, converter.YachtToCreateParams(y)); err != nil {
		return infra.WrapRepoErr("failed to create yacht", err)
	}
	return nil
}

func (r *YachtRepository) Update(ctx context.Context, y *yacht.Yacht) error {
	n, err := r.queries.UpdateYacht(ctx, r.db, converter.YachtToUpdateParams(y))
	if err != nil {
		return infra.WrapRepoErr("failed to update yacht", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("yacht not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *YachtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteYacht(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete yacht", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("yacht not found", nil, infra.KindNotFound)
	}
	return nil
}
