package repository

import (
	"context"

	"yacht-charter/internal/domain/pricing"
	"yacht-charter/internal/infra"
	"yacht-charter/internal/infra/pgquery"
	"yacht-charter/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type PricingWriteQueries interface {
	CreatePricingPeriod(ctx context.Context, db pgquery.DBTX, arg pgquery.CreatePricingPeriodParams) error
	UpdatePricingPeriod(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdatePricingPeriodParams) (int64, error)
	DeletePricingPeriod(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (int64, error)
}

type PricingRepository struct {
	queries PricingWriteQueries
	db      pgquery.DBTX
}

func NewPricingRepository(queries PricingWriteQueries, db pgquery.DBTX) *PricingRepository {
	return &PricingRepository{queries: queries, db: db}
}

func (r *PricingRepository) Create(ctx context.Context, p *pricing.Period) error {
	if err := r.queries.CreatePricingPeriod(ctx, r.db, converter.PeriodToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create pricing period", err)
	}
	return nil
}

func (r *PricingRepository) Update(ctx context.Context, p *pricing.Period) error {
	n, err := r.queries.UpdatePricingPeriod(ctx, r.db, converter.PeriodToUpdateParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to update pricing period", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("pricing period not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PricingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeletePricingPeriod(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete pricing period", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("pricing period not found", nil, infra.KindNotFound)
	}
	return nil
}
