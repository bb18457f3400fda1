package readstore

import (
	"context"

	"yacht-charter/internal/domain/pricing"
	"yacht-charter/internal/infra"
	"yacht-charter/internal/infra/pgquery"
	"yacht-charter/internal/infra/repository/converter"
	"yacht-charter/internal/pkg/pgconv"
	"yacht-charter/internal/usecase/queries"

	"github.com/google/uuid"
)

type PricingReadQueries interface {
	GetPricingPeriod(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.PricingPeriod, error)
	ListPricingPeriodsByYacht(ctx context.Context, db pgquery.DBTX, yachtID uuid.UUID) ([]pgquery.PricingPeriod, error)
}

type PricingReadStore struct {
	queries PricingReadQueries
	db      pgquery.DBTX
}

func NewPricingReadStore(queries PricingReadQueries, db pgquery.DBTX) *PricingReadStore {
	return &PricingReadStore{queries: queries, db: db}
}

func (r *PricingReadStore) ListByYacht(ctx context.Context, yachtID uuid.UUID) ([]*queries.PricingPeriodView, error) {
	periods, err := r.LoadPeriods(ctx, yachtID)
	if err != nil {
		return nil, err
	}
	views := make([]*queries.PricingPeriodView, 0, len(periods))
	for _, p := range periods {
		views = append(views, queries.NewPricingPeriodView(p))
	}
	return views, nil
}

// LoadPeriods returns the yacht's periods ordered by start date.
func (r *PricingReadStore) LoadPeriods(ctx context.Context, yachtID uuid.UUID) ([]*pricing.Period, error) {
	rows, err := r.queries.ListPricingPeriodsByYacht(ctx, r.db, yachtID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pricing periods", err)
	}
	periods, err := converter.PeriodsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert pricing periods", err)
	}
	return periods, nil
}

func (r *PricingReadStore) LoadPeriod(ctx context.Context, id uuid.UUID) (*pricing.Period, error) {
	row, err := r.queries.GetPricingPeriod(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pricing period not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get pricing period", err)
	}
	p, err := converter.PeriodFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert pricing period", err)
	}
	return p, nil
}
