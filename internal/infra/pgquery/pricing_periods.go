package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const pricingPeriodColumns = `id, yacht_id, start_date, end_date, price_per_week, created_at, updated_at`

func scanPricingPeriod(row scanner) (PricingPeriod, error) {
	var p PricingPeriod
	err := row.Scan(&p.ID, &p.YachtID, &p.StartDate, &p.EndDate, &p.PricePerWeek, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

const getPricingPeriod = `SELECT ` + pricingPeriodColumns + ` FROM pricing_periods WHERE id = $1`

func (q *Queries) GetPricingPeriod(ctx context.Context, db DBTX, id uuid.UUID) (PricingPeriod, error) {
	return scanPricingPeriod(db.QueryRow(ctx, getPricingPeriod, id))
}

// Ordered by start date, then id, so the first-match resolver sees a stable
// sequence.
const listPricingPeriodsByYacht = `
SELECT ` + pricingPeriodColumns + `
FROM pricing_periods
WHERE yacht_id = $1
ORDER BY start_date, id`

func (q *Queries) ListPricingPeriodsByYacht(ctx context.Context, db DBTX, yachtID uuid.UUID) ([]PricingPeriod, error) {
	rows, err := db.Query(ctx, listPricingPeriodsByYacht, yachtID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanPricingPeriod)
}

const listPricingPeriodsInRange = `
SELECT ` + pricingPeriodColumns + `
FROM pricing_periods
WHERE yacht_id = $1 AND start_date <= $3 AND $2 <= end_date
ORDER BY start_date, id`

type ListPricingPeriodsInRangeParams struct {
	YachtID   uuid.UUID
	StartDate pgtype.Date
	EndDate   pgtype.Date
}

func (q *Queries) ListPricingPeriodsInRange(ctx context.Context, db DBTX, arg ListPricingPeriodsInRangeParams) ([]PricingPeriod, error) {
	rows, err := db.Query(ctx, listPricingPeriodsInRange, arg.YachtID, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanPricingPeriod)
}

const createPricingPeriod = `
INSERT INTO pricing_periods (id, yacht_id, start_date, end_date, price_per_week, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

type CreatePricingPeriodParams struct {
	ID           uuid.UUID
	YachtID      uuid.UUID
	StartDate    pgtype.Date
	EndDate      pgtype.Date
	PricePerWeek pgtype.Numeric
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

func (q *Queries) CreatePricingPeriod(ctx context.Context, db DBTX, arg CreatePricingPeriodParams) error {
	_, err := db.Exec(ctx, createPricingPeriod,
		arg.ID, arg.YachtID, arg.StartDate, arg.EndDate, arg.PricePerWeek, arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

const updatePricingPeriod = `
UPDATE pricing_periods
SET start_date = $2, end_date = $3, price_per_week = $4, updated_at = $5
WHERE id = $1`

type UpdatePricingPeriodParams struct {
	ID           uuid.UUID
	StartDate    pgtype.Date
	EndDate      pgtype.Date
	PricePerWeek pgtype.Numeric
	UpdatedAt    pgtype.Timestamptz
}

func (q *Queries) UpdatePricingPeriod(ctx context.Context, db DBTX, arg UpdatePricingPeriodParams) (int64, error) {
	tag, err := db.Exec(ctx, updatePricingPeriod, arg.ID, arg.StartDate, arg.EndDate, arg.PricePerWeek, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deletePricingPeriod = `DELETE FROM pricing_periods WHERE id = $1`

func (q *Queries) DeletePricingPeriod(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deletePricingPeriod, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
