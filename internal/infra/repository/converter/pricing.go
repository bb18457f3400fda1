package converter

import (
	"yacht-charter/internal/domain/pricing"
	"yacht-charter/internal/infra/pgquery"
	"yacht-charter/internal/pkg/pgconv"
)

func PeriodToCreateParams(p *pricing.Period) pgquery.CreatePricingPeriodParams {
	return pgquery.CreatePricingPeriodParams{
		ID:           p.ID(),
		YachtID:      p.YachtID(),
		StartDate:    pgconv.DateToPgtype(p.Start()),
		EndDate:      pgconv.DateToPgtype(p.End()),
		PricePerWeek: pgconv.CentsToNumeric(p.PricePerWeek().Cents()),
		CreatedAt:    pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PeriodToUpdateParams(p *pricing.Period) pgquery.UpdatePricingPeriodParams {
	return pgquery.UpdatePricingPeriodParams{
		ID:           p.ID(),
		StartDate:    pgconv.DateToPgtype(p.Start()),
		EndDate:      pgconv.DateToPgtype(p.End()),
		PricePerWeek: pgconv.CentsToNumeric(p.PricePerWeek().Cents()),
		UpdatedAt:    pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PeriodFromRow(row pgquery.PricingPeriod) (*pricing.Period, error) {
	cents, err := pgconv.CentsFromNumeric(row.PricePerWeek)
	if err != nil {
		return nil, err
	}
	price, err := pricing.NewMoney(cents)
	if err != nil {
		return nil, err
	}
	return pricing.ReconstructPeriod(
		row.ID,
		row.YachtID,
		pgconv.DateFromPgtype(row.StartDate),
		pgconv.DateFromPgtype(row.EndDate),
		price,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func PeriodsFromRows(rows []pgquery.PricingPeriod) ([]*pricing.Period, error) {
	out := make([]*pricing.Period, 0, len(rows))
	for _, row := range rows {
		p, err := PeriodFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
