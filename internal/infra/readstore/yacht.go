package readstore

import (
	"context"

	"yacht-charter/internal/domain/yacht"
	"yacht-charter/internal/infra"
	"yacht-charter/internal/infra/pgquery"
	"yacht-charter/internal/infra/repository/converter"
	"yacht-charter/internal/pkg/pgconv"
	"yacht-charter/internal/pkg/ptr"
	"yacht-charter/internal/usecase/queries"

	"github.com/google/uuid"
)

type YachtReadQueries interface {
	GetYacht(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Yacht, error)
	GetYachtForUpdate(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Yacht, error)
	GetYachtView(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.YachtListRow, error)
	ListYachts(ctx context.Context, db pgquery.DBTX, arg pgquery.ListYachtsParams) ([]pgquery.YachtListRow, error)
}

type YachtReadStore struct {
	queries YachtReadQueries
	db      pgquery.DBTX
}

func NewYachtReadStore(queries YachtReadQueries, db pgquery.DBTX) *YachtReadStore {
	return &YachtReadStore{queries: queries, db: db}
}

func (r *YachtReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.YachtView, error) {
	row, err := r.queries.GetYachtView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("yacht not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get yacht view by id", err)
	}
	return toYachtView(row)
}

func (r *YachtReadStore) Search(ctx context.Context, p queries.YachtSearchParams) ([]*queries.YachtView, error) {
	params := pgquery.ListYachtsParams{
		Search:      pgconv.StringPtrToPgtype(p.Search),
		Type:        textOf(p.Type),
		MinCapacity: toPgInt4(p.MinCapacity),
		Location:    pgconv.StringPtrToPgtype(p.Location),
		Status:      textOf(p.Status),
		OwnerID:     pgconv.UUIDPtrToPgtype(p.OwnerID),
		Sort:        string(p.Sort),
		Limit:       p.Limit,
	}
	if p.After != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(p.After.CreatedAt)
		params.AfterID = pgconv.UUIDToPgtype(p.After.ID)
	}

	rows, err := r.queries.ListYachts(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search yachts", err)
	}
	result := make([]*queries.YachtView, 0, len(rows))
	for _, row := range rows {
		v, err := toYachtView(row)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

func (r *YachtReadStore) Load(ctx context.Context, id uuid.UUID, forUpdate bool) (*yacht.Yacht, error) {
	get := r.queries.GetYacht
	if forUpdate {
		get = r.queries.GetYachtForUpdate
	}
	row, err := get(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("yacht not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load yacht", err)
	}
	y, err := converter.YachtFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert yacht row", err)
	}
	return y, nil
}

func toYachtView(row pgquery.YachtListRow) (*queries.YachtView, error) {
	v := &queries.YachtView{
		ID:           row.ID,
		OwnerID:      row.OwnerID,
		Title:        row.Title,
		Description:  row.Description,
		Type:         row.Type,
		Capacity:     row.Capacity,
		Location:     row.Location,
		Status:       row.Status,
		TotalReviews: row.TotalReviews,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if row.MinPricePerWeek.Valid {
		cents, err := pgconv.CentsFromNumeric(row.MinPricePerWeek)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid yacht min price", err)
		}
		v.MinPricePerWeek = ptr.Of(formatCents(cents))
	}
	avg, err := pgconv.Float64FromNumeric(row.AverageRating)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid yacht average rating", err)
	}
	v.AverageRating = avg
	return v, nil
}
