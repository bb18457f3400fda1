package queries

import (
	"context"
	"time"

	"yacht-charter/internal/domain/yacht"
	"yacht-charter/internal/infra"
	"yacht-charter/internal/pkg/errs"

	"github.com/google/uuid"
)

type YachtSort string

const (
	SortLatest    YachtSort = "latest"
	SortPriceLow  YachtSort = "price_low"
	SortPriceHigh YachtSort = "price_high"
	SortRating    YachtSort = "rating"
)

var ErrInvalidSort = errs.Validation("sort", "sort must be one of latest, price_low, price_high, rating")

func ParseYachtSort(s string) (YachtSort, error) {
	switch YachtSort(s) {
	case "":
		return SortLatest, nil
	case SortLatest, SortPriceLow, SortPriceHigh, SortRating:
		return YachtSort(s), nil
	default:
		return "", ErrInvalidSort
	}
}

type YachtFilters struct {
	Search      *string
	Type        *yacht.Type
	MinCapacity *int
	Location    *string
	Status      *yacht.Status
	OwnerID     *uuid.UUID
	Sort        YachtSort
}

type YachtSearchParams struct {
	YachtFilters
	// After is only honoured for SortLatest.
	After *Keyset
	Limit int32
}

type YachtReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*YachtView, error)
	Search(ctx context.Context, params YachtSearchParams) ([]*YachtView, error)
}

type YachtQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*YachtView, error)
	Search(ctx context.Context, filters YachtFilters, cursor *Cursor, limit int) ([]*YachtView, *Cursor, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, cursor *Cursor, limit int) ([]*YachtView, *Cursor, error)
}

type yachtQueriesImpl struct {
	store YachtReadStore
}

func NewYachtQueries(store YachtReadStore) YachtQueries {
	return &yachtQueriesImpl{store: store}
}

func (q *yachtQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*YachtView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, yacht.ErrYachtNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *yachtQueriesImpl) Search(ctx context.Context, filters YachtFilters, cursor *Cursor, limit int) ([]*YachtView, *Cursor, error) {
	if filters.Sort == "" {
		filters.Sort = SortLatest
	}
	var after *Keyset
	if filters.Sort == SortLatest {
		var err error
		if after, err = decodeKeyset(cursor); err != nil {
			return nil, nil, err
		}
	}

	limit = ValidateLimit(limit)
	rows, err := q.store.Search(ctx, YachtSearchParams{
		YachtFilters: filters,
		After:        after,
		Limit:        int32(limit + 1), // #nosec G115 -- bounded by MaxListLimit
	})
	if err != nil {
		return nil, nil, err
	}

	items, next := page(rows, limit, func(v *YachtView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
	if filters.Sort != SortLatest {
		next = nil
	}
	return items, next, nil
}

func (q *yachtQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, cursor *Cursor, limit int) ([]*YachtView, *Cursor, error) {
	return q.Search(ctx, YachtFilters{OwnerID: &ownerID, Sort: SortLatest}, cursor, limit)
}
