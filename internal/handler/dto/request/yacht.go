package request

import (
	"strings"

	"yacht-charter/internal/domain/yacht"
	"yacht-charter/internal/pkg/patch"
	"yacht-charter/internal/pkg/ptr"
	"yacht-charter/internal/usecase/queries"
)

type CreateYachtRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Capacity    int    `json:"capacity"`
	Location    string `json:"location" binding:"required"`
	Status      string `json:"status,omitempty"`
}

func (r CreateYachtRequest) ToDetails() yacht.Details {
	return yacht.Details{
		Title:       r.Title,
		Description: r.Description,
		Type:        r.Type,
		Capacity:    r.Capacity,
		Location:    r.Location,
		Status:      r.Status,
	}
}

// UpdateYachtRequest changes only the fields present in the body.
type UpdateYachtRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Type        *string `json:"type,omitempty"`
	Capacity    *int    `json:"capacity,omitempty"`
	Location    *string `json:"location,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (r UpdateYachtRequest) ToDetails(existing *queries.YachtView) yacht.Details {
	return yacht.Details{
		Title:       patch.Coalesce(r.Title, existing.Title),
		Description: patch.Coalesce(r.Description, existing.Description),
		Type:        patch.CoalesceString(r.Type, existing.Type),
		Capacity:    patch.Coalesce(r.Capacity, int(existing.Capacity)),
		Location:    patch.Coalesce(r.Location, existing.Location),
		Status:      patch.CoalesceString(r.Status, existing.Status),
	}
}

type YachtSearchQuery struct {
	PageQuery
	Search      string `form:"search"`
	Type        string `form:"type"`
	MinCapacity *int   `form:"min_capacity"`
	Location    string `form:"location"`
	Status      string `form:"status"`
	Sort        string `form:"sort"`
}

func (q YachtSearchQuery) ToFilters() (queries.YachtFilters, error) {
	sort, err := queries.ParseYachtSort(q.Sort)
	if err != nil {
		return queries.YachtFilters{}, err
	}
	f := queries.YachtFilters{
		Sort:        sort,
		MinCapacity: q.MinCapacity,
		Search:      ptr.NonZero(strings.TrimSpace(q.Search)),
		Location:    ptr.NonZero(strings.TrimSpace(q.Location)),
	}
	if q.Type != "" {
		t, err := yacht.NewType(q.Type)
		if err != nil {
			return queries.YachtFilters{}, err
		}
		f.Type = ptr.Of(t)
	}
	if q.Status != "" {
		st, err := yacht.NewStatus(q.Status)
		if err != nil {
			return queries.YachtFilters{}, err
		}
		f.Status = ptr.Of(st)
	}
	return f, nil
}
