//go:build unit || e2e

package builder

import (
	"time"

	"yacht-charter/internal/domain/yacht"

	"github.com/google/uuid"
)

type YachtBuilder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Type        string
	Capacity    int
	Location    string
	Status      string
	Now         time.Time
}

func NewYachtBuilder() *YachtBuilder {
	return &YachtBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Title:       "Blue Horizon",
		Description: "42ft sailing yacht with three cabins",
		Type:        string(yacht.TypeSailboat),
		Capacity:    8,
		Location:    "Split, Croatia",
		Status:      string(yacht.StatusAvailable),
		Now:         DefaultNow,
	}
}

func (y *YachtBuilder) With(mutate func(*YachtBuilder)) *YachtBuilder {
	mutate(y)
	return y
}

func (y *YachtBuilder) Details() yacht.Details {
	return yacht.Details{
		Title:       y.Title,
		Description: y.Description,
		Type:        y.Type,
		Capacity:    y.Capacity,
		Location:    y.Location,
		Status:      y.Status,
	}
}

func (y *YachtBuilder) BuildDomain() (*yacht.Yacht, error) {
	return yacht.New(y.OwnerID, y.Details(), y.Now)
}

func (y *YachtBuilder) BuildReconstructed() *yacht.Yacht {
	return yacht.Reconstruct(y.ID, y.OwnerID, y.Title, y.Description, yacht.Type(y.Type), y.Capacity,
		y.Location, yacht.Status(y.Status), y.Now, y.Now)
}

func (y *YachtBuilder) WithOwnerID(id uuid.UUID) *YachtBuilder {
	y.OwnerID = id
	return y
}

func (y *YachtBuilder) WithStatus(s yacht.Status) *YachtBuilder {
	y.Status = string(s)
	return y
}
