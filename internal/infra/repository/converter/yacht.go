package converter

import (
	"yacht-charter/internal/domain/yacht"
	"yacht-charter/internal/infra/pgquery"
	"yacht-charter/internal/pkg/pgconv"
)

func YachtToCreateParams(y *yacht.Yacht) pgquery.CreateYachtParams {
	return pgquery.CreateYachtParams{
		ID:          y.ID(),
		OwnerID:     y.OwnerID(),
		Title:       y.Title(),
		Description: y.Description(),
		Type:        string(y.Type()),
		Capacity:    int32(y.Capacity().Int()), // #nosec G115 -- capacity is bounded to 1..100
		Location:    y.Location(),
		Status:      string(y.Status()),
		CreatedAt:   pgconv.TimeToPgtype(y.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(y.UpdatedAt()),
	}
}

func YachtToUpdateParams(y *yacht.Yacht) pgquery.UpdateYachtParams {
	return pgquery.UpdateYachtParams{
		ID:          y.ID(),
		Title:       y.Title(),
		Description: y.Description(),
		Type:        string(y.Type()),
		Capacity:    int32(y.Capacity().Int()), // #nosec G115 -- capacity is bounded to 1..100
		Location:    y.Location(),
		Status:      string(y.Status()),
		UpdatedAt:   pgconv.TimeToPgtype(y.UpdatedAt()),
	}
}

func YachtFromRow(row pgquery.Yacht) (*yacht.Yacht, error) {
	t, err := yacht.NewType(row.Type)
	if err != nil {
		return nil, err
	}
	status, err := yacht.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return yacht.Reconstruct(
		row.ID,
		row.OwnerID,
		row.Title,
		row.Description,
		t,
		int(row.Capacity),
		row.Location,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
