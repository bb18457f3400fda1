package converter

import (
	"yacht-charter/internal/domain/review"
	"yacht-charter/internal/infra/pgquery"
	"yacht-charter/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) pgquery.CreateReviewParams {
	return pgquery.CreateReviewParams{
		ID:        r.ID(),
		BookingID: r.BookingID(),
		Rating:    int16(r.Rating().Value()), // #nosec G115 -- rating is bounded to 1..5
		Comment:   pgconv.OptionalText(r.Comment().String()),
		CreatedAt: pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReviewToUpdateParams(r *review.Review) pgquery.UpdateReviewParams {
	return pgquery.UpdateReviewParams{
		ID:        r.ID(),
		Rating:    int16(r.Rating().Value()), // #nosec G115 -- rating is bounded to 1..5
		Comment:   pgconv.OptionalText(r.Comment().String()),
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReviewFromRow(row pgquery.Review) *review.Review {
	return review.Reconstruct(
		row.ID,
		row.BookingID,
		int(row.Rating),
		pgconv.StringFromPgtype(row.Comment),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
