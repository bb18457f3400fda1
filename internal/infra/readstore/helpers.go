package readstore

import (
	"yacht-charter/internal/domain/pricing"

	"github.com/jackc/pgx/v5/pgtype"
)

func formatCents(cents int64) string {
	m, err := pricing.NewMoney(cents)
	if err != nil {
		return pricing.Zero.String()
	}
	return m.String()
}

func toPgInt4(v *int) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{Valid: false}
	}
	return pgtype.Int4{Int32: int32(*v), Valid: true} // #nosec G115 -- filter values are small
}

func textOf[T ~string](v *T) pgtype.Text {
	if v == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: string(*v), Valid: true}
}
