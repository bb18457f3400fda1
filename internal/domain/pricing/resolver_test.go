//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"yacht-charter/internal/domain/calendar"
	"yacht-charter/internal/domain/pricing"
	"yacht-charter/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func period(start, end time.Time, cents int64) *pricing.Period {
	return builder.NewPeriodBuilder().WithDates(start, end).WithPrice(cents).Build()
}

func stay(start, end time.Time) calendar.Range {
	return builder.MustRange(start, end)
}

func TestFirstMatchResolver_Quote(t *testing.T) {
	resolver := pricing.NewFirstMatchResolver()
	winter := period(builder.Date(2024, 1, 1), builder.Date(2024, 3, 31), 100000)
	spring := period(builder.Date(2024, 4, 1), builder.Date(2024, 6, 30), 150000)

	tests := []struct {
		name    string
		periods []*pricing.Period
		stay    calendar.Range
		want    string
	}{
		{
			name:    "two weeks spanning seasons",
			periods: []*pricing.Period{winter, spring},
			stay:    stay(builder.Date(2024, 3, 25), builder.Date(2024, 4, 8)),
			want:    "2500.00",
		},
		{
			name:    "season order in input does not matter",
			periods: []*pricing.Period{spring, winter},
			stay:    stay(builder.Date(2024, 3, 25), builder.Date(2024, 4, 8)),
			want:    "2500.00",
		},
		{
			name:    "no periods",
			periods: nil,
			stay:    stay(builder.Date(2024, 3, 25), builder.Date(2024, 4, 8)),
			want:    "0.00",
		},
		{
			name:    "segment outside every period adds nothing",
			periods: []*pricing.Period{spring},
			stay:    stay(builder.Date(2024, 6, 24), builder.Date(2024, 7, 8)),
			want:    "1500.00",
		},
		{
			name:    "partial final week is charged a full week",
			periods: []*pricing.Period{spring},
			stay:    stay(builder.Date(2024, 4, 1), builder.Date(2024, 4, 10)),
			want:    "3000.00",
		},
		{
			name:    "period end is inclusive",
			periods: []*pricing.Period{winter},
			stay:    stay(builder.Date(2024, 3, 31), builder.Date(2024, 4, 7)),
			want:    "1000.00",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := resolver.Quote(tt.periods, tt.stay)
			assert.Equal(t, tt.want, q.Total.String())
			assert.Len(t, q.Segments, tt.stay.Weeks())
		})
	}
}

func TestFirstMatchResolver_TieBreak(t *testing.T) {
	early := period(builder.Date(2024, 6, 1), builder.Date(2024, 8, 31), 200000)
	late := period(builder.Date(2024, 7, 1), builder.Date(2024, 7, 31), 900000)
	s := stay(builder.Date(2024, 7, 1), builder.Date(2024, 7, 15))

	for _, order := range [][]*pricing.Period{{early, late}, {late, early}} {
		q := pricing.NewFirstMatchResolver().Quote(order, s)
		assert.Equal(t, "4000.00", q.Total.String())
		for _, seg := range q.Segments {
			require.NotNil(t, seg.PeriodID)
			assert.Equal(t, early.ID(), *seg.PeriodID)
		}
	}
}

func TestFirstMatchResolver_SegmentBreakdown(t *testing.T) {
	winter := period(builder.Date(2024, 1, 1), builder.Date(2024, 3, 31), 100000)
	q := pricing.NewFirstMatchResolver().Quote([]*pricing.Period{winter}, stay(builder.Date(2024, 3, 25), builder.Date(2024, 4, 8)))

	require.Len(t, q.Segments, 2)
	assert.Equal(t, winter.ID(), *q.Segments[0].PeriodID)
	assert.Equal(t, "1000.00", q.Segments[0].Price.String())
	assert.Nil(t, q.Segments[1].PeriodID)
	assert.True(t, q.Segments[1].Price.IsZero())
	assert.Equal(t, builder.Date(2024, 4, 1), q.Segments[1].Start)
}

func TestTotal(t *testing.T) {
	p := builder.NewPeriodBuilder().WithYachtID(uuid.New()).Build()
	got := pricing.Total([]*pricing.Period{p}, stay(builder.DefaultStart, builder.DefaultEnd))
	assert.Equal(t, "4000.00", got.String())
}
