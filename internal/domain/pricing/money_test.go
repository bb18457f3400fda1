//go:build unit

package pricing_test

import (
	"math"
	"testing"

	"yacht-charter/internal/domain/pricing"
	"yacht-charter/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr error
	}{
		{in: "1500", want: 150000},
		{in: "1500.5", want: 150050},
		{in: "1500.05", want: 150005},
		{in: "0", want: 0},
		{in: " 12.30 ", want: 1230},
		{in: "-1", wantErr: pricing.ErrNegativeMoney},
		{in: "1.234", wantErr: pricing.ErrInvalidMoney},
		{in: "1.", wantErr: pricing.ErrInvalidMoney},
		{in: ".5", wantErr: pricing.ErrInvalidMoney},
		{in: "abc", wantErr: pricing.ErrInvalidMoney},
		{in: "", wantErr: pricing.ErrInvalidMoney},
		{in: "92233720368547758.07", want: math.MaxInt64},
		{in: "92233720368547758.08", wantErr: pricing.ErrInvalidMoney},
		{in: "92233720368547759", wantErr: pricing.ErrInvalidMoney},
		{in: "9223372036854775807", wantErr: pricing.ErrInvalidMoney},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := pricing.ParseMoney(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, errs.Is(err, errs.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Cents())
		})
	}
}

func TestMoney(t *testing.T) {
	a := pricing.MustMoney(100050)
	b := pricing.MustMoney(99950)

	assert.Equal(t, "1000.50", a.String())
	assert.Equal(t, "2000.00", a.Add(b).String())
	assert.True(t, pricing.Zero.IsZero())
	assert.True(t, a.Add(b).Equal(pricing.MustMoney(200000)))

	_, err := pricing.NewMoney(-1)
	assert.ErrorIs(t, err, pricing.ErrNegativeMoney)
}
