package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"yacht-charter/internal/pkg/errs"
)

var (
	ErrNegativeMoney = errs.Validation("price_per_week", "price cannot be negative")
	ErrInvalidMoney  = errs.Validation("price_per_week", "price must be a decimal with at most 2 fractional digits")
)

// Money is an amount in minor units (cents).
type Money struct {
	cents int64
}

var Zero = Money{}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

// MustMoney is for constants and tests.
func MustMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMoney accepts "1500", "1500.5" and "1500.50".
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		return Money{}, ErrNegativeMoney
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if !isDigits(whole) || (hasFrac && (!isDigits(frac) || len(frac) > 2)) {
		return Money{}, ErrInvalidMoney
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidMoney
	}
	var cents int64
	if hasFrac {
		if len(frac) == 1 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return Money{}, ErrInvalidMoney
		}
	}
	if units > (math.MaxInt64-cents)/100 {
		return Money{}, ErrInvalidMoney
	}
	return NewMoney(units*100 + cents)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (m Money) Cents() int64       { return m.cents }
func (m Money) IsZero() bool       { return m.cents == 0 }
func (m Money) Add(o Money) Money  { return Money{cents: m.cents + o.cents} }
func (m Money) Equal(o Money) bool { return m.cents == o.cents }

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
