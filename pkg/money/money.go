// Package money wraps shopspring/decimal with the whole-dollar display
// helpers the formatters share.
package money

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// FromWhole creates a new Money instance from a whole-dollar amount
func FromWhole(value int64) Money {
	return Money{decimal.NewFromInt(value)}
}

// Whole rounds to the nearest whole dollar and returns it as an int64
func (m Money) Whole() int64 {
	return m.Decimal.Round(0).IntPart()
}

// String returns the string representation fixed to cents
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as whole dollars with thousands separators,
// e.g. -1234567 -> "-$1,234,567".
func (m Money) Format() string {
	n := m.Whole()
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-$" + s
	}
	return "$" + s
}
