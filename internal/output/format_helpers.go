package output

import (
	"github.com/sgplan/lifeplan/pkg/money"
)

// FormatDollars renders a whole-dollar amount with thousands separators.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatDollars(amount int64) string {
	return money.FromWhole(amount).Format()
}
