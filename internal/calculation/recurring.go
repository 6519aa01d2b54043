package calculation

import (
	"github.com/sgplan/lifeplan/internal/domain"
	"github.com/shopspring/decimal"
)

// Recurring-cost evaluation. One evaluator serves both the "ongoing" and
// "new this year" passes of the projection loop, for cost and income records
// alike, replacing the legacy monthly/duration special case.

var (
	daysPerYear  = decimal.NewFromInt(365)
	weeksPerYear = decimal.NewFromInt(52)
	monthsPerYr  = decimal.NewFromInt(12)
)

// annualFactor returns how many periods of the given frequency occur per
// year. One-time and unknown frequencies contribute no recurring periods.
// A custom frequency without a positive period length is degenerate and is
// treated as non-recurring rather than dividing by zero.
func annualFactor(freq domain.CostFrequency, customPeriodDays int) decimal.Decimal {
	switch freq {
	case domain.FrequencyDaily:
		return daysPerYear
	case domain.FrequencyWeekly:
		return weeksPerYear
	case domain.FrequencyMonthly:
		return monthsPerYr
	case domain.FrequencyYearly:
		return decimal.NewFromInt(1)
	case domain.FrequencyCustom:
		if customPeriodDays <= 0 {
			return decimal.Zero
		}
		return daysPerYear.Div(decimal.NewFromInt(int64(customPeriodDays)))
	default:
		return decimal.Zero
	}
}

// durationYears converts a repeat count in periods of the given frequency
// into whole years, floored. Monthly durations therefore end after
// duration/12 years, matching the long-standing behavior of stored profiles.
func durationYears(freq domain.CostFrequency, duration, customPeriodDays int) int {
	if duration <= 0 {
		return 0
	}
	switch freq {
	case domain.FrequencyDaily:
		return duration / 365
	case domain.FrequencyWeekly:
		return duration * 7 / 365
	case domain.FrequencyMonthly:
		return duration / 12
	case domain.FrequencyYearly:
		return duration
	case domain.FrequencyCustom:
		if customPeriodDays <= 0 {
			return 0
		}
		return duration * customPeriodDays / 365
	default:
		return 0
	}
}

// costWindow is the inclusive age range over which a normalized cost applies.
type costWindow struct {
	start int
	end   int // inclusive; terminalAge when unbounded
}

// window resolves the active age window of a cost attached to a module placed
// at moduleAge. StartAge/EndAge below the placement age are interpreted as
// offsets from it (stored catalog templates use relative maturity ages);
// values at or above the placement age are absolute.
func window(nc domain.NormalizedCost, moduleAge, terminalAge int) costWindow {
	start := moduleAge
	if nc.StartAge > 0 {
		if nc.StartAge >= moduleAge {
			start = nc.StartAge
		} else {
			start = moduleAge + nc.StartAge
		}
	}

	end := terminalAge
	if nc.EndAge > 0 {
		if nc.EndAge >= moduleAge {
			end = nc.EndAge
		} else {
			end = moduleAge + nc.EndAge
		}
	}
	if nc.Duration > 0 {
		durEnd := start + durationYears(nc.Frequency, nc.Duration, nc.CustomPeriodDays)
		if durEnd < end {
			end = durEnd
		}
	}
	return costWindow{start: start, end: end}
}

// RecurringAnnualAt returns the annualized recurring amount of the cost at
// the given simulated age, honoring frequency, custom period, duration and
// start/end age bounds. Zero outside the active window.
func RecurringAnnualAt(nc domain.NormalizedCost, moduleAge, age, terminalAge int) decimal.Decimal {
	if nc.Recurring.IsZero() {
		return decimal.Zero
	}
	w := window(nc, moduleAge, terminalAge)
	if age < w.start || age > w.end {
		return decimal.Zero
	}
	return nc.Recurring.Mul(annualFactor(nc.Frequency, nc.CustomPeriodDays))
}

// OneTimeAt returns the one-time amount of the cost if it triggers at the
// given simulated age, i.e. at the start of its window.
func OneTimeAt(nc domain.NormalizedCost, moduleAge, age, terminalAge int) decimal.Decimal {
	if nc.OneTime.IsZero() {
		return decimal.Zero
	}
	if age != window(nc, moduleAge, terminalAge).start {
		return decimal.Zero
	}
	return nc.OneTime
}
