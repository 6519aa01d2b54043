package calculation

import (
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Resident progressive rates (YA 2024 schedule) for all projection years;
//    no indexing of brackets to future years.
//
// 2. Tax is informational output only: the projection cash-flow series is
//    tax-exclusive, so the figure feeds summaries and reports, never the
//    year-by-year cash balance.

// TaxBracket is one band of the resident income-tax schedule. Max is the
// upper bound of chargeable income covered by the band.
type TaxBracket struct {
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// IncomeTaxCalculator computes Singapore resident income tax.
type IncomeTaxCalculator struct {
	Brackets     []TaxBracket
	EarnedRelief decimal.Decimal
}

// NewIncomeTaxCalculator returns the resident schedule.
func NewIncomeTaxCalculator() *IncomeTaxCalculator {
	return &IncomeTaxCalculator{
		EarnedRelief: decimal.NewFromInt(1000),
		Brackets: []TaxBracket{
			{decimal.NewFromInt(20000), decimal.Zero},
			{decimal.NewFromInt(30000), decimal.NewFromFloat(0.02)},
			{decimal.NewFromInt(40000), decimal.NewFromFloat(0.035)},
			{decimal.NewFromInt(80000), decimal.NewFromFloat(0.07)},
			{decimal.NewFromInt(120000), decimal.NewFromFloat(0.115)},
			{decimal.NewFromInt(160000), decimal.NewFromFloat(0.15)},
			{decimal.NewFromInt(200000), decimal.NewFromFloat(0.18)},
			{decimal.NewFromInt(240000), decimal.NewFromFloat(0.19)},
			{decimal.NewFromInt(280000), decimal.NewFromFloat(0.195)},
			{decimal.NewFromInt(320000), decimal.NewFromFloat(0.20)},
			{decimal.NewFromInt(500000), decimal.NewFromFloat(0.22)},
			{decimal.NewFromInt(1000000), decimal.NewFromFloat(0.23)},
			{decimal.NewFromInt(999999999), decimal.NewFromFloat(0.24)},
		},
	}
}

// IncomeTax computes the tax on annual income after the given reliefs.
// Chargeable income at or below the tax-free threshold yields zero.
func (tc *IncomeTaxCalculator) IncomeTax(annualIncome, reliefs decimal.Decimal) decimal.Decimal {
	chargeable := annualIncome.Sub(reliefs)
	if chargeable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	var tax decimal.Decimal
	prev := decimal.Zero
	for _, b := range tc.Brackets {
		inBracket := decimal.Min(chargeable, b.Max).Sub(prev)
		if inBracket.GreaterThan(decimal.Zero) {
			tax = tax.Add(inBracket.Mul(b.Rate))
		}
		if chargeable.LessThanOrEqual(b.Max) {
			break
		}
		prev = b.Max
	}
	return tax
}
