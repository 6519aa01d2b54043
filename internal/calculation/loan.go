package calculation

import (
	"github.com/shopspring/decimal"
)

// Mortgage amortization for house-module instantiation. Defaults follow the
// HDB concessionary loan terms: 2.6% p.a., 25-year maximum tenure, 25% down
// payment (so the loan covers 75% of the price, three times the downpayment).

// LoanTerms describes an amortizing housing loan.
type LoanTerms struct {
	AnnualRate  decimal.Decimal // e.g. 0.026
	TenureYears int
	LoanToValue decimal.Decimal // fraction of price financed, e.g. 0.75
}

// HDBLoanTerms returns the concessionary-rate defaults.
func HDBLoanTerms() LoanTerms {
	return LoanTerms{
		AnnualRate:  decimal.NewFromFloat(0.026),
		TenureYears: 25,
		LoanToValue: decimal.NewFromFloat(0.75),
	}
}

// MonthlyPayment computes the level monthly payment for an amortizing loan of
// the given principal. A zero or negative principal or tenure yields zero; a
// zero interest rate degenerates to straight-line principal repayment rather
// than dividing by zero.
func (lt LoanTerms) MonthlyPayment(principal decimal.Decimal) decimal.Decimal {
	if principal.LessThanOrEqual(decimal.Zero) || lt.TenureYears <= 0 {
		return decimal.Zero
	}
	months := int64(lt.TenureYears) * 12
	if lt.AnnualRate.IsZero() {
		return principal.Div(decimal.NewFromInt(months))
	}

	monthlyRate := lt.AnnualRate.Div(decimal.NewFromInt(12))
	one := decimal.NewFromInt(1)
	// principal * r / (1 - (1+r)^-n)
	growth := one.Add(monthlyRate).Pow(decimal.NewFromInt(months))
	return principal.Mul(monthlyRate).Mul(growth).Div(growth.Sub(one))
}

// FinancedPrincipal returns the loan principal for a purchase price under the
// loan-to-value cap.
func (lt LoanTerms) FinancedPrincipal(price decimal.Decimal) decimal.Decimal {
	if price.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return price.Mul(lt.LoanToValue)
}

// PrincipalFromDownPayment returns the loan principal implied by a cash
// downpayment: the downpayment is the equity share of the price, the loan
// finances the rest. At the default 75% loan-to-value the loan is three
// times the downpayment.
func (lt LoanTerms) PrincipalFromDownPayment(down decimal.Decimal) decimal.Decimal {
	equity := decimal.NewFromInt(1).Sub(lt.LoanToValue)
	if down.LessThanOrEqual(decimal.Zero) || equity.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return lt.FinancedPrincipal(down.Div(equity))
}
