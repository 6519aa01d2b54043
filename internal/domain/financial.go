package domain

import (
	"github.com/shopspring/decimal"
)

// CPFBalances holds the named CPF sub-accounts. The Retirement Account only
// exists for members past 55, so it stays optional.
type CPFBalances struct {
	Ordinary   decimal.Decimal  `yaml:"ordinary" json:"ordinary"`
	Special    decimal.Decimal  `yaml:"special" json:"special"`
	Medisave   decimal.Decimal  `yaml:"medisave" json:"medisave"`
	Retirement *decimal.Decimal `yaml:"retirement,omitempty" json:"retirement,omitempty"`
}

// Total returns the combined balance across all sub-accounts.
func (b CPFBalances) Total() decimal.Decimal {
	total := b.Ordinary.Add(b.Special).Add(b.Medisave)
	if b.Retirement != nil {
		total = total.Add(*b.Retirement)
	}
	return total
}

// FinancialState is the canonical starting point of a simulation: the member's
// age/year anchor, income profile and opening balances. It is mutated only
// through planner operations; the projection engine treats it as read-only.
type FinancialState struct {
	CurrentAge  int `yaml:"current_age" json:"currentAge"`
	CurrentYear int `yaml:"current_year" json:"currentYear"`

	MonthlyIncome    decimal.Decimal `yaml:"monthly_income" json:"monthlyIncome"`
	AnnualBonus      decimal.Decimal `yaml:"annual_bonus" json:"annualBonus"`
	SalaryGrowthRate decimal.Decimal `yaml:"salary_growth_rate" json:"salaryGrowthRate"` // percent per year

	CPFBalances CPFBalances     `yaml:"cpf_balances" json:"cpfBalances"`
	CashSavings decimal.Decimal `yaml:"cash_savings" json:"cashSavings"`
	Investments decimal.Decimal `yaml:"investments" json:"investments"`
	NetWorth    decimal.Decimal `yaml:"net_worth" json:"netWorth"`

	// MonthlySavings is the source of truth for the savings amount/rate pair.
	// The rate view is always derived from it against MonthlyIncome.
	MonthlySavings decimal.Decimal `yaml:"monthly_savings" json:"monthlySavings"`
}

// RecomputeNetWorth reconciles the derived NetWorth field with the capital
// components and returns the new value.
func (fs *FinancialState) RecomputeNetWorth() decimal.Decimal {
	fs.NetWorth = fs.CashSavings.Add(fs.Investments).Add(fs.CPFBalances.Total())
	return fs.NetWorth
}

// SavingsRate derives the savings-rate view (percent of monthly income) from
// the stored monthly savings amount. Zero income yields a zero rate.
func (fs *FinancialState) SavingsRate() decimal.Decimal {
	if fs.MonthlyIncome.IsZero() {
		return decimal.Zero
	}
	return fs.MonthlySavings.Div(fs.MonthlyIncome).Mul(decimal.NewFromInt(100))
}

// Clone returns a deep copy, detaching the optional Retirement pointer.
func (fs FinancialState) Clone() FinancialState {
	out := fs
	if fs.CPFBalances.Retirement != nil {
		ra := *fs.CPFBalances.Retirement
		out.CPFBalances.Retirement = &ra
	}
	return out
}
