package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCPFBalancesTotal(t *testing.T) {
	b := CPFBalances{
		Ordinary: decimal.NewFromInt(50000),
		Special:  decimal.NewFromInt(30000),
		Medisave: decimal.NewFromInt(20000),
	}
	assert.True(t, b.Total().Equal(decimal.NewFromInt(100000)))

	ra := decimal.NewFromInt(150000)
	b.Retirement = &ra
	assert.True(t, b.Total().Equal(decimal.NewFromInt(250000)), "retirement account joins the total when present")
}

func TestRecomputeNetWorth(t *testing.T) {
	fs := FinancialState{
		CashSavings: decimal.NewFromInt(20000),
		Investments: decimal.NewFromInt(10000),
		CPFBalances: CPFBalances{
			Ordinary: decimal.NewFromInt(50000),
			Special:  decimal.NewFromInt(30000),
			Medisave: decimal.NewFromInt(20000),
		},
		NetWorth: decimal.NewFromInt(999), // stale
	}

	got := fs.RecomputeNetWorth()
	assert.True(t, got.Equal(decimal.NewFromInt(130000)))
	assert.True(t, fs.NetWorth.Equal(decimal.NewFromInt(130000)))
}

func TestSavingsRateDerivedFromAmount(t *testing.T) {
	fs := FinancialState{
		MonthlyIncome:  decimal.NewFromInt(5000),
		MonthlySavings: decimal.NewFromInt(1250),
	}
	assert.True(t, fs.SavingsRate().Equal(decimal.NewFromInt(25)))

	fs.MonthlyIncome = decimal.Zero
	assert.True(t, fs.SavingsRate().IsZero(), "zero income yields a zero rate, not a division error")
}

func TestFinancialStateCloneDetachesRetirement(t *testing.T) {
	ra := decimal.NewFromInt(100000)
	fs := FinancialState{CPFBalances: CPFBalances{Retirement: &ra}}

	clone := fs.Clone()
	*clone.CPFBalances.Retirement = decimal.NewFromInt(1)

	assert.True(t, fs.CPFBalances.Retirement.Equal(decimal.NewFromInt(100000)))
}

func TestScenarioCloneIsDeep(t *testing.T) {
	s := Scenario{
		ID:    "s1",
		Name:  "Base",
		Color: ScenarioColors[0],
		Modules: []TimelineModule{
			{ID: "m1", Type: ModuleCar, Age: 35},
		},
		Financial: FinancialState{CashSavings: decimal.NewFromInt(1000)},
	}

	clone := s.Clone()
	clone.Modules[0].Age = 99
	clone.Financial.CashSavings = decimal.NewFromInt(0)

	assert.Equal(t, 35, s.Modules[0].Age)
	assert.True(t, s.Financial.CashSavings.Equal(decimal.NewFromInt(1000)))
}

func TestScenarioColorsPalette(t *testing.T) {
	assert.Len(t, ScenarioColors, 8)
	seen := map[string]bool{}
	for _, c := range ScenarioColors {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Color)
		assert.False(t, seen[c.ID], "palette IDs must be unique")
		seen[c.ID] = true
	}
}
