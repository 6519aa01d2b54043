package calculation

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgplan/lifeplan/internal/domain"
)

func baseState() domain.FinancialState {
	fs := domain.FinancialState{
		CurrentAge:       30,
		CurrentYear:      2026,
		MonthlyIncome:    decimal.NewFromInt(5000),
		AnnualBonus:      decimal.Zero,
		SalaryGrowthRate: decimal.Zero,
		CPFBalances: domain.CPFBalances{
			Ordinary: decimal.NewFromInt(50000),
			Special:  decimal.NewFromInt(30000),
			Medisave: decimal.NewFromInt(20000),
		},
		CashSavings: decimal.NewFromInt(20000),
		Investments: decimal.NewFromInt(10000),
	}
	fs.RecomputeNetWorth()
	return fs
}

func TestProjectSnapshotCount(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name     string
		startAge int
		expected int
	}{
		{"thirty year old", 30, 94},
		{"newborn", 0, 124},
		{"at the horizon", 123, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := baseState()
			fs.CurrentAge = tt.startAge
			snapshots, err := engine.Project(tt.startAge, fs, nil)
			require.NoError(t, err)
			assert.Len(t, snapshots, tt.expected)
			assert.Equal(t, tt.startAge, snapshots[0].Age)
			assert.Equal(t, 123, snapshots[len(snapshots)-1].Age)
		})
	}

	t.Run("start age out of range", func(t *testing.T) {
		_, err := engine.Project(124, baseState(), nil)
		assert.Error(t, err)
		_, err = engine.Project(-1, baseState(), nil)
		assert.Error(t, err)
	})
}

func TestNetWorthReconciliation(t *testing.T) {
	engine := NewEngine()
	fs := baseState()
	fs.SalaryGrowthRate = decimal.NewFromInt(3)
	fs.AnnualBonus = decimal.NewFromInt(10000)

	modules := []domain.TimelineModule{
		{
			ID: "wedding", Type: domain.ModuleMarriage, Name: "Wedding", Age: 32,
			Costs: domain.FlexibleCost{OneTime: decimal.NewFromInt(30000)},
		},
		{
			ID: "kid", Type: domain.ModuleChild, Name: "First Child", Age: 34,
			Costs: domain.FlexibleCost{OneTime: decimal.NewFromInt(10000), Monthly: decimal.NewFromInt(1500), Duration: 264},
		},
		{
			ID: "flat", Type: domain.ModuleHouse, Name: "4-Room BTO", Age: 33,
			Costs: domain.FlexibleCost{OneTime: decimal.NewFromInt(80000), Monthly: decimal.NewFromInt(1800), Duration: 300, CPFUsage: decimal.NewFromInt(80), Grants: decimal.NewFromInt(30000)},
		},
	}

	snapshots, err := engine.Project(30, fs, modules)
	require.NoError(t, err)

	for _, snap := range snapshots {
		sum := snap.CashSavings + snap.CPFOrdinary + snap.CPFSpecial + snap.CPFMedisave + snap.Investments
		assert.Equal(t, sum, snap.NetWorth, "age %d: net worth must equal the sum of its components", snap.Age)
		cpf := snap.CPFOrdinary + snap.CPFSpecial + snap.CPFMedisave
		assert.Equal(t, cpf, snap.CPFTotal, "age %d: CPF total must equal the sum of accounts", snap.Age)
	}
}

func TestBaselineCashFlowAndGrowth(t *testing.T) {
	engine := NewEngine()
	fs := baseState()

	snapshots, err := engine.Project(30, fs, nil)
	require.NoError(t, err)

	// 5000 * 12 * (1 - 0.37) / 12
	assert.Equal(t, int64(3150), snapshots[0].CashFlow, "take-home after the 37%% contribution")
	assert.Equal(t, int64(5000), snapshots[0].MonthlyIncome)

	for i := 1; i < len(snapshots); i++ {
		assert.GreaterOrEqual(t, snapshots[i].CashSavings, snapshots[i-1].CashSavings,
			"age %d: cash never shrinks without expenses", snapshots[i].Age)
		assert.GreaterOrEqual(t, snapshots[i].CPFTotal, snapshots[i-1].CPFTotal,
			"age %d: CPF only accumulates without housing", snapshots[i].Age)
	}

	// CPF balances accumulate into six figures over a working life.
	final := snapshots[len(snapshots)-1]
	assert.Greater(t, final.CPFTotal, int64(100000))
}

func TestHouseCPFSplit(t *testing.T) {
	engine := NewEngine()
	fs := domain.FinancialState{
		CurrentAge:  30,
		CurrentYear: 2026,
		CPFBalances: domain.CPFBalances{Ordinary: decimal.NewFromInt(50000)},
		CashSavings: decimal.NewFromInt(200000),
	}

	modules := []domain.TimelineModule{
		{
			ID: "flat", Type: domain.ModuleHouse, Name: "Resale Flat", Age: 30,
			Costs: domain.FlexibleCost{
				OneTime:  decimal.NewFromInt(120000),
				Grants:   decimal.NewFromInt(20000),
				CPFUsage: decimal.NewFromInt(80),
			},
		},
	}

	snapshots, err := engine.Project(30, fs, modules)
	require.NoError(t, err)

	// Gross cost 140,000: 80% (112,000) targets the OA but only 50,000 is
	// there; the 62,000 shortfall joins the 28,000 cash portion.
	assert.True(t, modules[0].Costs.CPFDeduction.Equal(decimal.NewFromInt(50000)),
		"CPF deduction capped at the OA balance, got %s", modules[0].Costs.CPFDeduction)
	assert.True(t, modules[0].Costs.CashRequired.Equal(decimal.NewFromInt(90000)),
		"cash requirement absorbs the shortfall, got %s", modules[0].Costs.CashRequired)

	first := snapshots[0]
	assert.Equal(t, int64(0), first.CPFOrdinary, "OA drains to zero, never negative")
	assert.Equal(t, int64(20000), first.GrantsReceived)
	// 200,000 - 90,000 + 20,000 grants
	assert.Equal(t, int64(130000), first.CashSavings)

	for _, snap := range snapshots {
		assert.GreaterOrEqual(t, snap.CPFOrdinary, int64(0), "age %d", snap.Age)
	}
}

func TestSalaryChanges(t *testing.T) {
	engine := NewEngine()

	t.Run("multiply by one is a no-op", func(t *testing.T) {
		fs := baseState()
		plain, err := engine.Project(30, fs, nil)
		require.NoError(t, err)

		withNoop, err := engine.Project(30, fs, []domain.TimelineModule{
			{
				ID: "raise", Type: domain.ModuleCareer, Name: "Sideways Move", Age: 35,
				SalaryChange: &domain.SalaryChange{Type: domain.SalaryMultiply, Amount: decimal.NewFromInt(1)},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, plain, withNoop)
	})

	t.Run("same-age changes apply in placement order", func(t *testing.T) {
		fs := baseState()
		snapshots, err := engine.Project(30, fs, []domain.TimelineModule{
			{
				ID: "job-a", Type: domain.ModuleCareer, Name: "Job A", Age: 35,
				SalaryChange: &domain.SalaryChange{Type: domain.SalaryReplace, Amount: decimal.NewFromInt(6000)},
			},
			{
				ID: "job-b", Type: domain.ModuleCareer, Name: "Job B", Age: 35,
				SalaryChange: &domain.SalaryChange{Type: domain.SalaryReplace, Amount: decimal.NewFromInt(7000)},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7000), snapshots[5].MonthlyIncome, "the later placement wins")
	})

	t.Run("career break zeroes active income", func(t *testing.T) {
		fs := baseState()
		snapshots, err := engine.Project(30, fs, []domain.TimelineModule{
			{
				ID: "break", Type: domain.ModuleRetirement, Name: "Retirement", Age: 40,
				SalaryChange: &domain.SalaryChange{Type: domain.SalaryMultiply, Amount: decimal.Zero},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(0), snapshots[10].MonthlyIncome)
		assert.Equal(t, int64(0), snapshots[50].MonthlyIncome, "growth on zero stays zero")
	})

	t.Run("side hustle adds on top of growth", func(t *testing.T) {
		fs := baseState()
		snapshots, err := engine.Project(30, fs, []domain.TimelineModule{
			{
				ID: "hustle", Type: domain.ModuleCareer, Name: "Side Hustle", Age: 31,
				SalaryChange: &domain.SalaryChange{Type: domain.SalaryAdd, Amount: decimal.NewFromInt(1500)},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(6500), snapshots[1].MonthlyIncome)
	})
}

func TestBabyBonus(t *testing.T) {
	engine := NewEngine()
	fs := baseState()

	snapshots, err := engine.Project(30, fs, []domain.TimelineModule{
		{
			ID: "kid", Type: domain.ModuleChild, Name: "First Child", Age: 33,
			Costs: domain.FlexibleCost{OneTime: decimal.NewFromInt(10000), Monthly: decimal.NewFromInt(1500), Duration: 264},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10000), snapshots[3].GrantsReceived, "flat baby bonus in the birth year")
	assert.Equal(t, int64(0), snapshots[2].GrantsReceived)
	assert.Equal(t, int64(0), snapshots[4].GrantsReceived)
	assert.Equal(t, int64(18000), snapshots[4].AnnualExpenses, "child costs keep running")
}

func TestRunScenario(t *testing.T) {
	engine := NewEngine()
	fs := baseState()
	fs.AnnualBonus = decimal.NewFromInt(10000)

	scenario := &domain.Scenario{
		ID:        "s1",
		Name:      "Baseline",
		Financial: fs,
		Modules: []domain.TimelineModule{
			{
				ID: "retire", Type: domain.ModuleRetirement, Name: "Retirement", Age: 65,
				SalaryChange: &domain.SalaryChange{Type: domain.SalaryMultiply, Amount: decimal.Zero},
			},
		},
	}

	summary, err := engine.RunScenario(context.Background(), scenario)
	require.NoError(t, err)

	assert.Equal(t, "Baseline", summary.Name)
	assert.Len(t, summary.Projection, 94)
	assert.Equal(t, 65, summary.RetirementAge)
	assert.Equal(t, 1, summary.TotalLifeEvents)
	assert.Equal(t, summary.Projection[93].NetWorth, summary.FinalNetWorth)

	// Annual income 70,000 less the 1,000 earned relief:
	// 200 + 350 + 29,000 * 0.07 = 2,580.
	assert.Equal(t, int64(2580), summary.EstimatedAnnualTax)
}

func TestRunScenarioDefaultRetirementAge(t *testing.T) {
	engine := NewEngine()
	scenario := &domain.Scenario{ID: "s1", Name: "No Retirement Module", Financial: baseState()}

	summary, err := engine.RunScenario(context.Background(), scenario)
	require.NoError(t, err)
	assert.Equal(t, StatutoryRetirementAge, summary.RetirementAge)
}

func TestCompareScenarios(t *testing.T) {
	engine := NewEngine()
	fs := baseState()

	richer := fs.Clone()
	richer.MonthlyIncome = decimal.NewFromInt(9000)

	drained := fs.Clone()
	drained.MonthlyIncome = decimal.Zero
	drained.CashSavings = decimal.NewFromInt(5000)

	profile := &domain.CompleteProfile{
		Financial: fs,
		Scenarios: []domain.Scenario{
			{ID: "a", Name: "Baseline", Financial: fs},
			{ID: "b", Name: "Big Promotion", Financial: richer},
			{ID: "c", Name: "No Income", Financial: drained, Modules: []domain.TimelineModule{
				{
					ID: "rent", Type: domain.ModuleCustom, Name: "Rent", Age: 30,
					Costs: domain.FlexibleCost{Monthly: decimal.NewFromInt(2000)},
				},
			}},
		},
	}

	comparison, err := engine.CompareScenarios(context.Background(), profile)
	require.NoError(t, err)

	require.Len(t, comparison.Scenarios, 3)
	assert.Equal(t, "Big Promotion", comparison.Analysis.BestScenarioForNetWorth)
	assert.Equal(t, "Big Promotion", comparison.Analysis.BestScenarioForCashFlow)
	require.Len(t, comparison.Analysis.Warnings, 1)
	assert.Contains(t, comparison.Analysis.Warnings[0], "No Income")
	assert.Positive(t, comparison.Scenarios[2].CashDepletionAge)
}

func TestCrossoverAge(t *testing.T) {
	a := []domain.YearSnapshot{
		{Age: 30, NetWorth: 100}, {Age: 31, NetWorth: 250}, {Age: 32, NetWorth: 500},
	}
	b := []domain.YearSnapshot{
		{Age: 30, NetWorth: 200}, {Age: 31, NetWorth: 240}, {Age: 32, NetWorth: 260},
	}

	assert.Equal(t, 31, CrossoverAge(a, b))
	assert.Equal(t, 0, CrossoverAge(a[:1], b[:1]), "never catching up yields zero")
}

func TestBreakEvenMonthlyIncome(t *testing.T) {
	engine := NewEngine()
	fs := baseState()
	fs.CashSavings = decimal.NewFromInt(1000)

	modules := []domain.TimelineModule{
		{
			ID: "rent", Type: domain.ModuleCustom, Name: "Heavy Rent", Age: 30,
			Costs: domain.FlexibleCost{Monthly: decimal.NewFromInt(3000)},
		},
	}

	income, err := engine.BreakEvenMonthlyIncome(fs, modules)
	require.NoError(t, err)
	assert.True(t, income.IsPositive())

	// The plan stays solvent at the break-even income.
	check := fs.Clone()
	check.MonthlyIncome = income
	snapshots, err := engine.Project(30, check, domain.CloneModules(modules))
	require.NoError(t, err)
	for _, snap := range snapshots {
		assert.GreaterOrEqual(t, snap.CashSavings, int64(0), "age %d", snap.Age)
	}

	// And becomes insolvent well below it.
	check.MonthlyIncome = income.Sub(decimal.NewFromInt(500))
	snapshots, err = engine.Project(30, check, domain.CloneModules(modules))
	require.NoError(t, err)
	depleted := false
	for _, snap := range snapshots {
		if snap.CashSavings < 0 {
			depleted = true
			break
		}
	}
	assert.True(t, depleted, "an income below break-even should deplete cash")
}
