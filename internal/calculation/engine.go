package calculation

import (
	"context"
	"fmt"

	"github.com/sgplan/lifeplan/internal/domain"
	"github.com/shopspring/decimal"
)

// TerminalAge is the fixed projection horizon: a practical upper bound on
// human lifespan for planning purposes, not a mortality model.
const TerminalAge = 123

// BabyBonus is the flat cash gift credited in the year a child module occurs,
// independent of the module's declared grants.
var BabyBonus = decimal.NewFromInt(10000)

// StatutoryRetirementAge is the fallback retirement age reported in summaries
// when a timeline carries no retirement module.
const StatutoryRetirementAge = 63

// Engine is the year-by-year projection simulator. It is a pure function of
// its inputs: it performs no I/O and carries no mutable state between runs,
// so a single instance may serve many scenarios.
type Engine struct {
	CPF     *CPFRates
	TaxCalc *IncomeTaxCalculator
	Loan    LoanTerms
	Logger  Logger

	// ApplyBonusInterest enables the extra-interest tiers on the first $60k
	// of combined CPF balances. Off by default; the base schedule matches
	// the published per-account rates.
	ApplyBonusInterest bool
}

// NewEngine creates a projection engine with the statutory rate tables.
func NewEngine() *Engine {
	return &Engine{
		CPF:     NewCPFRates(),
		TaxCalc: NewIncomeTaxCalculator(),
		Loan:    HDBLoanTerms(),
		Logger:  NopLogger{},
	}
}

// SetLogger sets the engine logger. A nil logger installs the no-op default.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// compiledModule pairs a module with its normalized cost shapes so the loop
// never re-parses legacy fields.
type compiledModule struct {
	mod    *domain.TimelineModule
	costs  domain.NormalizedCost
	income *domain.NormalizedCost
}

func compileModules(modules []domain.TimelineModule) []compiledModule {
	out := make([]compiledModule, len(modules))
	for i := range modules {
		cm := compiledModule{mod: &modules[i], costs: modules[i].Costs.Normalize()}
		if modules[i].Income != nil {
			inc := modules[i].Income.Normalize()
			cm.income = &inc
		}
		out[i] = cm
	}
	return out
}

// Project simulates the financial state from startAge through TerminalAge
// inclusive and returns one snapshot per integer age, ordered ascending.
//
// Negative cash and depleted balances are valid output, not errors; the only
// rejected inputs are structurally impossible ones (start age outside the
// simulable range). Modules are evaluated in slice order, which the planner
// maintains as insertion order; same-age salary changes therefore apply
// deterministically in the order the modules were placed.
//
// The engine writes the realized CPFDeduction/CashRequired split back onto
// house modules for later display; this is the one place a placed module is
// mutated after creation.
func (e *Engine) Project(startAge int, fs domain.FinancialState, modules []domain.TimelineModule) ([]domain.YearSnapshot, error) {
	if startAge < 0 || startAge > TerminalAge {
		return nil, fmt.Errorf("start age %d outside simulable range 0..%d", startAge, TerminalAge)
	}

	compiled := compileModules(modules)

	one := decimal.NewFromInt(1)
	hundred := decimal.NewFromInt(100)
	twelve := decimal.NewFromInt(12)

	growthFactor := one.Add(fs.SalaryGrowthRate.Div(hundred))

	baseSalary := fs.MonthlyIncome
	additionalIncome := decimal.Zero // side hustles; never subject to salary growth

	oa := fs.CPFBalances.Ordinary
	sa := fs.CPFBalances.Special
	ma := fs.CPFBalances.Medisave
	cash := fs.CashSavings
	investments := fs.Investments

	snapshots := make([]domain.YearSnapshot, 0, TerminalAge-startAge+1)

	for age := startAge; age <= TerminalAge; age++ {
		year := fs.CurrentYear + (age - startAge)

		if age > startAge {
			baseSalary = baseSalary.Mul(growthFactor)
		}

		// Salary-changing modules anchored to this age, in placement order.
		for _, cm := range compiled {
			if cm.mod.Age != age || cm.mod.SalaryChange == nil {
				continue
			}
			sc := cm.mod.SalaryChange
			switch sc.Type {
			case domain.SalaryReplace:
				baseSalary = sc.Amount
			case domain.SalaryAdd:
				additionalIncome = additionalIncome.Add(sc.Amount)
			case domain.SalaryMultiply:
				baseSalary = baseSalary.Mul(sc.Amount)
			}
		}

		monthlyIncome := baseSalary.Add(additionalIncome)
		annualIncome := monthlyIncome.Mul(twelve).Add(fs.AnnualBonus)

		annualExpenses := decimal.Zero
		moduleIncome := decimal.Zero
		oneTimeCosts := decimal.Zero
		grantsReceived := decimal.Zero

		for _, cm := range compiled {
			annualExpenses = annualExpenses.Add(RecurringAnnualAt(cm.costs, cm.mod.Age, age, TerminalAge))
			if cm.income != nil {
				moduleIncome = moduleIncome.Add(RecurringAnnualAt(*cm.income, cm.mod.Age, age, TerminalAge))
				moduleIncome = moduleIncome.Add(OneTimeAt(*cm.income, cm.mod.Age, age, TerminalAge))
			}

			// Grants and the Baby Bonus anchor to the placement year.
			if cm.mod.Age == age {
				grantsReceived = grantsReceived.Add(cm.costs.Grants)
				if cm.mod.Type == domain.ModuleChild {
					grantsReceived = grantsReceived.Add(BabyBonus)
				}
			}

			oneTime := OneTimeAt(cm.costs, cm.mod.Age, age, TerminalAge)
			if oneTime.IsZero() {
				continue
			}

			if cm.mod.Type == domain.ModuleHouse && cm.costs.CPFUsage.GreaterThan(decimal.Zero) {
				// Split the gross cost (grants added back before netting)
				// between CPF OA and cash. OA never goes negative: any
				// shortfall shifts to the cash requirement.
				grossCost := oneTime.Add(cm.costs.Grants)
				cpfShare := cm.costs.CPFUsage.Div(hundred)
				cpfPortion := grossCost.Mul(cpfShare)
				cashPortion := grossCost.Mul(one.Sub(cpfShare))

				deduction := decimal.Min(cpfPortion, oa)
				if deduction.IsNegative() {
					deduction = decimal.Zero
				}
				oa = oa.Sub(deduction)

				cashRequired := cashPortion.Add(cpfPortion.Sub(deduction))
				oneTimeCosts = oneTimeCosts.Add(cashRequired)

				cm.mod.Costs.CPFDeduction = deduction
				cm.mod.Costs.CashRequired = cashRequired

				e.Logger.Debugf("age %d: house %q funded %s from OA, %s from cash",
					age, cm.mod.Name, deduction.StringFixed(0), cashRequired.StringFixed(0))
			} else {
				oneTimeCosts = oneTimeCosts.Add(oneTime)
			}
		}

		// CPF contribution on capped wages, allocated by age band.
		cpfRate := e.CPF.ContributionRate(age)
		contribution := e.CPF.AnnualContribution(age, monthlyIncome)
		gainOA, gainSA, gainMA := e.CPF.Allocate(age, contribution)
		oa = oa.Add(gainOA)
		sa = sa.Add(gainSA)
		ma = ma.Add(gainMA)

		oa, sa, ma = e.CPF.ApplyInterest(oa, sa, ma)
		if e.ApplyBonusInterest {
			// Extra interest is credited to the Special Account.
			sa = sa.Add(e.CPF.BonusInterest(age, oa, sa, ma))
		}

		takehome := annualIncome.Mul(one.Sub(cpfRate))
		cashFlow := takehome.Sub(annualExpenses).Sub(oneTimeCosts).Add(grantsReceived).Add(moduleIncome)
		cash = cash.Add(cashFlow)

		// Snapshot components are rounded first and the aggregates summed
		// from the rounded parts, so net worth reconciles exactly on the
		// emitted values.
		rCash := roundWhole(cash)
		rOA := roundWhole(oa)
		rSA := roundWhole(sa)
		rMA := roundWhole(ma)
		rInv := roundWhole(investments)

		snapshots = append(snapshots, domain.YearSnapshot{
			Year:           year,
			Age:            age,
			NetWorth:       rCash + rOA + rSA + rMA + rInv,
			CashFlow:       roundWhole(cashFlow.Div(twelve)),
			CPFTotal:       rOA + rSA + rMA,
			CPFOrdinary:    rOA,
			CPFSpecial:     rSA,
			CPFMedisave:    rMA,
			CashSavings:    rCash,
			Investments:    rInv,
			MonthlyIncome:  roundWhole(monthlyIncome),
			AnnualExpenses: roundWhole(annualExpenses),
			GrantsReceived: roundWhole(grantsReceived),
		})
	}

	return snapshots, nil
}

func roundWhole(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// RunScenario projects a single scenario and condenses the series into its
// summary metrics.
func (e *Engine) RunScenario(ctx context.Context, scenario *domain.Scenario) (*domain.ScenarioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	projection, err := e.Project(scenario.Financial.CurrentAge, scenario.Financial, scenario.Modules)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}

	summary := &domain.ScenarioSummary{
		ID:              scenario.ID,
		Name:            scenario.Name,
		Color:           scenario.Color,
		RetirementAge:   retirementAge(scenario.Modules),
		TotalLifeEvents: len(scenario.Modules),
		Projection:      projection,
	}

	if len(projection) > 0 {
		summary.FinalNetWorth = projection[len(projection)-1].NetWorth
		summary.PeakCashFlow = projection[0].CashFlow
		summary.LowestCashSavings = projection[0].CashSavings
		for _, snap := range projection {
			if snap.CashFlow > summary.PeakCashFlow {
				summary.PeakCashFlow = snap.CashFlow
			}
			if snap.CashSavings < summary.LowestCashSavings {
				summary.LowestCashSavings = snap.CashSavings
			}
			if snap.CashSavings < 0 && summary.CashDepletionAge == 0 {
				summary.CashDepletionAge = snap.Age
			}
		}
	}

	annualIncome := scenario.Financial.MonthlyIncome.Mul(decimal.NewFromInt(12)).Add(scenario.Financial.AnnualBonus)
	summary.EstimatedAnnualTax = roundWhole(e.TaxCalc.IncomeTax(annualIncome, e.TaxCalc.EarnedRelief))

	return summary, nil
}

// CompareScenarios projects every scenario of a profile independently. No
// cross-scenario invariant is enforced; each summary stands on its own.
func (e *Engine) CompareScenarios(ctx context.Context, profile *domain.CompleteProfile) (*domain.ScenarioComparison, error) {
	comparison := &domain.ScenarioComparison{
		BaselineNetWorth: roundWhole(profile.Financial.NetWorth),
		Scenarios:        make([]domain.ScenarioSummary, 0, len(profile.Scenarios)),
	}

	for i := range profile.Scenarios {
		summary, err := e.RunScenario(ctx, &profile.Scenarios[i])
		if err != nil {
			return nil, err
		}
		comparison.Scenarios = append(comparison.Scenarios, *summary)
	}
	comparison.Analysis = analyzeComparison(comparison.Scenarios)
	return comparison, nil
}

// retirementAge returns the earliest retirement-module age, or the statutory
// default when the timeline has none.
func retirementAge(modules []domain.TimelineModule) int {
	age := 0
	for _, m := range modules {
		if m.Type != domain.ModuleRetirement {
			continue
		}
		if age == 0 || m.Age < age {
			age = m.Age
		}
	}
	if age == 0 {
		return StatutoryRetirementAge
	}
	return age
}
