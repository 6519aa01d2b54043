package calculation

import (
	"fmt"

	"github.com/sgplan/lifeplan/internal/domain"
	"github.com/shopspring/decimal"
)

// BreakEvenMonthlyIncome finds the starting monthly income at which the
// timeline stays solvent: the smallest base salary for which cash savings
// never go negative over the full horizon. Binary search over the salary,
// re-running the projection each probe.
//
// Returns an error when even the search ceiling cannot keep the plan solvent.
func (e *Engine) BreakEvenMonthlyIncome(fs domain.FinancialState, modules []domain.TimelineModule) (decimal.Decimal, error) {
	low := decimal.Zero
	high := decimal.NewFromInt(100000)
	tolerance := decimal.NewFromInt(10)
	const maxIterations = 50

	solvent := func(income decimal.Decimal) (bool, error) {
		probe := fs.Clone()
		probe.MonthlyIncome = income
		projection, err := e.Project(probe.CurrentAge, probe, domain.CloneModules(modules))
		if err != nil {
			return false, err
		}
		for _, snap := range projection {
			if snap.CashSavings < 0 {
				return false, nil
			}
		}
		return true, nil
	}

	ok, err := solvent(high)
	if err != nil {
		return decimal.Zero, err
	}
	if !ok {
		return decimal.Zero, fmt.Errorf("no solvent income at or below %s/month", high.StringFixed(0))
	}
	if ok, err = solvent(low); err != nil {
		return decimal.Zero, err
	} else if ok {
		return low, nil
	}

	for i := 0; i < maxIterations && high.Sub(low).GreaterThan(tolerance); i++ {
		mid := low.Add(high).Div(decimal.NewFromInt(2))
		ok, err := solvent(mid)
		if err != nil {
			return decimal.Zero, err
		}
		if ok {
			high = mid
		} else {
			low = mid
		}
	}
	return high, nil
}

// CrossoverAge returns the first age at which scenario a's net worth reaches
// or exceeds scenario b's, comparing ages present in both series. Returns 0
// when a never catches up.
func CrossoverAge(a, b []domain.YearSnapshot) int {
	byAge := make(map[int]int64, len(b))
	for _, snap := range b {
		byAge[snap.Age] = snap.NetWorth
	}
	for _, snap := range a {
		other, shared := byAge[snap.Age]
		if shared && snap.NetWorth >= other {
			return snap.Age
		}
	}
	return 0
}
