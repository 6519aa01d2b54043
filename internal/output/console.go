package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/sgplan/lifeplan/internal/domain"
)

// ConsoleFormatter renders a concise per-scenario summary table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "LIFE PLAN SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Starting Net Worth: %s\n", FormatDollars(results.BaselineNetWorth))
	fmt.Fprintln(&buf)

	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		final := sc.FinalSnapshot()
		fmt.Fprintf(&buf, "%s: FinalNetWorth=%s PeakCashFlow=%s/mo CPFTotal=%s\n",
			sc.Name,
			FormatDollars(sc.FinalNetWorth),
			FormatDollars(sc.PeakCashFlow),
			FormatDollars(final.CPFTotal),
		)
		fmt.Fprintf(&buf, "  RetirementAge=%d LifeEvents=%d EstimatedTax=%s/yr\n",
			sc.RetirementAge, sc.TotalLifeEvents, FormatDollars(sc.EstimatedAnnualTax))
		if sc.CashDepletionAge > 0 {
			fmt.Fprintf(&buf, "  WARNING: cash savings deplete at age %d (lowest %s)\n",
				sc.CashDepletionAge, FormatDollars(sc.LowestCashSavings))
		}
	}

	if a := results.Analysis; a.BestScenarioForNetWorth != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Best net worth: %s\n", a.BestScenarioForNetWorth)
		fmt.Fprintf(&buf, "Best cash flow: %s\n", a.BestScenarioForCashFlow)
		for _, w := range a.Warnings {
			fmt.Fprintf(&buf, "Warning: %s\n", w)
		}
	}
	return buf.Bytes(), nil
}
