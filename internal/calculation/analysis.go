package calculation

import (
	"fmt"

	"github.com/sgplan/lifeplan/internal/domain"
)

// analyzeComparison highlights the standout scenarios and collects
// cash-depletion warnings for the rendering layer.
func analyzeComparison(scenarios []domain.ScenarioSummary) domain.ComparisonAnalysis {
	var analysis domain.ComparisonAnalysis

	var bestNetWorth, bestCashFlow int64
	for i, s := range scenarios {
		if i == 0 || s.FinalNetWorth > bestNetWorth {
			bestNetWorth = s.FinalNetWorth
			analysis.BestScenarioForNetWorth = s.Name
		}
		if i == 0 || s.PeakCashFlow > bestCashFlow {
			bestCashFlow = s.PeakCashFlow
			analysis.BestScenarioForCashFlow = s.Name
		}
		if s.CashDepletionAge > 0 {
			analysis.Warnings = append(analysis.Warnings,
				fmt.Sprintf("%s: cash savings run negative from age %d", s.Name, s.CashDepletionAge))
		}
	}
	return analysis
}
