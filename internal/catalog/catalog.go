// Package catalog holds the built-in library of Singapore life-event
// templates and turns templates into placed timeline modules.
package catalog

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sgplan/lifeplan/internal/calculation"
	"github.com/sgplan/lifeplan/internal/domain"
	"github.com/sgplan/lifeplan/pkg/dateutil"
)

func dollars(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// Templates returns the built-in module library. Callers receive a fresh
// deep copy each call so template defaults cannot be mutated in place.
func Templates() []domain.TimelineModule {
	return domain.CloneModules(templates)
}

// TemplateByID looks up a single template by its catalog ID.
func TemplateByID(id string) (domain.TimelineModule, error) {
	for _, t := range templates {
		if t.ID == id {
			return t.Clone(), nil
		}
	}
	return domain.TimelineModule{}, fmt.Errorf("unknown module template %q", id)
}

// Instantiate places a template on the timeline at the given age: the
// instance gets a unique identity and a year derived from the plan anchor.
//
// House templates need one extra step. Their catalog OneTime is the gross
// downpayment, the equity share of the purchase price; placement nets out
// grants from the cash due and replaces the flat monthly figure with the
// amortized HDB mortgage payment on the loan the downpayment implies.
// Grants reduce the cash outlay only, never the financed principal.
func Instantiate(template domain.TimelineModule, age int, fs domain.FinancialState) domain.TimelineModule {
	m := template.Clone()
	m.ID = fmt.Sprintf("%s-%s", template.ID, uuid.NewString())
	m.Age = age
	m.Year = dateutil.YearForAge(fs.CurrentYear, fs.CurrentAge, age)

	if m.Type == domain.ModuleHouse {
		down := m.Costs.OneTime
		net := down.Sub(m.Costs.Grants)
		if net.IsNegative() {
			net = decimal.Zero
		}
		m.Costs.OneTime = net

		terms := calculation.HDBLoanTerms()
		principal := terms.PrincipalFromDownPayment(down)
		if principal.IsPositive() {
			m.Costs.Monthly = terms.MonthlyPayment(principal)
			m.Costs.Duration = terms.TenureYears * 12
		}
	}
	return m
}

var templates = []domain.TimelineModule{
	// Housing.
	{
		ID: "bto-1room", Type: domain.ModuleHouse, Name: "1-Room BTO",
		Costs: domain.FlexibleCost{OneTime: dollars(25000), Monthly: dollars(600), Duration: 300, CPFUsage: dollars(80)},
		Icon:  "house", Color: "#ff6b9d", Removable: true,
	},
	{
		ID: "bto-2room", Type: domain.ModuleHouse, Name: "2-Room BTO",
		Costs: domain.FlexibleCost{OneTime: dollars(40000), Monthly: dollars(1000), Duration: 300, CPFUsage: dollars(80)},
		Icon:  "house", Color: "#ff6b9d", Removable: true,
	},
	{
		ID: "bto-3room", Type: domain.ModuleHouse, Name: "3-Room BTO",
		Costs: domain.FlexibleCost{OneTime: dollars(60000), Monthly: dollars(1400), Duration: 300, CPFUsage: dollars(80)},
		Icon:  "house", Color: "#ff6b9d", Removable: true,
	},
	{
		ID: "bto-4room", Type: domain.ModuleHouse, Name: "4-Room BTO",
		Costs: domain.FlexibleCost{OneTime: dollars(80000), Monthly: dollars(1800), Duration: 300, CPFUsage: dollars(80)},
		Icon:  "house", Color: "#ff6b9d", Removable: true,
	},
	{
		ID: "bto-5room", Type: domain.ModuleHouse, Name: "5-Room BTO",
		Costs: domain.FlexibleCost{OneTime: dollars(100000), Monthly: dollars(2200), Duration: 300, CPFUsage: dollars(80)},
		Icon:  "house", Color: "#ff6b9d", Removable: true,
	},
	{
		ID: "resale-3room", Type: domain.ModuleHouse, Name: "3-Room Resale HDB",
		Costs: domain.FlexibleCost{OneTime: dollars(90000), Monthly: dollars(1600), Duration: 300, CPFUsage: dollars(80)},
		Icon:  "house", Color: "#ff6b9d", Removable: true,
	},
	{
		ID: "resale-4room", Type: domain.ModuleHouse, Name: "4-Room Resale HDB",
		Costs: domain.FlexibleCost{OneTime: dollars(120000), Monthly: dollars(2200), Duration: 300, CPFUsage: dollars(80)},
		Icon:  "house", Color: "#ff6b9d", Removable: true,
	},
	{
		ID: "resale-5room", Type: domain.ModuleHouse, Name: "5-Room Resale HDB",
		Costs: domain.FlexibleCost{OneTime: dollars(150000), Monthly: dollars(2600), Duration: 300, CPFUsage: dollars(80)},
		Icon:  "house", Color: "#ff6b9d", Removable: true,
	},
	{
		ID: "ec", Type: domain.ModuleHouse, Name: "Executive Condo",
		Costs: domain.FlexibleCost{OneTime: dollars(200000), Monthly: dollars(3200), Duration: 300, CPFUsage: dollars(60)},
		Icon:  "building", Color: "#ff6b9d", Removable: true,
	},
	{
		ID: "condo", Type: domain.ModuleHouse, Name: "Private Condo",
		Costs: domain.FlexibleCost{OneTime: dollars(250000), Monthly: dollars(3800), Duration: 300, CPFUsage: dollars(50)},
		Icon:  "building", Color: "#ff6b9d", Removable: true,
	},

	// Transport.
	{
		ID: "car", Type: domain.ModuleCar, Name: "Car (with COE)",
		Costs: domain.FlexibleCost{OneTime: dollars(120000), Monthly: dollars(2000), Duration: 120},
		Icon:  "car", Color: "#66d9ef", Removable: true,
	},

	// Family.
	{
		ID: "marriage", Type: domain.ModuleMarriage, Name: "Wedding",
		Costs: domain.FlexibleCost{OneTime: dollars(30000)},
		Icon:  "rings", Color: "#ffeb3b", Removable: true,
	},
	{
		ID: "child1", Type: domain.ModuleChild, Name: "First Child",
		Costs: domain.FlexibleCost{OneTime: dollars(10000), Monthly: dollars(1500), Duration: 264},
		Icon:  "baby", Color: "#a6e22e", Removable: true,
	},
	{
		ID: "child2", Type: domain.ModuleChild, Name: "Second Child",
		Costs: domain.FlexibleCost{OneTime: dollars(8000), Monthly: dollars(1200), Duration: 264},
		Icon:  "baby", Color: "#a6e22e", Removable: true,
	},
	{
		ID: "child3", Type: domain.ModuleChild, Name: "Third Child",
		Costs: domain.FlexibleCost{OneTime: dollars(7000), Monthly: dollars(1100), Duration: 264},
		Icon:  "baby", Color: "#a6e22e", Removable: true,
	},
	{
		ID: "child4", Type: domain.ModuleChild, Name: "Fourth Child",
		Costs: domain.FlexibleCost{OneTime: dollars(6000), Monthly: dollars(1000), Duration: 264},
		Icon:  "baby", Color: "#a6e22e", Removable: true,
	},
	{
		ID: "child5", Type: domain.ModuleChild, Name: "Fifth Child",
		Costs: domain.FlexibleCost{OneTime: dollars(5000), Monthly: dollars(900), Duration: 264},
		Icon:  "baby", Color: "#a6e22e", Removable: true,
	},

	// Education and career.
	{
		ID: "masters", Type: domain.ModuleEducation, Name: "Masters Degree",
		Costs: domain.FlexibleCost{OneTime: dollars(40000), Duration: 24},
		Icon:  "graduation", Color: "#f92672", Removable: true,
	},
	{
		ID: "business", Type: domain.ModuleCareer, Name: "Start Business",
		Costs:  domain.FlexibleCost{OneTime: dollars(50000)},
		Income: &domain.FlexibleCost{Monthly: dollars(3000)},
		Icon:   "briefcase", Color: "#fd971f", Removable: true,
	},
	{
		ID: "starting-job", Type: domain.ModuleCareer, Name: "Starting Job",
		SalaryChange: &domain.SalaryChange{Type: domain.SalaryReplace, Amount: dollars(5000)},
		Icon:         "briefcase", Color: "#66d9ef", Removable: true,
		Description: "Current or starting job; establishes baseline income",
	},
	{
		ID: "change-job", Type: domain.ModuleCareer, Name: "Change Job",
		SalaryChange: &domain.SalaryChange{Type: domain.SalaryReplace, Amount: dollars(6000)},
		Icon:         "arrows", Color: "#66d9ef", Removable: true,
		Description: "Switch to a new job with a different salary",
	},
	{
		ID: "side-hustle", Type: domain.ModuleCareer, Name: "Side Hustle",
		Costs:        domain.FlexibleCost{OneTime: dollars(5000)},
		SalaryChange: &domain.SalaryChange{Type: domain.SalaryAdd, Amount: dollars(1500)},
		Icon:         "coins", Color: "#a6e22e", Removable: true,
		Description: "Additional income stream (freelance, part-time)",
	},
	{
		ID: "promotion", Type: domain.ModuleCareer, Name: "Promotion",
		SalaryChange: &domain.SalaryChange{Type: domain.SalaryMultiply, Amount: decimal.NewFromFloat(1.20)},
		Icon:         "chart-up", Color: "#a6e22e", Removable: true,
		Description: "Salary increase (default 20% raise)",
	},
	{
		ID: "career-break", Type: domain.ModuleCareer, Name: "Career Break",
		SalaryChange: &domain.SalaryChange{Type: domain.SalaryMultiply, Amount: decimal.Zero},
		Icon:         "beach", Color: "#fd971f", Removable: true,
		Description: "Temporary pause in active income (sabbatical, parental leave)",
	},
	{
		ID: "full-retirement", Type: domain.ModuleRetirement, Name: "Retirement",
		SalaryChange: &domain.SalaryChange{Type: domain.SalaryMultiply, Amount: decimal.Zero},
		Icon:         "island", Color: "#ae81ff", Removable: true,
		Description: "Stop active income, live off savings and investments",
	},

	// Investments.
	{
		ID: "investment-property", Type: domain.ModuleInvestment, Name: "Investment Property",
		Costs: domain.FlexibleCost{OneTime: dollars(300000), Monthly: dollars(-2000)}, // negative monthly = rental income
		Icon:  "bank", Color: "#ae81ff", Removable: true,
	},

	// Health and medical events.
	{
		ID: "critical-illness-cancer", Type: domain.ModuleCustom, Name: "Critical Illness (Cancer)",
		Costs: domain.FlexibleCost{OneTime: dollars(80000), Monthly: dollars(3000), Duration: 60},
		Icon:  "hospital", Color: "#f92672", Removable: true,
		Description: "Cancer diagnosis with treatment costs",
	},
	{
		ID: "major-surgery", Type: domain.ModuleCustom, Name: "Major Surgery",
		Costs: domain.FlexibleCost{OneTime: dollars(50000), Monthly: dollars(1000), Duration: 6},
		Icon:  "medical", Color: "#f92672", Removable: true,
		Description: "Major surgical procedure with recovery period",
	},
	{
		ID: "hospitalization", Type: domain.ModuleCustom, Name: "Hospitalization",
		Costs: domain.FlexibleCost{OneTime: dollars(15000)},
		Icon:  "hospital", Color: "#ff6b9d", Removable: true,
		Description: "Hospital stay and medical treatment",
	},
	{
		ID: "chronic-illness", Type: domain.ModuleCustom, Name: "Chronic Illness",
		Costs: domain.FlexibleCost{Monthly: dollars(800), Duration: 600},
		Icon:  "pill", Color: "#fd971f", Removable: true,
		Description: "Ongoing medication and treatment costs",
	},
	{
		ID: "disability", Type: domain.ModuleCustom, Name: "Disability (Income Loss)",
		Costs: domain.FlexibleCost{Monthly: dollars(2000), Duration: 120},
		Icon:  "access", Color: "#f92672", Removable: true,
		Description: "Income loss due to disability",
	},

	// Insurance.
	{
		ID: "term-life-insurance-500k", Type: domain.ModuleInvestment, Name: "Term Life Insurance ($500K)",
		Costs: domain.FlexibleCost{Monthly: dollars(40), Duration: 360},
		Icon:  "shield", Color: "#66d9ef", Removable: true,
		Description: "Term life insurance for death/TPD protection",
	},
	{
		ID: "term-life-insurance-1m", Type: domain.ModuleInvestment, Name: "Term Life Insurance ($1M)",
		Costs: domain.FlexibleCost{Monthly: dollars(75), Duration: 360},
		Icon:  "shield", Color: "#66d9ef", Removable: true,
		Description: "Term life insurance for death/TPD protection",
	},
	{
		ID: "whole-life-insurance", Type: domain.ModuleInvestment, Name: "Whole Life Insurance",
		Costs: domain.FlexibleCost{Monthly: dollars(300), Duration: 300},
		Icon:  "briefcase", Color: "#ae81ff", Removable: true,
		Description: "Lifetime coverage with savings component",
	},
	{
		ID: "integrated-shield-plan", Type: domain.ModuleInvestment, Name: "Integrated Shield Plan",
		Costs: domain.FlexibleCost{Monthly: dollars(150), Duration: 600},
		Icon:  "hospital", Color: "#f92672", Removable: true,
		Description: "Enhanced hospitalization coverage",
	},
	{
		ID: "critical-illness-insurance-100k", Type: domain.ModuleInvestment, Name: "Critical Illness Insurance ($100K)",
		Costs: domain.FlexibleCost{Monthly: dollars(80), Duration: 360},
		Icon:  "pill", Color: "#f92672", Removable: true,
		Description: "Lump sum payout for critical illnesses",
	},
	{
		ID: "critical-illness-insurance-200k", Type: domain.ModuleInvestment, Name: "Critical Illness Insurance ($200K)",
		Costs: domain.FlexibleCost{Monthly: dollars(150), Duration: 360},
		Icon:  "pill", Color: "#f92672", Removable: true,
		Description: "Lump sum payout for critical illnesses",
	},
	{
		ID: "income-protection-insurance", Type: domain.ModuleInvestment, Name: "Income Protection Insurance",
		Costs: domain.FlexibleCost{Monthly: dollars(100), Duration: 360},
		Icon:  "coins", Color: "#a6e22e", Removable: true,
		Description: "Monthly payout if unable to work due to disability",
	},
	{
		ID: "early-critical-illness", Type: domain.ModuleInvestment, Name: "Early Critical Illness (ECI)",
		Costs: domain.FlexibleCost{Monthly: dollars(50), Duration: 360},
		Icon:  "stethoscope", Color: "#fd971f", Removable: true,
		Description: "Coverage for early-stage critical illnesses",
	},
	{
		ID: "cancer-insurance", Type: domain.ModuleInvestment, Name: "Cancer Insurance",
		Costs: domain.FlexibleCost{Monthly: dollars(60), Duration: 360},
		Icon:  "ribbon", Color: "#ff6b9d", Removable: true,
		Description: "Specialized cancer coverage with multiple payouts",
	},

	// Savings and investment plans. Income start ages below the placement age
	// are offsets from it (a 10-year endowment pays out 10 years after buying).
	{
		ID: "endowment-plan-short", Type: domain.ModuleInvestment, Name: "Endowment Plan (10-year)",
		Costs:  domain.FlexibleCost{Monthly: dollars(500), Duration: 120},
		Income: &domain.FlexibleCost{OneTime: dollars(70000), StartAge: 10},
		Icon:   "chart", Color: "#ffeb3b", Removable: true,
		Description: "Short-term savings plan with guaranteed returns",
	},
	{
		ID: "endowment-plan-long", Type: domain.ModuleInvestment, Name: "Endowment Plan (25-year)",
		Costs:  domain.FlexibleCost{Monthly: dollars(400), Duration: 300},
		Income: &domain.FlexibleCost{OneTime: dollars(150000), StartAge: 25},
		Icon:   "chart", Color: "#ffeb3b", Removable: true,
		Description: "Long-term savings plan with guaranteed returns",
	},
	{
		ID: "ilp-investment-plan", Type: domain.ModuleInvestment, Name: "Investment-Linked Policy (ILP)",
		Costs:  domain.FlexibleCost{Monthly: dollars(800), Duration: 240},
		Income: &domain.FlexibleCost{OneTime: dollars(250000), StartAge: 20},
		Icon:   "chart-up", Color: "#ae81ff", Removable: true,
		Description: "Insurance plus investment with market-linked returns",
	},
	{
		ID: "retirement-income-plan", Type: domain.ModuleInvestment, Name: "Retirement Income Plan",
		Costs:  domain.FlexibleCost{Monthly: dollars(1000), Duration: 240},
		Income: &domain.FlexibleCost{Monthly: dollars(2000), StartAge: 65, EndAge: 90},
		Icon:   "beach", Color: "#66d9ef", Removable: true,
		Description: "Guaranteed monthly retirement income from age 65",
	},
	{
		ID: "childrens-education-plan", Type: domain.ModuleInvestment, Name: "Children's Education Plan",
		Costs:  domain.FlexibleCost{Monthly: dollars(600), Duration: 180},
		Income: &domain.FlexibleCost{OneTime: dollars(150000), StartAge: 18},
		Icon:   "graduation", Color: "#a6e22e", Removable: true,
		Description: "Education savings plan with guaranteed payout",
	},
	{
		ID: "srs-contribution", Type: domain.ModuleInvestment, Name: "SRS Annual Contribution",
		Costs:  domain.FlexibleCost{Amount: dollars(15300), Frequency: domain.FrequencyYearly, Duration: 30},
		Income: &domain.FlexibleCost{Monthly: dollars(1500), StartAge: 65, EndAge: 75},
		Icon:   "briefcase", Color: "#66d9ef", Removable: true,
		Description: "Supplementary Retirement Scheme contributions with drawdown from 65",
	},

	// Life events.
	{
		ID: "death", Type: domain.ModuleCustom, Name: "End of Life",
		Icon: "dove", Color: "#8a8a8a", Removable: true,
		Description: "Expected end of life, movable to adjust the planning horizon",
	},
}
