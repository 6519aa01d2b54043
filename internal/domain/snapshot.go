package domain

// YearSnapshot is one year of projection output. All monetary fields are
// rounded to whole dollars for display stability; NetWorth and CPFTotal are
// computed from the rounded components so that
//
//	NetWorth == CashSavings + CPFOrdinary + CPFSpecial + CPFMedisave + Investments
//
// holds exactly on the emitted values. Snapshots are immutable once produced.
type YearSnapshot struct {
	Year int `json:"year" yaml:"year"`
	Age  int `json:"age" yaml:"age"`

	NetWorth int64 `json:"netWorth" yaml:"net_worth"`
	CashFlow int64 `json:"cashFlow" yaml:"cash_flow"` // monthly equivalent (annual / 12)

	CPFTotal    int64 `json:"cpfTotal" yaml:"cpf_total"`
	CPFOrdinary int64 `json:"cpfOA" yaml:"cpf_oa"`
	CPFSpecial  int64 `json:"cpfSA" yaml:"cpf_sa"`
	CPFMedisave int64 `json:"cpfMA" yaml:"cpf_ma"`

	CashSavings    int64 `json:"cashSavings" yaml:"cash_savings"`
	Investments    int64 `json:"investments" yaml:"investments"`
	MonthlyIncome  int64 `json:"monthlyIncome" yaml:"monthly_income"`
	AnnualExpenses int64 `json:"annualExpenses" yaml:"annual_expenses"`
	GrantsReceived int64 `json:"grantsReceived" yaml:"grants_received"`
}

// ScenarioSummary condenses a full projection into the comparison metrics the
// caller renders side by side.
type ScenarioSummary struct {
	ID    string        `json:"id,omitempty"`
	Name  string        `json:"name"`
	Color ScenarioColor `json:"color,omitempty"`

	FinalNetWorth     int64 `json:"finalNetWorth"`
	PeakCashFlow      int64 `json:"peakCashFlow"`
	LowestCashSavings int64 `json:"lowestCashSavings"`

	// CashDepletionAge is the first age at which cash savings go negative;
	// zero when cash never depletes. Negative cash is a warning signal for
	// the caller, not an engine error.
	CashDepletionAge int `json:"cashDepletionAge,omitempty"`

	// RetirementAge is taken from the earliest retirement-typed module, or
	// the statutory default when none is placed.
	RetirementAge int `json:"retirementAge"`

	// EstimatedAnnualTax is the resident income tax on the first projected
	// year's income. Informational: the cash-flow series is tax-exclusive.
	EstimatedAnnualTax int64 `json:"estimatedAnnualTax"`

	TotalLifeEvents int            `json:"totalLifeEvents"`
	Projection      []YearSnapshot `json:"projection"`
}

// ScenarioComparison is the result of independently projecting every scenario
// of a profile. No cross-scenario invariant is enforced; each summary stands
// on its own.
type ScenarioComparison struct {
	BaselineNetWorth int64              `json:"baselineNetWorth"`
	Scenarios        []ScenarioSummary  `json:"scenarios"`
	Analysis         ComparisonAnalysis `json:"analysis"`
}

// ComparisonAnalysis highlights the standout branches and any cash-depletion
// warnings across a comparison. Consumed by rendering layers only.
type ComparisonAnalysis struct {
	BestScenarioForNetWorth string   `json:"bestScenarioForNetWorth,omitempty"`
	BestScenarioForCashFlow string   `json:"bestScenarioForCashFlow,omitempty"`
	Warnings                []string `json:"warnings,omitempty"`
}

// FinalSnapshot returns the last snapshot of the projection, or a zero value
// for an empty series.
func (s ScenarioSummary) FinalSnapshot() YearSnapshot {
	if len(s.Projection) == 0 {
		return YearSnapshot{}
	}
	return s.Projection[len(s.Projection)-1]
}
