package domain

import (
	"github.com/shopspring/decimal"
)

// ModuleType identifies the kind of life event a timeline module models.
type ModuleType string

const (
	ModuleCar        ModuleType = "car"
	ModuleHouse      ModuleType = "house"
	ModuleMarriage   ModuleType = "marriage"
	ModuleChild      ModuleType = "child"
	ModuleEducation  ModuleType = "education"
	ModuleInvestment ModuleType = "investment"
	ModuleCareer     ModuleType = "career"
	ModuleRetirement ModuleType = "retirement"
	ModuleCustom     ModuleType = "custom"
)

// ValidModuleType reports whether t belongs to the closed variant set.
func ValidModuleType(t ModuleType) bool {
	switch t {
	case ModuleCar, ModuleHouse, ModuleMarriage, ModuleChild, ModuleEducation,
		ModuleInvestment, ModuleCareer, ModuleRetirement, ModuleCustom:
		return true
	}
	return false
}

// CostFrequency describes how often a FlexibleCost amount repeats.
type CostFrequency string

const (
	FrequencyOneTime CostFrequency = "one-time"
	FrequencyDaily   CostFrequency = "daily"
	FrequencyWeekly  CostFrequency = "weekly"
	FrequencyMonthly CostFrequency = "monthly"
	FrequencyYearly  CostFrequency = "yearly"
	FrequencyCustom  CostFrequency = "custom"
)

// ValidCostFrequency reports whether f is one of the six supported frequencies.
func ValidCostFrequency(f CostFrequency) bool {
	switch f {
	case FrequencyOneTime, FrequencyDaily, FrequencyWeekly, FrequencyMonthly,
		FrequencyYearly, FrequencyCustom:
		return true
	}
	return false
}

// FlexibleCost is the cost (or income) shape attached to a timeline module.
//
// Amount and Frequency are the normalized representation. OneTime and Monthly
// are legacy scalar synonyms kept for backward compatibility with stored
// profiles; Normalize folds them into the normalized fields so the projection
// engine only ever sees one representation.
type FlexibleCost struct {
	Amount           decimal.Decimal `yaml:"amount,omitempty" json:"amount,omitempty"`
	Frequency        CostFrequency   `yaml:"frequency,omitempty" json:"frequency,omitempty"`
	CustomPeriodDays int             `yaml:"custom_period_days,omitempty" json:"customPeriodDays,omitempty"`

	// Duration is a repeat count in periods of the declared frequency.
	// Zero means the cost runs unbounded (or until EndAge).
	Duration int `yaml:"duration,omitempty" json:"duration,omitempty"`
	StartAge int `yaml:"start_age,omitempty" json:"startAge,omitempty"`
	EndAge   int `yaml:"end_age,omitempty" json:"endAge,omitempty"`

	// Legacy scalar fields.
	OneTime decimal.Decimal `yaml:"one_time,omitempty" json:"oneTime,omitempty"`
	Monthly decimal.Decimal `yaml:"monthly,omitempty" json:"monthly,omitempty"`

	// Housing specials.
	CPFUsage decimal.Decimal `yaml:"cpf_usage,omitempty" json:"cpfUsage,omitempty"` // percent of gross cost financed from CPF OA
	Grants   decimal.Decimal `yaml:"grants,omitempty" json:"grants,omitempty"`

	// Computed outputs written back after processing; never inputs.
	CPFDeduction decimal.Decimal `yaml:"cpf_deduction,omitempty" json:"cpfDeduction,omitempty"`
	CashRequired decimal.Decimal `yaml:"cash_required,omitempty" json:"cashRequired,omitempty"`
}

// NormalizedCost is the single internal representation of a FlexibleCost after
// legacy-field adaptation. A cost can carry both a one-time component and a
// recurring component (the legacy shape allowed oneTime+monthly together).
type NormalizedCost struct {
	OneTime          decimal.Decimal
	Recurring        decimal.Decimal
	Frequency        CostFrequency
	CustomPeriodDays int
	Duration         int
	StartAge         int
	EndAge           int

	CPFUsage decimal.Decimal
	Grants   decimal.Decimal
}

// Normalize maps a FlexibleCost (legacy or modern shape) onto the normalized
// representation. Legacy oneTime/monthly scalars win only when the normalized
// fields are unset, so modern profiles are never reinterpreted.
func (fc FlexibleCost) Normalize() NormalizedCost {
	nc := NormalizedCost{
		Frequency:        fc.Frequency,
		CustomPeriodDays: fc.CustomPeriodDays,
		Duration:         fc.Duration,
		StartAge:         fc.StartAge,
		EndAge:           fc.EndAge,
		CPFUsage:         fc.CPFUsage,
		Grants:           fc.Grants,
	}

	switch fc.Frequency {
	case FrequencyOneTime:
		nc.OneTime = fc.Amount
	case "":
		// Legacy shape: scalar fields carry the values.
	default:
		nc.Recurring = fc.Amount
	}

	if !fc.OneTime.IsZero() && nc.OneTime.IsZero() {
		nc.OneTime = fc.OneTime
	}
	if !fc.Monthly.IsZero() && nc.Recurring.IsZero() {
		nc.Recurring = fc.Monthly
		nc.Frequency = FrequencyMonthly
	}
	if nc.Recurring.IsZero() && nc.Frequency == "" {
		nc.Frequency = FrequencyOneTime
	}
	return nc
}

// IsZero reports whether the cost carries no monetary effect at all.
func (fc FlexibleCost) IsZero() bool {
	return fc.Amount.IsZero() && fc.OneTime.IsZero() && fc.Monthly.IsZero() &&
		fc.Grants.IsZero()
}

// SalaryChangeType controls how a module mutates the running base salary.
type SalaryChangeType string

const (
	SalaryReplace  SalaryChangeType = "replace"  // new job: base salary := amount
	SalaryAdd      SalaryChangeType = "add"      // side hustle: additional income += amount
	SalaryMultiply SalaryChangeType = "multiply" // promotion (>1) or career pause (0)
)

// SalaryChange is the optional salary-modification effect of a module.
type SalaryChange struct {
	Type   SalaryChangeType `yaml:"type" json:"type"`
	Amount decimal.Decimal  `yaml:"amount" json:"amount"`
}

// TimelineModule is a timed life event placed on the timeline. Instances are
// immutable once placed; the planner replaces rather than mutates them, with
// the single exception of the engine's CPFDeduction/CashRequired write-back.
type TimelineModule struct {
	ID   string     `yaml:"id" json:"id"`
	Type ModuleType `yaml:"type" json:"type"`
	Name string     `yaml:"name" json:"name"`

	Age  int `yaml:"age" json:"age"`   // age at which the event happens
	Year int `yaml:"year" json:"year"` // derived: currentYear + (age - currentAge)

	Costs        FlexibleCost  `yaml:"costs" json:"costs"`
	Income       *FlexibleCost `yaml:"income,omitempty" json:"income,omitempty"`
	SalaryChange *SalaryChange `yaml:"salary_change,omitempty" json:"salaryChange,omitempty"`

	Icon        string `yaml:"icon,omitempty" json:"icon,omitempty"`
	Color       string `yaml:"color,omitempty" json:"color,omitempty"`
	Removable   bool   `yaml:"removable" json:"removable"`
	IsCustom    bool   `yaml:"is_custom,omitempty" json:"isCustom,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Category    string `yaml:"category,omitempty" json:"category,omitempty"`
}

// Clone returns a deep copy of the module with the same identity.
func (m TimelineModule) Clone() TimelineModule {
	out := m
	if m.Income != nil {
		inc := *m.Income
		out.Income = &inc
	}
	if m.SalaryChange != nil {
		sc := *m.SalaryChange
		out.SalaryChange = &sc
	}
	return out
}

// CloneModules deep-copies a module list preserving order.
func CloneModules(modules []TimelineModule) []TimelineModule {
	if modules == nil {
		return nil
	}
	out := make([]TimelineModule, len(modules))
	for i, m := range modules {
		out[i] = m.Clone()
	}
	return out
}
