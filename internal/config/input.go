// Package config loads and validates life-plan profiles from disk.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/sgplan/lifeplan/internal/calculation"
	"github.com/sgplan/lifeplan/internal/domain"
)

// InputParser handles parsing of profile files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a profile from a YAML or JSON file, chosen by extension.
func (ip *InputParser) LoadFromFile(filename string) (*domain.CompleteProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var profile domain.CompleteProfile
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json":
		if err := json.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported profile format %q (want .yaml, .yml or .json)", ext)
	}

	if err := ip.ValidateProfile(&profile); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}
	return &profile, nil
}

// ValidateProfile checks the structural invariants of a loaded profile.
func (ip *InputParser) ValidateProfile(profile *domain.CompleteProfile) error {
	if err := ip.validateFinancial(&profile.Financial); err != nil {
		return fmt.Errorf("financial state validation failed: %w", err)
	}

	if len(profile.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}
	seen := make(map[string]bool, len(profile.Scenarios))
	for i := range profile.Scenarios {
		s := &profile.Scenarios[i]
		if err := ip.validateScenario(s); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate scenario ID %q", s.ID)
		}
		seen[s.ID] = true
	}
	if profile.ActiveScenarioID != "" && !seen[profile.ActiveScenarioID] {
		return fmt.Errorf("active scenario %q not among scenarios", profile.ActiveScenarioID)
	}

	for i := range profile.CustomModules {
		if err := ip.validateModule(&profile.CustomModules[i]); err != nil {
			return fmt.Errorf("custom module %d validation failed: %w", i, err)
		}
	}
	return nil
}

func (ip *InputParser) validateFinancial(fs *domain.FinancialState) error {
	if fs.CurrentAge < 0 || fs.CurrentAge > calculation.TerminalAge {
		return fmt.Errorf("current age must be between 0 and %d", calculation.TerminalAge)
	}
	if fs.MonthlyIncome.IsNegative() {
		return fmt.Errorf("monthly income cannot be negative")
	}
	if fs.CashSavings.IsNegative() {
		return fmt.Errorf("cash savings cannot be negative")
	}
	if fs.Investments.IsNegative() {
		return fmt.Errorf("investments cannot be negative")
	}
	if fs.CPFBalances.Ordinary.IsNegative() || fs.CPFBalances.Special.IsNegative() || fs.CPFBalances.Medisave.IsNegative() {
		return fmt.Errorf("CPF balances cannot be negative")
	}
	if fs.MonthlySavings.IsNegative() {
		return fmt.Errorf("monthly savings cannot be negative")
	}
	if fs.SalaryGrowthRate.LessThan(decimal.NewFromInt(-100)) {
		return fmt.Errorf("salary growth rate cannot be less than -100%%")
	}
	return nil
}

func (ip *InputParser) validateScenario(s *domain.Scenario) error {
	if s.ID == "" {
		return fmt.Errorf("scenario ID is required")
	}
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if err := ip.validateFinancial(&s.Financial); err != nil {
		return err
	}
	for i := range s.Modules {
		if err := ip.validateModule(&s.Modules[i]); err != nil {
			return fmt.Errorf("module %d: %w", i, err)
		}
	}
	return nil
}

func (ip *InputParser) validateModule(m *domain.TimelineModule) error {
	if m.ID == "" {
		return fmt.Errorf("module ID is required")
	}
	if !domain.ValidModuleType(m.Type) {
		return fmt.Errorf("unknown module type %q", m.Type)
	}
	if m.Age < 0 || m.Age > calculation.TerminalAge {
		return fmt.Errorf("module age must be between 0 and %d", calculation.TerminalAge)
	}
	if err := ip.validateCost(&m.Costs); err != nil {
		return fmt.Errorf("costs: %w", err)
	}
	if m.Income != nil {
		if err := ip.validateCost(m.Income); err != nil {
			return fmt.Errorf("income: %w", err)
		}
	}
	if m.SalaryChange != nil {
		switch m.SalaryChange.Type {
		case domain.SalaryReplace, domain.SalaryAdd, domain.SalaryMultiply:
		default:
			return fmt.Errorf("unknown salary change type %q", m.SalaryChange.Type)
		}
	}
	return nil
}

func (ip *InputParser) validateCost(fc *domain.FlexibleCost) error {
	if fc.Frequency != "" && !domain.ValidCostFrequency(fc.Frequency) {
		return fmt.Errorf("unknown frequency %q", fc.Frequency)
	}
	if fc.Frequency == domain.FrequencyCustom && fc.CustomPeriodDays <= 0 {
		return fmt.Errorf("custom frequency requires custom_period_days > 0")
	}
	if fc.Duration < 0 {
		return fmt.Errorf("duration cannot be negative")
	}
	if fc.CPFUsage.IsNegative() || fc.CPFUsage.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("cpf_usage must be between 0 and 100 percent")
	}
	if fc.Grants.IsNegative() {
		return fmt.Errorf("grants cannot be negative")
	}
	return nil
}

// CreateExampleProfile builds a starter profile with the default Singapore
// household figures.
func (ip *InputParser) CreateExampleProfile() *domain.CompleteProfile {
	now := time.Now().UTC()
	financial := domain.FinancialState{
		CurrentAge:       30,
		CurrentYear:      now.Year(),
		MonthlyIncome:    decimal.NewFromInt(5000),
		AnnualBonus:      decimal.NewFromInt(10000),
		SalaryGrowthRate: decimal.NewFromInt(3),
		CPFBalances: domain.CPFBalances{
			Ordinary: decimal.NewFromInt(50000),
			Special:  decimal.NewFromInt(30000),
			Medisave: decimal.NewFromInt(20000),
		},
		CashSavings:    decimal.NewFromInt(20000),
		Investments:    decimal.NewFromInt(10000),
		MonthlySavings: decimal.NewFromInt(1000),
	}
	financial.RecomputeNetWorth()

	scenario := domain.Scenario{
		ID:        "scenario-baseline",
		Name:      "My Plan",
		Color:     domain.ScenarioColors[0],
		CreatedAt: now,
		Financial: financial,
	}

	return &domain.CompleteProfile{
		ID:               "profile-example",
		Name:             "Example Life Plan",
		Description:      "Starter profile with typical Singapore figures",
		Version:          "1.0.0",
		CreatedAt:        now,
		UpdatedAt:        now,
		Financial:        financial,
		Scenarios:        []domain.Scenario{scenario},
		ActiveScenarioID: scenario.ID,
	}
}

// SaveToFile writes a profile back to disk, YAML or JSON by extension.
func (ip *InputParser) SaveToFile(profile *domain.CompleteProfile, filename string) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json":
		data, err = json.MarshalIndent(profile, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(profile)
	default:
		return fmt.Errorf("unsupported profile format %q (want .yaml, .yml or .json)", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
