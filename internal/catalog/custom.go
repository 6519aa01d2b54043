package catalog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sgplan/lifeplan/internal/domain"
)

// CustomModuleInput describes a user-defined life event before placement.
type CustomModuleInput struct {
	Name        string
	Description string
	Icon        string
	Color       string

	Amount           decimal.Decimal
	Frequency        domain.CostFrequency
	CustomPeriodDays int
	Duration         int

	// IsIncome flips the amount from an expense into an income stream.
	IsIncome bool
}

// NewCustomModule validates the input and builds an unplaced custom module.
// The amount lands on exactly one side: Costs for expenses, Income otherwise.
func NewCustomModule(in CustomModuleInput) (domain.TimelineModule, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.TimelineModule{}, fmt.Errorf("custom module needs a name")
	}
	if !in.Amount.IsPositive() {
		return domain.TimelineModule{}, fmt.Errorf("custom module %q: amount must be positive, got %s", in.Name, in.Amount)
	}
	freq := in.Frequency
	if freq == "" {
		freq = domain.FrequencyOneTime
	}
	if !domain.ValidCostFrequency(freq) {
		return domain.TimelineModule{}, fmt.Errorf("custom module %q: unknown frequency %q", in.Name, freq)
	}
	if freq == domain.FrequencyCustom && in.CustomPeriodDays <= 0 {
		return domain.TimelineModule{}, fmt.Errorf("custom module %q: custom frequency requires a period in days", in.Name)
	}

	cost := domain.FlexibleCost{
		Amount:           in.Amount,
		Frequency:        freq,
		CustomPeriodDays: in.CustomPeriodDays,
		Duration:         in.Duration,
	}

	m := domain.TimelineModule{
		ID:          fmt.Sprintf("custom-%s", uuid.NewString()),
		Type:        domain.ModuleCustom,
		Name:        in.Name,
		Icon:        in.Icon,
		Color:       in.Color,
		Description: in.Description,
		Removable:   true,
		IsCustom:    true,
	}
	if in.IsIncome {
		m.Income = &cost
	} else {
		m.Costs = cost
	}
	return m, nil
}
