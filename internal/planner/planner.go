// Package planner is the stateful coordination layer above the projection
// engine: it owns the scenario collection, applies timeline edits, and keeps
// derived figures (net worth, savings rate) coherent.
package planner

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sgplan/lifeplan/internal/calculation"
	"github.com/sgplan/lifeplan/internal/catalog"
	"github.com/sgplan/lifeplan/internal/domain"
	"github.com/sgplan/lifeplan/pkg/dateutil"
)

// Context holds the full planning session. Scenarios live in a single map
// keyed by ID with an ordered index alongside; the active scenario's state is
// authoritative and every edit lands there directly, so there is no second
// "live" copy to drift out of sync.
type Context struct {
	engine *calculation.Engine

	scenarios map[string]*domain.Scenario
	order     []string
	activeID  string

	customModules []domain.TimelineModule
}

// NewContext starts a session from the given financial state. The baseline
// scenario takes the first palette color and becomes active.
func NewContext(engine *calculation.Engine, fs domain.FinancialState) *Context {
	ctx := &Context{
		engine:    engine,
		scenarios: make(map[string]*domain.Scenario),
	}
	base := newScenario("My Plan", "", domain.ScenarioColors[0], fs, nil)
	ctx.insert(base)
	ctx.activeID = base.ID
	return ctx
}

func (c *Context) insert(s *domain.Scenario) {
	c.scenarios[s.ID] = s
	c.order = append(c.order, s.ID)
}

// ActiveScenario returns the scenario all edits currently apply to.
func (c *Context) ActiveScenario() (*domain.Scenario, error) {
	s, ok := c.scenarios[c.activeID]
	if !ok {
		return nil, fmt.Errorf("no active scenario")
	}
	return s, nil
}

// Scenarios returns deep copies of every scenario in creation order.
func (c *Context) Scenarios() []domain.Scenario {
	out := make([]domain.Scenario, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.scenarios[id].Clone())
	}
	return out
}

// CapitalUpdate is a partial overwrite of the starting balances. Nil fields
// keep their current value.
type CapitalUpdate struct {
	CashSavings *decimal.Decimal
	Investments *decimal.Decimal
	CPFOrdinary *decimal.Decimal
	CPFSpecial  *decimal.Decimal
	CPFMedisave *decimal.Decimal
}

// UpdateStartingCapital overwrites the provided balances on the active
// scenario and reconciles net worth.
func (c *Context) UpdateStartingCapital(u CapitalUpdate) error {
	s, err := c.ActiveScenario()
	if err != nil {
		return err
	}
	fs := &s.Financial
	if u.CashSavings != nil {
		fs.CashSavings = *u.CashSavings
	}
	if u.Investments != nil {
		fs.Investments = *u.Investments
	}
	if u.CPFOrdinary != nil {
		fs.CPFBalances.Ordinary = *u.CPFOrdinary
	}
	if u.CPFSpecial != nil {
		fs.CPFBalances.Special = *u.CPFSpecial
	}
	if u.CPFMedisave != nil {
		fs.CPFBalances.Medisave = *u.CPFMedisave
	}
	fs.RecomputeNetWorth()
	return nil
}

// UpdateIncome sets the monthly income and annual bonus.
func (c *Context) UpdateIncome(monthlyIncome, annualBonus decimal.Decimal) error {
	s, err := c.ActiveScenario()
	if err != nil {
		return err
	}
	if monthlyIncome.IsNegative() {
		return fmt.Errorf("monthly income cannot be negative: %s", monthlyIncome)
	}
	s.Financial.MonthlyIncome = monthlyIncome
	s.Financial.AnnualBonus = annualBonus
	return nil
}

// UpdateSalaryGrowthRate sets the annual salary growth rate in percent.
func (c *Context) UpdateSalaryGrowthRate(ratePercent decimal.Decimal) error {
	s, err := c.ActiveScenario()
	if err != nil {
		return err
	}
	s.Financial.SalaryGrowthRate = ratePercent
	return nil
}

// UpdateSavings sets the monthly savings amount directly. The savings rate is
// always derived from this amount, never stored.
func (c *Context) UpdateSavings(monthlyAmount decimal.Decimal) error {
	s, err := c.ActiveScenario()
	if err != nil {
		return err
	}
	if monthlyAmount.IsNegative() {
		return fmt.Errorf("monthly savings cannot be negative: %s", monthlyAmount)
	}
	s.Financial.MonthlySavings = monthlyAmount
	return nil
}

// UpdateSavingsRate sets savings as a percentage of monthly income; the stored
// amount is recomputed from the rate so the pair can never disagree.
func (c *Context) UpdateSavingsRate(ratePercent decimal.Decimal) error {
	s, err := c.ActiveScenario()
	if err != nil {
		return err
	}
	if ratePercent.IsNegative() || ratePercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("savings rate must be between 0 and 100, got %s", ratePercent)
	}
	s.Financial.MonthlySavings = s.Financial.MonthlyIncome.
		Mul(ratePercent).Div(decimal.NewFromInt(100))
	return nil
}

// AddModule instantiates a catalog template onto the active timeline at the
// given age and returns the placed instance.
func (c *Context) AddModule(template domain.TimelineModule, age int) (domain.TimelineModule, error) {
	s, err := c.ActiveScenario()
	if err != nil {
		return domain.TimelineModule{}, err
	}
	if age < s.Financial.CurrentAge || age > calculation.TerminalAge {
		return domain.TimelineModule{}, fmt.Errorf("module age %d outside plan horizon %d..%d",
			age, s.Financial.CurrentAge, calculation.TerminalAge)
	}
	m := catalog.Instantiate(template, age, s.Financial)
	s.Modules = append(s.Modules, m)
	return m, nil
}

// RemoveModule deletes a placed module from the active timeline.
func (c *Context) RemoveModule(moduleID string) error {
	s, err := c.ActiveScenario()
	if err != nil {
		return err
	}
	for i, m := range s.Modules {
		if m.ID == moduleID {
			if !m.Removable {
				return fmt.Errorf("module %q is not removable", m.Name)
			}
			s.Modules = append(s.Modules[:i], s.Modules[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("module %q not on the timeline", moduleID)
}

// UpdateModule replaces a placed module in place, preserving its identity and
// timeline position.
func (c *Context) UpdateModule(moduleID string, updated domain.TimelineModule) error {
	s, err := c.ActiveScenario()
	if err != nil {
		return err
	}
	for i, m := range s.Modules {
		if m.ID == moduleID {
			updated.ID = m.ID
			updated.Age = m.Age
			updated.Year = m.Year
			s.Modules[i] = updated.Clone()
			return nil
		}
	}
	return fmt.Errorf("module %q not on the timeline", moduleID)
}

// MoveModule shifts a placed module to a new age and re-derives its year.
func (c *Context) MoveModule(moduleID string, newAge int) error {
	s, err := c.ActiveScenario()
	if err != nil {
		return err
	}
	if newAge < s.Financial.CurrentAge || newAge > calculation.TerminalAge {
		return fmt.Errorf("module age %d outside plan horizon %d..%d",
			newAge, s.Financial.CurrentAge, calculation.TerminalAge)
	}
	for i := range s.Modules {
		if s.Modules[i].ID == moduleID {
			s.Modules[i].Age = newAge
			s.Modules[i].Year = dateutil.YearForAge(s.Financial.CurrentYear, s.Financial.CurrentAge, newAge)
			return nil
		}
	}
	return fmt.Errorf("module %q not on the timeline", moduleID)
}

// Projections runs the full simulation for the active scenario.
func (c *Context) Projections() ([]domain.YearSnapshot, error) {
	s, err := c.ActiveScenario()
	if err != nil {
		return nil, err
	}
	return c.engine.Project(s.Financial.CurrentAge, s.Financial, s.Modules)
}

// AddCustomModule validates and registers a user-defined module template.
func (c *Context) AddCustomModule(in catalog.CustomModuleInput) (domain.TimelineModule, error) {
	m, err := catalog.NewCustomModule(in)
	if err != nil {
		return domain.TimelineModule{}, err
	}
	c.customModules = append(c.customModules, m)
	return m, nil
}

// DeleteCustomModule removes a user-defined template. Placed instances on
// timelines are unaffected.
func (c *Context) DeleteCustomModule(moduleID string) error {
	for i, m := range c.customModules {
		if m.ID == moduleID {
			c.customModules = append(c.customModules[:i], c.customModules[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("custom module %q not found", moduleID)
}

// CustomModules returns deep copies of the registered custom templates.
func (c *Context) CustomModules() []domain.TimelineModule {
	return domain.CloneModules(c.customModules)
}
