package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sgplan/lifeplan/internal/domain"
)

func newScenario(name, description string, color domain.ScenarioColor, fs domain.FinancialState, modules []domain.TimelineModule) *domain.Scenario {
	return &domain.Scenario{
		ID:          fmt.Sprintf("scenario-%s", uuid.NewString()),
		Name:        name,
		Description: description,
		Color:       color,
		CreatedAt:   time.Now().UTC(),
		Modules:     domain.CloneModules(modules),
		Financial:   fs.Clone(),
	}
}

// nextColor picks the first palette entry no scenario uses yet; once the
// palette is exhausted it cycles by scenario count.
func (c *Context) nextColor() domain.ScenarioColor {
	used := make(map[string]bool, len(c.order))
	for _, id := range c.order {
		used[c.scenarios[id].Color.ID] = true
	}
	for _, col := range domain.ScenarioColors {
		if !used[col.ID] {
			return col
		}
	}
	return domain.ScenarioColors[len(c.order)%len(domain.ScenarioColors)]
}

// CreateBranch forks the active scenario: a deep copy of its state and
// modules under a new identity, recording where and when it branched. The new
// branch becomes active.
func (c *Context) CreateBranch(name, description string, color *domain.ScenarioColor, branchAge int) (*domain.Scenario, error) {
	parent, err := c.ActiveScenario()
	if err != nil {
		return nil, err
	}
	col := c.nextColor()
	if color != nil {
		col = *color
	}
	if branchAge == 0 {
		branchAge = parent.Financial.CurrentAge
	}

	branch := newScenario(name, description, col, parent.Financial, parent.Modules)
	branch.BranchedFrom = parent.ID
	branch.BranchAge = branchAge

	c.insert(branch)
	c.activeID = branch.ID
	return branch, nil
}

// SwitchScenario makes another scenario active. The switch is atomic: either
// the scenario exists and becomes active, or the state is untouched.
func (c *Context) SwitchScenario(scenarioID string) error {
	if _, ok := c.scenarios[scenarioID]; !ok {
		return fmt.Errorf("scenario %q not found", scenarioID)
	}
	c.activeID = scenarioID
	return nil
}

// DeleteScenario removes a scenario. Deleting the active one falls back to
// the oldest remaining scenario; the last scenario cannot be deleted.
func (c *Context) DeleteScenario(scenarioID string) error {
	if _, ok := c.scenarios[scenarioID]; !ok {
		return fmt.Errorf("scenario %q not found", scenarioID)
	}
	if len(c.order) == 1 {
		return fmt.Errorf("cannot delete the only scenario")
	}
	delete(c.scenarios, scenarioID)
	for i, id := range c.order {
		if id == scenarioID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	if c.activeID == scenarioID {
		c.activeID = c.order[0]
	}
	return nil
}

// DuplicateScenario deep-copies a scenario under a new name and identity,
// recording the source as its parent. The copy does not become active.
func (c *Context) DuplicateScenario(scenarioID, newName string) (*domain.Scenario, error) {
	src, ok := c.scenarios[scenarioID]
	if !ok {
		return nil, fmt.Errorf("scenario %q not found", scenarioID)
	}
	dup := src.Clone()
	dup.ID = fmt.Sprintf("scenario-%s", uuid.NewString())
	dup.Name = newName
	dup.BranchedFrom = scenarioID
	dup.CreatedAt = time.Now().UTC()

	c.insert(&dup)
	return &dup, nil
}

// RenameScenario changes a scenario's display name.
func (c *Context) RenameScenario(scenarioID, name string) error {
	s, ok := c.scenarios[scenarioID]
	if !ok {
		return fmt.Errorf("scenario %q not found", scenarioID)
	}
	s.Name = name
	return nil
}

// RecolorScenario changes a scenario's palette color.
func (c *Context) RecolorScenario(scenarioID string, color domain.ScenarioColor) error {
	s, ok := c.scenarios[scenarioID]
	if !ok {
		return fmt.Errorf("scenario %q not found", scenarioID)
	}
	s.Color = color
	return nil
}

// CompareScenarios simulates every scenario independently and returns the
// side-by-side comparison.
func (c *Context) CompareScenarios(ctx context.Context) (*domain.ScenarioComparison, error) {
	active, err := c.ActiveScenario()
	if err != nil {
		return nil, err
	}
	profile := &domain.CompleteProfile{
		Financial:        active.Financial.Clone(),
		Scenarios:        c.Scenarios(),
		ActiveScenarioID: c.activeID,
	}
	return c.engine.CompareScenarios(ctx, profile)
}
