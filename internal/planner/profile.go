package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sgplan/lifeplan/internal/domain"
)

const profileVersion = "1.0.0"

// ExportProfile packages the whole session as a shareable profile, with
// preview statistics computed from a fresh run of the active scenario.
func (c *Context) ExportProfile(name, description, author string, tags []string) (*domain.CompleteProfile, error) {
	active, err := c.ActiveScenario()
	if err != nil {
		return nil, err
	}
	summary, err := c.engine.RunScenario(context.Background(), active)
	if err != nil {
		return nil, fmt.Errorf("computing profile stats: %w", err)
	}

	totalEvents := 0
	for _, id := range c.order {
		totalEvents += len(c.scenarios[id].Modules)
	}

	now := time.Now().UTC()
	return &domain.CompleteProfile{
		ID:          fmt.Sprintf("profile-%s", uuid.NewString()),
		Name:        name,
		Description: description,
		Author:      author,
		Version:     profileVersion,
		Tags:        tags,
		CreatedAt:   now,
		UpdatedAt:   now,

		Financial:        active.Financial.Clone(),
		Scenarios:        c.Scenarios(),
		ActiveScenarioID: c.activeID,
		CustomModules:    domain.CloneModules(c.customModules),

		Stats: domain.ProfileStats{
			RetirementAge:   summary.RetirementAge,
			FinalNetWorth:   summary.FinalNetWorth,
			PeakCashFlow:    summary.PeakCashFlow,
			TotalLifeEvents: totalEvents,
		},
	}, nil
}

// ImportProfile replaces the whole session atomically with the profile's
// contents. Validation happens up front; a rejected profile leaves the
// current session untouched.
func (c *Context) ImportProfile(profile *domain.CompleteProfile) error {
	if profile == nil {
		return fmt.Errorf("nil profile")
	}
	if len(profile.Scenarios) == 0 {
		return fmt.Errorf("profile %q has no scenarios", profile.Name)
	}
	scenarios := make(map[string]*domain.Scenario, len(profile.Scenarios))
	order := make([]string, 0, len(profile.Scenarios))
	for i := range profile.Scenarios {
		s := profile.Scenarios[i].Clone()
		if s.ID == "" {
			return fmt.Errorf("profile %q: scenario %d has no ID", profile.Name, i)
		}
		if _, dup := scenarios[s.ID]; dup {
			return fmt.Errorf("profile %q: duplicate scenario ID %q", profile.Name, s.ID)
		}
		scenarios[s.ID] = &s
		order = append(order, s.ID)
	}
	activeID := profile.ActiveScenarioID
	if activeID == "" {
		activeID = order[0]
	}
	if _, ok := scenarios[activeID]; !ok {
		return fmt.Errorf("profile %q: active scenario %q not present", profile.Name, activeID)
	}

	c.scenarios = scenarios
	c.order = order
	c.activeID = activeID
	c.customModules = domain.CloneModules(profile.CustomModules)
	return nil
}
