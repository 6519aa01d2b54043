package domain

import (
	"time"
)

// ScenarioColor is one of the preset palette entries used to color a branch.
type ScenarioColor struct {
	ID    string `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Color string `yaml:"color" json:"color"`
	Dark  string `yaml:"dark" json:"dark"`
}

// ScenarioColors is the fixed 8-color palette assigned to new branches in
// order; once exhausted the planner cycles through it by index.
var ScenarioColors = []ScenarioColor{
	{ID: "blue", Name: "Ocean Blue", Color: "#66d9ef", Dark: "#4db8d9"},
	{ID: "green", Name: "Forest Green", Color: "#a6e22e", Dark: "#8bc621"},
	{ID: "pink", Name: "Cherry Pink", Color: "#ff6b9d", Dark: "#e5518a"},
	{ID: "purple", Name: "Royal Purple", Color: "#ae81ff", Dark: "#9b6ce6"},
	{ID: "orange", Name: "Sunset Orange", Color: "#fd971f", Dark: "#e87d0c"},
	{ID: "yellow", Name: "Golden Yellow", Color: "#ffeb3b", Dark: "#fdd835"},
	{ID: "red", Name: "Ruby Red", Color: "#f92672", Dark: "#e01558"},
	{ID: "cyan", Name: "Sky Cyan", Color: "#00bcd4", Dark: "#0097a7"},
}

// Scenario is a named, colored branch of the timeline: a snapshot of the
// financial state plus its own module list. BranchedFrom/BranchAge record
// lineage for display only; each scenario's module list is simulated
// independently.
type Scenario struct {
	ID          string        `yaml:"id" json:"id"`
	Name        string        `yaml:"name" json:"name"`
	Description string        `yaml:"description,omitempty" json:"description,omitempty"`
	Color       ScenarioColor `yaml:"color" json:"color"`

	BranchedFrom string `yaml:"branched_from,omitempty" json:"branchedFrom,omitempty"`
	BranchAge    int    `yaml:"branch_age,omitempty" json:"branchAge,omitempty"`

	CreatedAt time.Time `yaml:"created_at" json:"createdAt"`

	Modules   []TimelineModule `yaml:"modules" json:"modules"`
	Financial FinancialState   `yaml:"financial" json:"financial"`
}

// Clone deep-copies the scenario, keeping its identity.
func (s Scenario) Clone() Scenario {
	out := s
	out.Modules = CloneModules(s.Modules)
	out.Financial = s.Financial.Clone()
	return out
}

// ProfileStats are the precomputed preview statistics embedded in an exported
// profile.
type ProfileStats struct {
	RetirementAge   int   `yaml:"retirement_age" json:"retirementAge"`
	FinalNetWorth   int64 `yaml:"final_net_worth" json:"finalNetWorth"`
	PeakCashFlow    int64 `yaml:"peak_cash_flow" json:"peakCashFlow"`
	TotalLifeEvents int   `yaml:"total_life_events" json:"totalLifeEvents"`
}

// CompleteProfile bundles everything needed to restore or share a life plan:
// the financial state, every scenario, user-defined custom modules and
// preview metadata. The projection engine never reads or writes this shape;
// the surrounding application feeds the engine its sub-fields.
type CompleteProfile struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Author      string   `yaml:"author,omitempty" json:"author,omitempty"`
	Version     string   `yaml:"version" json:"version"`
	IsTemplate  bool     `yaml:"is_template" json:"isTemplate"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`

	CreatedAt time.Time `yaml:"created_at" json:"createdAt"`
	UpdatedAt time.Time `yaml:"updated_at" json:"updatedAt"`

	Financial        FinancialState   `yaml:"financial" json:"financial"`
	Scenarios        []Scenario       `yaml:"scenarios" json:"scenarios"`
	ActiveScenarioID string           `yaml:"active_scenario_id,omitempty" json:"activeScenarioId,omitempty"`
	CustomModules    []TimelineModule `yaml:"custom_modules,omitempty" json:"customModules,omitempty"`

	Stats ProfileStats `yaml:"stats" json:"stats"`
}
