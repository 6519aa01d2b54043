package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgplan/lifeplan/internal/domain"
)

func TestCreateExampleProfileIsValid(t *testing.T) {
	parser := NewInputParser()
	profile := parser.CreateExampleProfile()

	require.NoError(t, parser.ValidateProfile(profile))
	assert.Equal(t, 30, profile.Financial.CurrentAge)
	assert.True(t, profile.Financial.MonthlyIncome.Equal(decimal.NewFromInt(5000)))
	assert.True(t, profile.Financial.NetWorth.Equal(decimal.NewFromInt(130000)))
	require.Len(t, profile.Scenarios, 1)
	assert.Equal(t, profile.Scenarios[0].ID, profile.ActiveScenarioID)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	parser := NewInputParser()
	profile := parser.CreateExampleProfile()
	profile.Scenarios[0].Modules = []domain.TimelineModule{
		{
			ID:   "module-wedding",
			Type: domain.ModuleMarriage,
			Name: "Wedding",
			Age:  33,
			Year: 2029,
			Costs: domain.FlexibleCost{
				OneTime:   decimal.NewFromInt(30000),
				Frequency: domain.FrequencyOneTime,
			},
		},
	}

	for _, ext := range []string{".yaml", ".json"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "profile"+ext)
			require.NoError(t, parser.SaveToFile(profile, path))

			loaded, err := parser.LoadFromFile(path)
			require.NoError(t, err)

			assert.Equal(t, profile.Name, loaded.Name)
			assert.Equal(t, profile.ActiveScenarioID, loaded.ActiveScenarioID)
			require.Len(t, loaded.Scenarios, 1)
			require.Len(t, loaded.Scenarios[0].Modules, 1)
			m := loaded.Scenarios[0].Modules[0]
			assert.Equal(t, domain.ModuleMarriage, m.Type)
			assert.True(t, m.Costs.OneTime.Equal(decimal.NewFromInt(30000)),
				"one-time cost survives the round trip, got %s", m.Costs.OneTime)
			assert.True(t, loaded.Financial.MonthlyIncome.Equal(profile.Financial.MonthlyIncome))
		})
	}
}

func TestLoadRejectsUnsupportedExtension(t *testing.T) {
	parser := NewInputParser()
	path := filepath.Join(t.TempDir(), "profile.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = \"x\""), 0o644))

	_, err := parser.LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported profile format")

	require.Error(t, parser.SaveToFile(parser.CreateExampleProfile(), path))
}

func TestLoadRejectsMalformedContent(t *testing.T) {
	parser := NewInputParser()
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte("{not json"), 0o644))
	_, err := parser.LoadFromFile(jsonPath)
	assert.Error(t, err)

	yamlPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(":\n  - ]["), 0o644))
	_, err = parser.LoadFromFile(yamlPath)
	assert.Error(t, err)

	_, err = parser.LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateProfile(t *testing.T) {
	parser := NewInputParser()

	valid := func() *domain.CompleteProfile { return parser.CreateExampleProfile() }

	tests := []struct {
		name    string
		mutate  func(p *domain.CompleteProfile)
		wantErr string
	}{
		{
			name:    "no scenarios",
			mutate:  func(p *domain.CompleteProfile) { p.Scenarios = nil },
			wantErr: "no scenarios",
		},
		{
			name: "duplicate scenario IDs",
			mutate: func(p *domain.CompleteProfile) {
				p.Scenarios = append(p.Scenarios, p.Scenarios[0])
			},
			wantErr: "duplicate scenario ID",
		},
		{
			name: "active scenario missing",
			mutate: func(p *domain.CompleteProfile) {
				p.ActiveScenarioID = "scenario-ghost"
			},
			wantErr: "not among scenarios",
		},
		{
			name: "negative income",
			mutate: func(p *domain.CompleteProfile) {
				p.Financial.MonthlyIncome = decimal.NewFromInt(-1)
			},
			wantErr: "monthly income",
		},
		{
			name: "age beyond horizon",
			mutate: func(p *domain.CompleteProfile) {
				p.Financial.CurrentAge = 200
			},
			wantErr: "current age",
		},
		{
			name: "scenario without name",
			mutate: func(p *domain.CompleteProfile) {
				p.Scenarios[0].Name = ""
			},
			wantErr: "scenario name is required",
		},
		{
			name: "module with unknown type",
			mutate: func(p *domain.CompleteProfile) {
				p.Scenarios[0].Modules = []domain.TimelineModule{{
					ID:   "module-x",
					Type: "time-machine",
					Age:  40,
				}}
			},
			wantErr: "unknown module type",
		},
		{
			name: "module with unknown frequency",
			mutate: func(p *domain.CompleteProfile) {
				p.Scenarios[0].Modules = []domain.TimelineModule{{
					ID:    "module-x",
					Type:  domain.ModuleCustom,
					Age:   40,
					Costs: domain.FlexibleCost{Frequency: "fortnightly"},
				}}
			},
			wantErr: "unknown frequency",
		},
		{
			name: "custom frequency without period days",
			mutate: func(p *domain.CompleteProfile) {
				p.Scenarios[0].Modules = []domain.TimelineModule{{
					ID:    "module-x",
					Type:  domain.ModuleCustom,
					Age:   40,
					Costs: domain.FlexibleCost{Frequency: domain.FrequencyCustom},
				}}
			},
			wantErr: "custom_period_days",
		},
		{
			name: "cpf usage above 100",
			mutate: func(p *domain.CompleteProfile) {
				p.Scenarios[0].Modules = []domain.TimelineModule{{
					ID:    "module-x",
					Type:  domain.ModuleHouse,
					Age:   40,
					Costs: domain.FlexibleCost{CPFUsage: decimal.NewFromInt(120)},
				}}
			},
			wantErr: "cpf_usage",
		},
		{
			name: "invalid custom module",
			mutate: func(p *domain.CompleteProfile) {
				p.CustomModules = []domain.TimelineModule{{
					Type: domain.ModuleCustom,
					Age:  40,
				}}
			},
			wantErr: "module ID is required",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			profile := valid()
			tc.mutate(profile)
			err := parser.ValidateProfile(profile)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
