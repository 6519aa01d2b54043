package catalog

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgplan/lifeplan/internal/domain"
)

func anchor() domain.FinancialState {
	return domain.FinancialState{CurrentAge: 30, CurrentYear: 2026}
}

func TestTemplatesAreIsolatedCopies(t *testing.T) {
	first := Templates()
	first[0].Name = "mutated"
	first[0].Costs.OneTime = decimal.NewFromInt(1)

	second := Templates()
	assert.NotEqual(t, "mutated", second[0].Name, "callers must not be able to poison the catalog")
}

func TestTemplatesAreValid(t *testing.T) {
	for _, tpl := range Templates() {
		assert.NotEmpty(t, tpl.ID)
		assert.NotEmpty(t, tpl.Name, "%s", tpl.ID)
		assert.True(t, domain.ValidModuleType(tpl.Type), "%s: type %s", tpl.ID, tpl.Type)
		assert.True(t, tpl.Removable, "%s: catalog templates are always removable", tpl.ID)
	}
}

func TestTemplateByID(t *testing.T) {
	tpl, err := TemplateByID("bto-4room")
	require.NoError(t, err)
	assert.Equal(t, "4-Room BTO", tpl.Name)
	assert.Equal(t, domain.ModuleHouse, tpl.Type)

	_, err = TemplateByID("no-such-module")
	assert.Error(t, err)
}

func TestInstantiateAssignsIdentityAndYear(t *testing.T) {
	tpl, err := TemplateByID("marriage")
	require.NoError(t, err)

	m := Instantiate(tpl, 33, anchor())
	assert.True(t, strings.HasPrefix(m.ID, "marriage-"), "instance ID keeps the template prefix")
	assert.NotEqual(t, tpl.ID, m.ID)
	assert.Equal(t, 33, m.Age)
	assert.Equal(t, 2029, m.Year)

	other := Instantiate(tpl, 33, anchor())
	assert.NotEqual(t, m.ID, other.ID, "each placement is a distinct instance")
}

func TestInstantiateHouseNetsGrantsAndAmortizes(t *testing.T) {
	tpl, err := TemplateByID("bto-4room")
	require.NoError(t, err)
	tpl.Costs.Grants = decimal.NewFromInt(30000)

	m := Instantiate(tpl, 32, anchor())

	// Downpayment 80,000 gross less 30,000 in grants.
	assert.True(t, m.Costs.OneTime.Equal(decimal.NewFromInt(50000)),
		"expected 50000, got %s", m.Costs.OneTime)
	assert.True(t, m.Costs.Grants.Equal(decimal.NewFromInt(30000)), "grants carried for the engine")
	assert.True(t, m.Costs.CPFUsage.Equal(decimal.NewFromInt(80)))

	// The flat catalog monthly is replaced by the amortized mortgage on the
	// loan the downpayment implies: 80,000 is the 25% equity share, so the
	// loan is 240,000 at 2.6% over 25 years, about $1,089/month.
	assert.Equal(t, 300, m.Costs.Duration)
	assert.True(t, m.Costs.Monthly.GreaterThan(decimal.NewFromInt(1080)), "got %s", m.Costs.Monthly)
	assert.True(t, m.Costs.Monthly.LessThan(decimal.NewFromInt(1095)), "got %s", m.Costs.Monthly)

	// Grants shrink the cash due at placement, never the financed principal.
	plain, err := TemplateByID("bto-4room")
	require.NoError(t, err)
	withoutGrants := Instantiate(plain, 32, anchor())
	assert.True(t, withoutGrants.Costs.Monthly.Equal(m.Costs.Monthly),
		"same loan with or without grants, got %s vs %s", withoutGrants.Costs.Monthly, m.Costs.Monthly)
}

func TestInstantiateHouseGrantsExceedingDownpayment(t *testing.T) {
	tpl, err := TemplateByID("bto-1room")
	require.NoError(t, err)
	tpl.Costs.Grants = decimal.NewFromInt(80000)

	m := Instantiate(tpl, 31, anchor())
	assert.True(t, m.Costs.OneTime.IsZero(), "net downpayment never goes negative")
}

func TestInstantiateNonHouseKeepsCosts(t *testing.T) {
	tpl, err := TemplateByID("car")
	require.NoError(t, err)

	m := Instantiate(tpl, 40, anchor())
	assert.True(t, m.Costs.OneTime.Equal(decimal.NewFromInt(120000)))
	assert.True(t, m.Costs.Monthly.Equal(decimal.NewFromInt(2000)))
	assert.Equal(t, 120, m.Costs.Duration)
}

func TestNewCustomModule(t *testing.T) {
	t.Run("valid expense", func(t *testing.T) {
		m, err := NewCustomModule(CustomModuleInput{
			Name:      "Pet Dog",
			Amount:    decimal.NewFromInt(300),
			Frequency: domain.FrequencyMonthly,
			Duration:  120,
		})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(m.ID, "custom-"))
		assert.Equal(t, domain.ModuleCustom, m.Type)
		assert.True(t, m.IsCustom)
		assert.True(t, m.Removable)
		assert.True(t, m.Costs.Amount.Equal(decimal.NewFromInt(300)))
		assert.Nil(t, m.Income, "an expense never populates the income side")
	})

	t.Run("valid income", func(t *testing.T) {
		m, err := NewCustomModule(CustomModuleInput{
			Name:      "Rental Income",
			Amount:    decimal.NewFromInt(1800),
			Frequency: domain.FrequencyMonthly,
			IsIncome:  true,
		})
		require.NoError(t, err)
		require.NotNil(t, m.Income)
		assert.True(t, m.Income.Amount.Equal(decimal.NewFromInt(1800)))
		assert.True(t, m.Costs.IsZero(), "an income never populates the expense side")
	})

	t.Run("defaults to one-time", func(t *testing.T) {
		m, err := NewCustomModule(CustomModuleInput{Name: "Gift", Amount: decimal.NewFromInt(5000)})
		require.NoError(t, err)
		assert.Equal(t, domain.FrequencyOneTime, m.Costs.Frequency)
	})

	rejections := []struct {
		name  string
		input CustomModuleInput
	}{
		{"blank name", CustomModuleInput{Name: "   ", Amount: decimal.NewFromInt(100)}},
		{"zero amount", CustomModuleInput{Name: "Thing", Amount: decimal.Zero}},
		{"negative amount", CustomModuleInput{Name: "Thing", Amount: decimal.NewFromInt(-50)}},
		{"unknown frequency", CustomModuleInput{Name: "Thing", Amount: decimal.NewFromInt(100), Frequency: "fortnightly"}},
		{"custom without period", CustomModuleInput{Name: "Thing", Amount: decimal.NewFromInt(100), Frequency: domain.FrequencyCustom}},
	}
	for _, tt := range rejections {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCustomModule(tt.input)
			assert.Error(t, err)
		})
	}
}
