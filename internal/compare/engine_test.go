package compare

import (
	"context"
	"testing"

	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenario(name string, initialCash, monthly int64) domain.Scenario {
	return domain.Scenario{
		Name: name,
		ProjectionInput: domain.ProjectionInput{
			BaseMonth:     "2025-01",
			HorizonMonths: 24,
			InitialCash:   decimal.NewFromInt(initialCash),
			Events: []domain.Event{
				{Name: "net", Type: domain.EventTypeCustom, StartMonth: "2025-01", MonthlyAmount: decimal.NewFromInt(monthly)},
			},
		},
	}
}

func testConfig() *domain.Configuration {
	return &domain.Configuration{Scenarios: []domain.Scenario{
		scenario("steady", 10000, 500),
		scenario("drain", 10000, -1000),
		scenario("saver", 10000, 1500),
	}}
}

func TestCompareEngine_Compare(t *testing.T) {
	engine := NewCompareEngine(nil)

	set, err := engine.Compare(context.Background(), testConfig(), CompareOptions{
		BaseScenarioName: "steady",
		ConfigPath:       "household.yaml",
	})
	require.NoError(t, err)

	assert.Equal(t, "steady", set.BaseScenarioName)
	assert.Equal(t, "household.yaml", set.ConfigPath)
	require.NotNil(t, set.BaseResult)
	// 10000 + 24 * 500
	assert.True(t, decimal.NewFromInt(22000).Equal(set.BaseResult.FinalNetWorth))
	assert.Equal(t, domain.RiskLow, set.BaseResult.RiskLevel)

	require.Len(t, set.AlternativeResults, 2)
	drain := set.AlternativeResults[0]
	assert.Equal(t, "drain", drain.ScenarioName)
	// 10000 - 24 * 1000
	assert.True(t, decimal.NewFromInt(-14000).Equal(drain.FinalNetWorth))
	assert.True(t, decimal.NewFromInt(-36000).Equal(drain.FinalNetWorthDiff))
	assert.Equal(t, domain.RiskHigh, drain.RiskLevel)
	assert.True(t, drain.RiskChanged)
	assert.Equal(t, 10, drain.RunwayMonths)

	saver := set.AlternativeResults[1]
	assert.Equal(t, "saver", saver.ScenarioName)
	assert.True(t, decimal.NewFromInt(24000).Equal(saver.FinalNetWorthDiff))

	assert.NotEmpty(t, set.Recommendations)
	assert.Contains(t, set.Recommendations[0], "Best Net Worth: saver")

	report := set.ToReport()
	assert.Len(t, report.Scenarios, 3)
}

func TestCompareEngine_CompareSelected(t *testing.T) {
	engine := NewCompareEngine(nil)

	set, err := engine.Compare(context.Background(), testConfig(), CompareOptions{
		BaseScenarioName: "steady",
		Alternatives:     []string{"saver"},
	})
	require.NoError(t, err)
	require.Len(t, set.AlternativeResults, 1)
	assert.Equal(t, "saver", set.AlternativeResults[0].ScenarioName)
}

func TestCompareEngine_Errors(t *testing.T) {
	engine := NewCompareEngine(nil)
	ctx := context.Background()

	_, err := engine.Compare(ctx, testConfig(), CompareOptions{BaseScenarioName: "missing"})
	assert.ErrorContains(t, err, "base scenario missing not found")

	_, err = engine.Compare(ctx, testConfig(), CompareOptions{BaseScenarioName: "steady", Alternatives: []string{"nope"}})
	assert.ErrorContains(t, err, "alternative scenario nope not found")

	bad := testConfig()
	bad.Scenarios[1].BaseMonth = "2025-13"
	_, err = engine.Compare(ctx, bad, CompareOptions{BaseScenarioName: "steady"})
	assert.ErrorContains(t, err, "failed to calculate scenario drain")

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = engine.Compare(cancelled, testConfig(), CompareOptions{BaseScenarioName: "steady"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompareEngine_CompareTemplates(t *testing.T) {
	engine := NewCompareEngine(nil)

	set, err := engine.Compare(context.Background(), testConfig(), CompareOptions{
		BaseScenarioName: "drain",
		Templates:        []string{"spend_less_10pct"},
	})
	require.NoError(t, err)
	require.Len(t, set.AlternativeResults, 1)

	alt := set.AlternativeResults[0]
	assert.Equal(t, "drain_spend_less_10pct", alt.ScenarioName)
	assert.Equal(t, "Cut every outflow event by 10%", alt.Description)
	// 10000 - 24 * 900
	assert.True(t, decimal.NewFromInt(-11600).Equal(alt.FinalNetWorth))
	assert.True(t, decimal.NewFromInt(2400).Equal(alt.FinalNetWorthDiff))
}

func TestCompareEngine_CompareScenariosAndTemplates(t *testing.T) {
	engine := NewCompareEngine(nil)

	set, err := engine.Compare(context.Background(), testConfig(), CompareOptions{
		BaseScenarioName: "steady",
		Alternatives:     []string{"saver"},
		Templates:        []string{"income_shock_20pct"},
	})
	require.NoError(t, err)
	require.Len(t, set.AlternativeResults, 2)
	assert.Equal(t, "saver", set.AlternativeResults[0].ScenarioName)
	assert.Equal(t, "steady_income_shock_20pct", set.AlternativeResults[1].ScenarioName)
	assert.True(t, decimal.NewFromInt(-2400).Equal(set.AlternativeResults[1].FinalNetWorthDiff))
}

func TestCompareEngine_TemplateErrors(t *testing.T) {
	engine := NewCompareEngine(nil)
	ctx := context.Background()

	_, err := engine.Compare(ctx, testConfig(), CompareOptions{BaseScenarioName: "steady", Templates: []string{"retire_early"}})
	assert.ErrorContains(t, err, "template retire_early not found")

	_, err = engine.Compare(ctx, testConfig(), CompareOptions{BaseScenarioName: "steady", Templates: []string{"delay_purchase_6mo"}})
	assert.ErrorContains(t, err, "failed to apply template delay_purchase_6mo")
}
