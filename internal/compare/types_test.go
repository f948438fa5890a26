package compare

import (
	"strings"
	"testing"

	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

func TestMetricsCalculator_CalculateMetrics(t *testing.T) {
	calc := NewMetricsCalculator()

	projection := &domain.ProjectionResult{
		BaseMonth:            "2025-01",
		Months:               []string{"2025-01", "2025-02"},
		CashBalance:          []decimal.Decimal{decimal.NewFromInt(900), decimal.NewFromInt(800)},
		NetWorth:             []decimal.Decimal{decimal.NewFromInt(1900), decimal.NewFromInt(2100)},
		LowestMonthlyBalance: domain.LowestBalance{Value: decimal.NewFromInt(800), Index: 1, Month: "2025-02"},
		RunwayMonths:         8,
		NetWorthYear5:        decimal.NewFromInt(2100),
		RiskLevel:            domain.RiskLow,
	}

	result := calc.CalculateMetrics("Test Scenario", "desc", projection)

	if result.ScenarioName != "Test Scenario" || result.Description != "desc" {
		t.Errorf("Unexpected name/description %s/%s", result.ScenarioName, result.Description)
	}
	if result.Result != projection {
		t.Error("Expected the projection to be kept")
	}
	if !result.FinalNetWorth.Equal(decimal.NewFromInt(2100)) {
		t.Errorf("Expected final net worth 2100, got %s", result.FinalNetWorth)
	}
	if !result.FinalCash.Equal(decimal.NewFromInt(800)) {
		t.Errorf("Expected final cash 800, got %s", result.FinalCash)
	}
	if !result.LowestBalance.Equal(decimal.NewFromInt(800)) || result.LowestBalanceMonth != "2025-02" {
		t.Errorf("Unexpected lowest balance %s in %s", result.LowestBalance, result.LowestBalanceMonth)
	}
	if result.RunwayMonths != 8 || result.RiskLevel != domain.RiskLow {
		t.Errorf("Unexpected runway/risk %d/%s", result.RunwayMonths, result.RiskLevel)
	}
}

func TestMetricsCalculator_CalculateComparison(t *testing.T) {
	calc := NewMetricsCalculator()

	base := ComparisonResult{
		ScenarioName:  "Base",
		NetWorthYear5: decimal.NewFromInt(100000),
		FinalNetWorth: decimal.NewFromInt(300000),
		LowestBalance: decimal.NewFromInt(10000),
		RunwayMonths:  12,
		RiskLevel:     domain.RiskLow,
	}

	scenario := ComparisonResult{
		ScenarioName:  "Alternative",
		NetWorthYear5: decimal.NewFromInt(90000),
		FinalNetWorth: decimal.NewFromInt(320000),
		LowestBalance: decimal.NewFromInt(4000),
		RunwayMonths:  4,
		RiskLevel:     domain.RiskMedium,
	}

	result := calc.CalculateComparison(scenario, base)

	if !result.NetWorthYear5Diff.Equal(decimal.NewFromInt(-10000)) {
		t.Errorf("Expected year-5 diff -10000, got %s", result.NetWorthYear5Diff)
	}
	if !result.FinalNetWorthDiff.Equal(decimal.NewFromInt(20000)) {
		t.Errorf("Expected final diff 20000, got %s", result.FinalNetWorthDiff)
	}

	// 20000 / 300000 * 100 = 6.67%
	expectedPct := decimal.NewFromFloat(6.666666666666667)
	if result.FinalNetWorthPct.Sub(expectedPct).Abs().GreaterThan(decimal.NewFromFloat(0.01)) {
		t.Errorf("Expected pct ~6.67, got %s", result.FinalNetWorthPct)
	}
	if !result.LowestBalanceDiff.Equal(decimal.NewFromInt(-6000)) {
		t.Errorf("Expected lowest balance diff -6000, got %s", result.LowestBalanceDiff)
	}
	if result.RunwayDiff != -8 {
		t.Errorf("Expected runway diff -8, got %d", result.RunwayDiff)
	}
	if !result.RiskChanged {
		t.Error("Expected risk change")
	}
}

func TestMetricsCalculator_CalculateComparison_ZeroBase(t *testing.T) {
	calc := NewMetricsCalculator()
	result := calc.CalculateComparison(
		ComparisonResult{FinalNetWorth: decimal.NewFromInt(500)},
		ComparisonResult{FinalNetWorth: decimal.Zero},
	)
	if !result.FinalNetWorthPct.IsZero() {
		t.Errorf("Expected zero pct against a zero base, got %s", result.FinalNetWorthPct)
	}
}

func TestGenerateRecommendations(t *testing.T) {
	baseResult := &ComparisonResult{
		ScenarioName:  "Base",
		FinalNetWorth: decimal.NewFromInt(300000),
		LowestBalance: decimal.NewFromInt(10000),
		RunwayMonths:  10,
		RiskLevel:     domain.RiskLow,
	}

	alt1 := ComparisonResult{
		ScenarioName:       "Alternative 1",
		FinalNetWorth:      decimal.NewFromInt(350000),
		LowestBalance:      decimal.NewFromInt(-1000),
		LowestBalanceMonth: "2026-03",
		RunwayMonths:       2,
		RiskLevel:          domain.RiskHigh,
	}

	alt2 := ComparisonResult{
		ScenarioName:  "Alternative 2",
		FinalNetWorth: decimal.NewFromInt(310000),
		LowestBalance: decimal.NewFromInt(25000),
		RunwayMonths:  18,
		RiskLevel:     domain.RiskLow,
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   "Base",
		BaseResult:         baseResult,
		AlternativeResults: []ComparisonResult{alt1, alt2},
	}

	recommendations := GenerateRecommendations(compSet)

	if len(recommendations) != 4 {
		t.Fatalf("Expected 4 recommendations, got %d: %v", len(recommendations), recommendations)
	}

	expected := []string{
		"Best Net Worth: Alternative 1 ends $50000 ahead",
		"Best Liquidity: Alternative 2 keeps its lowest cash balance $15000 higher",
		"Longest Runway: Alternative 2 extends runway by 8 months",
		"Caution: Alternative 1 raises liquidity risk from Low to High (cash goes negative in 2026-03)",
	}
	for i, want := range expected {
		if !strings.HasPrefix(recommendations[i], want) {
			t.Errorf("Recommendation %d = %q, want prefix %q", i, recommendations[i], want)
		}
	}
}

func TestGenerateRecommendations_EmptyAlternatives(t *testing.T) {
	compSet := &ComparisonSet{
		BaseScenarioName: "Base",
		BaseResult:       &ComparisonResult{ScenarioName: "Base"},
	}

	recommendations := GenerateRecommendations(compSet)

	if len(recommendations) != 0 {
		t.Errorf("Expected no recommendations, got %d", len(recommendations))
	}
}

func TestGenerateRecommendations_NoBetterThanBase(t *testing.T) {
	baseResult := &ComparisonResult{
		ScenarioName:  "Base",
		FinalNetWorth: decimal.NewFromInt(300000),
		LowestBalance: decimal.NewFromInt(10000),
		RunwayMonths:  10,
		RiskLevel:     domain.RiskMedium,
	}
	alt := ComparisonResult{
		ScenarioName:  "Worse",
		FinalNetWorth: decimal.NewFromInt(200000),
		LowestBalance: decimal.NewFromInt(5000),
		RunwayMonths:  10,
		RiskLevel:     domain.RiskLow,
	}

	recommendations := GenerateRecommendations(&ComparisonSet{
		BaseResult:         baseResult,
		AlternativeResults: []ComparisonResult{alt},
	})

	if len(recommendations) != 0 {
		t.Errorf("Expected no recommendations, got %v", recommendations)
	}
}
