package compare

import (
	"fmt"

	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult represents a single scenario's key metrics and its deltas from the base
type ComparisonResult struct {
	ScenarioName string                   `json:"scenarioName"`
	Description  string                   `json:"description,omitempty"`
	Result       *domain.ProjectionResult `json:"-"`

	// Key Metrics
	NetWorthYear5      decimal.Decimal  `json:"netWorthYear5"`
	FinalNetWorth      decimal.Decimal  `json:"finalNetWorth"`
	FinalCash          decimal.Decimal  `json:"finalCash"`
	LowestBalance      decimal.Decimal  `json:"lowestBalance"`
	LowestBalanceMonth string           `json:"lowestBalanceMonth"`
	RunwayMonths       int              `json:"runwayMonths"`
	RiskLevel          domain.RiskLevel `json:"riskLevel"`

	// Comparison to Base
	NetWorthYear5Diff decimal.Decimal `json:"netWorthYear5Diff"`
	FinalNetWorthDiff decimal.Decimal `json:"finalNetWorthDiff"`
	FinalNetWorthPct  decimal.Decimal `json:"finalNetWorthPct"`
	LowestBalanceDiff decimal.Decimal `json:"lowestBalanceDiff"`
	RunwayDiff        int             `json:"runwayDiff"`
	RiskChanged       bool            `json:"riskChanged"`
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath,omitempty"`
}

// ToReport converts the set into a projection report, base first, so the
// output formatters can render the underlying projections.
func (cs *ComparisonSet) ToReport() *domain.ProjectionReport {
	report := &domain.ProjectionReport{
		Source:    cs.ConfigPath,
		Scenarios: make([]domain.ScenarioResult, 0, len(cs.AlternativeResults)+1),
	}
	if cs.BaseResult != nil && cs.BaseResult.Result != nil {
		report.Scenarios = append(report.Scenarios, domain.ScenarioResult{
			Name:        cs.BaseResult.ScenarioName,
			Description: cs.BaseResult.Description,
			Result:      cs.BaseResult.Result,
		})
	}
	for _, alt := range cs.AlternativeResults {
		if alt.Result == nil {
			continue
		}
		report.Scenarios = append(report.Scenarios, domain.ScenarioResult{
			Name:        alt.ScenarioName,
			Description: alt.Description,
			Result:      alt.Result,
		})
	}
	return report
}

// MetricsCalculator extracts key metrics from projection results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes the comparison metrics for one projection
func (mc *MetricsCalculator) CalculateMetrics(name, description string, r *domain.ProjectionResult) ComparisonResult {
	return ComparisonResult{
		ScenarioName:       name,
		Description:        description,
		Result:             r,
		NetWorthYear5:      r.NetWorthYear5,
		FinalNetWorth:      r.FinalNetWorth(),
		FinalCash:          r.FinalCashBalance(),
		LowestBalance:      r.LowestMonthlyBalance.Value,
		LowestBalanceMonth: r.LowestMonthlyBalance.Month,
		RunwayMonths:       r.RunwayMonths,
		RiskLevel:          r.RiskLevel,
	}
}

// CalculateComparison computes the deltas between a scenario and a base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.NetWorthYear5Diff = scenario.NetWorthYear5.Sub(base.NetWorthYear5)
	scenario.FinalNetWorthDiff = scenario.FinalNetWorth.Sub(base.FinalNetWorth)
	if !base.FinalNetWorth.IsZero() {
		scenario.FinalNetWorthPct = scenario.FinalNetWorthDiff.
			Div(base.FinalNetWorth.Abs()).
			Mul(decimal.NewFromInt(100))
	}
	scenario.LowestBalanceDiff = scenario.LowestBalance.Sub(base.LowestBalance)
	scenario.RunwayDiff = scenario.RunwayMonths - base.RunwayMonths
	scenario.RiskChanged = scenario.RiskLevel != base.RiskLevel
	return scenario
}

var riskRank = map[domain.RiskLevel]int{
	domain.RiskLow:    0,
	domain.RiskMedium: 1,
	domain.RiskHigh:   2,
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}
	base := compSet.BaseResult
	alts := compSet.AlternativeResults

	// Highest final net worth
	best := -1
	for i := range alts {
		if alts[i].FinalNetWorth.GreaterThan(base.FinalNetWorth) &&
			(best < 0 || alts[i].FinalNetWorth.GreaterThan(alts[best].FinalNetWorth)) {
			best = i
		}
	}
	if best >= 0 {
		diff := alts[best].FinalNetWorth.Sub(base.FinalNetWorth)
		recommendations = append(recommendations,
			"Best Net Worth: "+alts[best].ScenarioName+" ends $"+diff.StringFixed(0)+
				" ahead of the base scenario")
	}

	// Deepest cash cushion
	best = -1
	for i := range alts {
		if alts[i].LowestBalance.GreaterThan(base.LowestBalance) &&
			(best < 0 || alts[i].LowestBalance.GreaterThan(alts[best].LowestBalance)) {
			best = i
		}
	}
	if best >= 0 {
		diff := alts[best].LowestBalance.Sub(base.LowestBalance)
		recommendations = append(recommendations,
			"Best Liquidity: "+alts[best].ScenarioName+" keeps its lowest cash balance $"+
				diff.StringFixed(0)+" higher")
	}

	// Longest runway
	best = -1
	for i := range alts {
		if alts[i].RunwayMonths > base.RunwayMonths &&
			(best < 0 || alts[i].RunwayMonths > alts[best].RunwayMonths) {
			best = i
		}
	}
	if best >= 0 {
		recommendations = append(recommendations,
			"Longest Runway: "+alts[best].ScenarioName+" extends runway by "+
				fmt.Sprintf("%d months", alts[best].RunwayMonths-base.RunwayMonths))
	}

	// Scenarios that raise liquidity risk
	for _, alt := range alts {
		if riskRank[alt.RiskLevel] <= riskRank[base.RiskLevel] {
			continue
		}
		msg := fmt.Sprintf("Caution: %s raises liquidity risk from %s to %s", alt.ScenarioName, base.RiskLevel, alt.RiskLevel)
		if alt.LowestBalance.IsNegative() {
			msg += " (cash goes negative in " + alt.LowestBalanceMonth + ")"
		}
		recommendations = append(recommendations, msg)
	}

	return recommendations
}
