package calculation

import (
	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// burnWindowMonths is how far ahead the runway burn rate looks.
	burnWindowMonths = 12
	// highRiskRunwayMonths and lowRiskRunwayMonths bound the Medium band.
	highRiskRunwayMonths = 3
	lowRiskRunwayMonths  = 6
	// year5Index is the month index reported as net worth at year 5.
	year5Index = 59
)

// FindLowestBalance returns the minimum balance; the earliest month wins ties.
func FindLowestBalance(balances []decimal.Decimal, months []string) domain.LowestBalance {
	if len(balances) == 0 {
		return domain.LowestBalance{Value: decimal.Zero}
	}
	lowest := domain.LowestBalance{Value: balances[0], Index: 0}
	for i := 1; i < len(balances); i++ {
		if balances[i].LessThan(lowest.Value) {
			lowest.Value = balances[i]
			lowest.Index = i
		}
	}
	if lowest.Index < len(months) {
		lowest.Month = months[lowest.Index]
	}
	return lowest
}

// BurnRate is the mean monthly outflow over the first burnWindowMonths months,
// counting only months whose net cashflow is negative.
func BurnRate(netCashflow []decimal.Decimal) decimal.Decimal {
	window := min(burnWindowMonths, len(netCashflow))
	if window == 0 {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, v := range netCashflow[:window] {
		if v.IsNegative() {
			total = total.Sub(v)
		}
	}
	return total.Div(decimal.NewFromInt(int64(window)))
}

// EstimateRunway returns how many whole months of burn the initial cash covers.
// It is zero when there is no cash and the full horizon when nothing burns.
func EstimateRunway(initialCash decimal.Decimal, netCashflow []decimal.Decimal) int {
	burn := BurnRate(netCashflow)
	if !burn.IsPositive() {
		return len(netCashflow)
	}
	if !initialCash.IsPositive() {
		return 0
	}
	return int(initialCash.Div(burn).Floor().IntPart())
}

// ClassifyRisk maps the lowest balance and runway to a risk level: High when
// cash goes negative or runway is under three months, Medium under six months,
// Low otherwise. Runway only counts when the household is burning cash.
func ClassifyRisk(lowest decimal.Decimal, runwayMonths int, burning bool) domain.RiskLevel {
	switch {
	case lowest.IsNegative():
		return domain.RiskHigh
	case !burning:
		return domain.RiskLow
	case runwayMonths < highRiskRunwayMonths:
		return domain.RiskHigh
	case runwayMonths < lowRiskRunwayMonths:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

// NetWorthAtYear5 returns net worth at month index 59, or at the last month for
// shorter horizons.
func NetWorthAtYear5(netWorth []decimal.Decimal) decimal.Decimal {
	if len(netWorth) == 0 {
		return decimal.Zero
	}
	return netWorth[min(year5Index, len(netWorth)-1)]
}
