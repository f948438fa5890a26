package domain

import (
	"github.com/shopspring/decimal"
)

// RiskLevel is the coarse liquidity risk classification of a projection.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// MortgageSchedule is a level-payment schedule laid onto the projection horizon.
// Every series has one entry per horizon month and is zero outside the active term.
type MortgageSchedule struct {
	PaymentMonthly  decimal.Decimal   `json:"paymentMonthly"`
	InterestSeries  []decimal.Decimal `json:"interestSeries"`
	PrincipalSeries []decimal.Decimal `json:"principalSeries"`
	BalanceSeries   []decimal.Decimal `json:"balanceSeries"`
}

// AmortizationRow is one month of a standalone amortization table.
type AmortizationRow struct {
	Month     int             `json:"month" yaml:"month"`
	Payment   decimal.Decimal `json:"payment" yaml:"payment"`
	Interest  decimal.Decimal `json:"interest" yaml:"interest"`
	Principal decimal.Decimal `json:"principal" yaml:"principal"`
	Balance   decimal.Decimal `json:"balance" yaml:"balance"`
}

// AssetSeries holds monthly asset values by class.
type AssetSeries struct {
	Housing     []decimal.Decimal `json:"housing" yaml:"housing"`
	Investments []decimal.Decimal `json:"investments" yaml:"investments"`
	Cars        []decimal.Decimal `json:"cars,omitempty" yaml:"cars,omitempty"`
	Total       []decimal.Decimal `json:"total" yaml:"total"`
}

// LiabilitySeries holds monthly outstanding debt by class.
type LiabilitySeries struct {
	Mortgage []decimal.Decimal `json:"mortgage" yaml:"mortgage"`
	Loans    []decimal.Decimal `json:"loans,omitempty" yaml:"loans,omitempty"`
	Total    []decimal.Decimal `json:"total" yaml:"total"`
}

// LowestBalance locates the minimum cash balance in the horizon.
type LowestBalance struct {
	Value decimal.Decimal `json:"value" yaml:"value"`
	Index int             `json:"index" yaml:"index"`
	Month string          `json:"month" yaml:"month"`
}

// ProjectionResult is the month-by-month output of a projection.
type ProjectionResult struct {
	BaseMonth            string            `json:"baseMonth" yaml:"base_month"`
	Months               []string          `json:"months" yaml:"months"`
	NetCashflow          []decimal.Decimal `json:"netCashflow" yaml:"net_cashflow"`
	CashBalance          []decimal.Decimal `json:"cashBalance" yaml:"cash_balance"`
	Assets               AssetSeries       `json:"assets" yaml:"assets"`
	Liabilities          LiabilitySeries   `json:"liabilities" yaml:"liabilities"`
	NetWorth             []decimal.Decimal `json:"netWorth" yaml:"net_worth"`
	LowestMonthlyBalance LowestBalance     `json:"lowestMonthlyBalance" yaml:"lowest_monthly_balance"`
	RunwayMonths         int               `json:"runwayMonths" yaml:"runway_months"`
	NetWorthYear5        decimal.Decimal   `json:"netWorthYear5" yaml:"net_worth_year5"`
	RiskLevel            RiskLevel         `json:"riskLevel" yaml:"risk_level"`
}

// FinalNetWorth returns net worth in the last projected month.
func (r *ProjectionResult) FinalNetWorth() decimal.Decimal {
	if r == nil || len(r.NetWorth) == 0 {
		return decimal.Zero
	}
	return r.NetWorth[len(r.NetWorth)-1]
}

// FinalCashBalance returns the cash balance in the last projected month.
func (r *ProjectionResult) FinalCashBalance() decimal.Decimal {
	if r == nil || len(r.CashBalance) == 0 {
		return decimal.Zero
	}
	return r.CashBalance[len(r.CashBalance)-1]
}

// ScenarioResult pairs a named scenario with its projection.
type ScenarioResult struct {
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Result      *ProjectionResult `json:"result" yaml:"result"`
}

// ProjectionReport is the set of scenario results rendered by output formatters.
type ProjectionReport struct {
	Source    string           `json:"source,omitempty" yaml:"source,omitempty"`
	Scenarios []ScenarioResult `json:"scenarios" yaml:"scenarios"`
}
