package domain

import (
	"github.com/shopspring/decimal"
)

// ProjectionInput is a single projection request. Month strings are YYYY-MM.
type ProjectionInput struct {
	BaseMonth     string          `yaml:"base_month" json:"baseMonth" validate:"required,yyyymm"`
	HorizonMonths int             `yaml:"horizon_months" json:"horizonMonths" validate:"gt=0,lte=1200"`
	InitialCash   decimal.Decimal `yaml:"initial_cash" json:"initialCash"`
	Events        []Event         `yaml:"events" json:"events" validate:"dive"`
	Positions     *Positions      `yaml:"positions,omitempty" json:"positions,omitempty"`

	// Assumptions, when present, fill in event growth rates that were left unset.
	Assumptions *Assumptions `yaml:"assumptions,omitempty" json:"assumptions,omitempty"`
}

// Event is a recurring and/or one-time cashflow. Positive amounts are inflows.
type Event struct {
	Name            string           `yaml:"name,omitempty" json:"name,omitempty"`
	Type            string           `yaml:"type,omitempty" json:"type,omitempty"`
	Enabled         *bool            `yaml:"enabled,omitempty" json:"enabled,omitempty"`
	StartMonth      string           `yaml:"start_month" json:"startMonth" validate:"required,yyyymm"`
	EndMonth        string           `yaml:"end_month,omitempty" json:"endMonth,omitempty" validate:"omitempty,yyyymm"`
	MonthlyAmount   decimal.Decimal  `yaml:"monthly_amount" json:"monthlyAmount"`
	OneTimeAmount   decimal.Decimal  `yaml:"one_time_amount" json:"oneTimeAmount"`
	AnnualGrowthPct *decimal.Decimal `yaml:"annual_growth_pct,omitempty" json:"annualGrowthPct,omitempty" validate:"omitempty,gt=-1"`
}

// IsEnabled reports whether the event contributes. Events are enabled unless explicitly disabled.
func (e Event) IsEnabled() bool {
	return e.Enabled == nil || *e.Enabled
}

// GrowthRate returns the annual growth rate, treating an unresolved rate as zero.
func (e Event) GrowthRate() decimal.Decimal {
	if e.AnnualGrowthPct == nil {
		return decimal.Zero
	}
	return *e.AnnualGrowthPct
}

// Assumptions are scenario-level rates used when an event carries no growth rate of its own.
type Assumptions struct {
	InflationRate       *decimal.Decimal `yaml:"inflation_rate,omitempty" json:"inflationRate,omitempty"`
	SalaryGrowthRate    *decimal.Decimal `yaml:"salary_growth_rate,omitempty" json:"salaryGrowthRate,omitempty"`
	RentAnnualGrowthPct *decimal.Decimal `yaml:"rent_annual_growth_pct,omitempty" json:"rentAnnualGrowthPct,omitempty"`
}

// Merge returns a copy of a where every unset field is taken from fallback.
func (a *Assumptions) Merge(fallback *Assumptions) *Assumptions {
	if a == nil && fallback == nil {
		return nil
	}
	merged := Assumptions{}
	if fallback != nil {
		merged = *fallback
	}
	if a != nil {
		if a.InflationRate != nil {
			merged.InflationRate = a.InflationRate
		}
		if a.SalaryGrowthRate != nil {
			merged.SalaryGrowthRate = a.SalaryGrowthRate
		}
		if a.RentAnnualGrowthPct != nil {
			merged.RentAnnualGrowthPct = a.RentAnnualGrowthPct
		}
	}
	return &merged
}

// Positions bundles the structured holdings of a household.
type Positions struct {
	Homes []HomePosition `yaml:"homes,omitempty" json:"homes,omitempty" validate:"dive"`
	// Home is the legacy singular form; it is treated as homes[0].
	Home        *HomePosition        `yaml:"home,omitempty" json:"home,omitempty"`
	Loans       []LoanPosition       `yaml:"loans,omitempty" json:"loans,omitempty" validate:"dive"`
	Investments []InvestmentPosition `yaml:"investments,omitempty" json:"investments,omitempty" validate:"dive"`
	Cars        []CarPosition        `yaml:"cars,omitempty" json:"cars,omitempty" validate:"dive"`
}

// AllHomes returns the homes with the legacy singular home folded in at index 0.
func (p *Positions) AllHomes() []HomePosition {
	if p == nil {
		return nil
	}
	if p.Home == nil {
		return p.Homes
	}
	homes := make([]HomePosition, 0, len(p.Homes)+1)
	homes = append(homes, *p.Home)
	return append(homes, p.Homes...)
}

// HomePosition is either a new purchase (PurchasePrice/PurchaseMonth) or an
// already-owned property (Existing).
type HomePosition struct {
	Name                    string          `yaml:"name,omitempty" json:"name,omitempty"`
	PurchasePrice           decimal.Decimal `yaml:"purchase_price" json:"purchasePrice" validate:"gte=0"`
	DownPayment             decimal.Decimal `yaml:"down_payment" json:"downPayment" validate:"gte=0"`
	PurchaseMonth           string          `yaml:"purchase_month,omitempty" json:"purchaseMonth,omitempty" validate:"omitempty,yyyymm"`
	Existing                *ExistingHome   `yaml:"existing,omitempty" json:"existing,omitempty"`
	AnnualAppreciation      decimal.Decimal `yaml:"annual_appreciation" json:"annualAppreciation" validate:"gt=-1"`
	Mortgage                *MortgageTerms  `yaml:"mortgage,omitempty" json:"mortgage,omitempty"`
	FeesOneTime             decimal.Decimal `yaml:"fees_one_time" json:"feesOneTime" validate:"gte=0"`
	HoldingCostMonthly      decimal.Decimal `yaml:"holding_cost_monthly" json:"holdingCostMonthly" validate:"gte=0"`
	HoldingCostAnnualGrowth decimal.Decimal `yaml:"holding_cost_annual_growth" json:"holdingCostAnnualGrowth" validate:"gt=-1"`
	Rental                  *Rental         `yaml:"rental,omitempty" json:"rental,omitempty"`
}

// IsExisting reports whether the home is modeled from an as-of valuation.
func (h HomePosition) IsExisting() bool {
	return h.Existing != nil
}

// ExistingHome describes a property already owned at AsOfMonth.
type ExistingHome struct {
	AsOfMonth           string          `yaml:"as_of_month" json:"asOfMonth" validate:"required,yyyymm"`
	MarketValue         decimal.Decimal `yaml:"market_value" json:"marketValue" validate:"gte=0"`
	MortgageBalance     decimal.Decimal `yaml:"mortgage_balance" json:"mortgageBalance" validate:"gte=0"`
	RemainingTermMonths int             `yaml:"remaining_term_months" json:"remainingTermMonths" validate:"gte=0"`
	AnnualRate          decimal.Decimal `yaml:"annual_rate" json:"annualRate" validate:"gte=0"`
}

// MortgageTerms are the financing terms of a new purchase.
type MortgageTerms struct {
	Principal  decimal.Decimal `yaml:"principal" json:"principal" validate:"gte=0"`
	AnnualRate decimal.Decimal `yaml:"annual_rate" json:"annualRate" validate:"gte=0"`
	TermMonths int             `yaml:"term_months" json:"termMonths" validate:"gte=0"`
}

// Rental is rent income earned on a home.
type Rental struct {
	RentMonthly      decimal.Decimal `yaml:"rent_monthly" json:"rentMonthly" validate:"gte=0"`
	RentStartMonth   string          `yaml:"rent_start_month,omitempty" json:"rentStartMonth,omitempty" validate:"omitempty,yyyymm"`
	RentAnnualGrowth decimal.Decimal `yaml:"rent_annual_growth" json:"rentAnnualGrowth" validate:"gt=-1"`
}

// LoanPosition is an amortizing consumer loan. MonthlyPayment overrides the
// computed level payment and may underpay.
type LoanPosition struct {
	Name               string           `yaml:"name,omitempty" json:"name,omitempty"`
	Principal          decimal.Decimal  `yaml:"principal" json:"principal" validate:"gte=0"`
	AnnualInterestRate decimal.Decimal  `yaml:"annual_interest_rate" json:"annualInterestRate" validate:"gte=0"`
	TermMonths         int              `yaml:"term_months" json:"termMonths" validate:"gte=0"`
	StartMonth         string           `yaml:"start_month" json:"startMonth" validate:"required,yyyymm"`
	MonthlyPayment     *decimal.Decimal `yaml:"monthly_payment,omitempty" json:"monthlyPayment,omitempty" validate:"omitempty,gte=0"`
}

// InvestmentPosition is a compounding account fed by monthly contributions from cash.
type InvestmentPosition struct {
	Name                 string          `yaml:"name,omitempty" json:"name,omitempty"`
	InitialValue         decimal.Decimal `yaml:"initial_value" json:"initialValue" validate:"gte=0"`
	AnnualReturnRate     decimal.Decimal `yaml:"annual_return_rate" json:"annualReturnRate" validate:"gt=-1"`
	MonthlyContribution  decimal.Decimal `yaml:"monthly_contribution" json:"monthlyContribution" validate:"gte=0"`
	StartMonth           string          `yaml:"start_month" json:"startMonth" validate:"required,yyyymm"`
	ContributionEndMonth string          `yaml:"contribution_end_month,omitempty" json:"contributionEndMonth,omitempty" validate:"omitempty,yyyymm"`
}

// CarPosition is a depreciating vehicle with recurring holding costs.
type CarPosition struct {
	Name                    string          `yaml:"name,omitempty" json:"name,omitempty"`
	PurchasePrice           decimal.Decimal `yaml:"purchase_price" json:"purchasePrice" validate:"gte=0"`
	DownPayment             decimal.Decimal `yaml:"down_payment" json:"downPayment" validate:"gte=0"`
	PurchaseMonth           string          `yaml:"purchase_month" json:"purchaseMonth" validate:"required,yyyymm"`
	AnnualDepreciationRate  decimal.Decimal `yaml:"annual_depreciation_rate" json:"annualDepreciationRate" validate:"gt=-1"`
	HoldingCostMonthly      decimal.Decimal `yaml:"holding_cost_monthly" json:"holdingCostMonthly" validate:"gte=0"`
	HoldingCostAnnualGrowth decimal.Decimal `yaml:"holding_cost_annual_growth" json:"holdingCostAnnualGrowth" validate:"gt=-1"`
}
