package breakeven

import (
	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// OptimizationTarget defines what parameter to optimize
type OptimizationTarget string

const (
	OptimizeInitialCash   OptimizationTarget = "initial_cash"   // smallest starting cash
	OptimizeSpendingScale OptimizationTarget = "spending_scale" // largest multiplier on outflow events
	OptimizePurchaseDelay OptimizationTarget = "purchase_delay" // shortest delay of the home purchase
	OptimizeAll           OptimizationTarget = "all"
)

// OptimizationGoal defines what outcome to achieve
type OptimizationGoal string

const (
	GoalNoShortfall    OptimizationGoal = "no_shortfall"     // lowest cash balance stays at or above MinCashBalance
	GoalLowRisk        OptimizationGoal = "low_risk"         // liquidity risk classifies as Low
	GoalTargetNetWorth OptimizationGoal = "target_net_worth" // final net worth reaches TargetNetWorth
)

// Label returns a short human-readable form of the goal.
func (g OptimizationGoal) Label() string {
	switch g {
	case GoalNoShortfall:
		return "no cash shortfall"
	case GoalLowRisk:
		return "low liquidity risk"
	case GoalTargetNetWorth:
		return "the net worth target"
	default:
		return string(g)
	}
}

// Constraints define bounds for optimization parameters
type Constraints struct {
	// Initial cash search range
	MinInitialCash *decimal.Decimal `json:"minInitialCash,omitempty"`
	MaxInitialCash *decimal.Decimal `json:"maxInitialCash,omitempty"`

	// Outflow multiplier search range (1.0 is current spending)
	MinSpendingScale *decimal.Decimal `json:"minSpendingScale,omitempty"`
	MaxSpendingScale *decimal.Decimal `json:"maxSpendingScale,omitempty"`

	// Purchase delay search range and the home to delay (empty means every purchase)
	MaxDelayMonths *int   `json:"maxDelayMonths,omitempty"`
	Home           string `json:"home,omitempty"`

	// Cash floor for no_shortfall
	MinCashBalance decimal.Decimal `json:"minCashBalance"`

	// Final net worth for target_net_worth
	TargetNetWorth *decimal.Decimal `json:"targetNetWorth,omitempty"`
}

// DefaultConstraints returns sensible default constraints
func DefaultConstraints() Constraints {
	minScale := decimal.Zero
	maxScale := decimal.NewFromInt(2)
	maxDelay := 60

	return Constraints{
		MinSpendingScale: &minScale,
		MaxSpendingScale: &maxScale,
		MaxDelayMonths:   &maxDelay,
	}
}

// OptimizationRequest defines the parameters for an optimization run
type OptimizationRequest struct {
	BaseScenario  *domain.Scenario   `json:"-"`
	Target        OptimizationTarget `json:"target"`
	Goal          OptimizationGoal   `json:"goal"`
	Constraints   Constraints        `json:"constraints"`
	MaxIterations int                `json:"maxIterations"` // Maximum solver iterations
	Tolerance     decimal.Decimal    `json:"tolerance"`     // Convergence tolerance for the cash search
}

// OptimizationResult contains the results of an optimization run
type OptimizationResult struct {
	// Optimization metadata
	Scenario        string              `json:"scenario"`
	Request         OptimizationRequest `json:"request"`
	Success         bool                `json:"success"`
	Iterations      int                 `json:"iterations"`
	ConvergenceInfo string              `json:"convergenceInfo,omitempty"`

	// Optimized parameters
	OptimalInitialCash   *decimal.Decimal `json:"optimalInitialCash,omitempty"`
	OptimalSpendingScale *decimal.Decimal `json:"optimalSpendingScale,omitempty"`
	OptimalDelayMonths   *int             `json:"optimalDelayMonths,omitempty"`

	// Results at optimal parameters
	Result             *domain.ProjectionResult `json:"-"`
	LowestBalance      decimal.Decimal          `json:"lowestBalance"`
	LowestBalanceMonth string                   `json:"lowestBalanceMonth"`
	RunwayMonths       int                      `json:"runwayMonths"`
	RiskLevel          domain.RiskLevel         `json:"riskLevel"`
	FinalNetWorth      decimal.Decimal          `json:"finalNetWorth"`

	// Comparison to base
	BaseLowestBalance    decimal.Decimal  `json:"baseLowestBalance"`
	BaseRiskLevel        domain.RiskLevel `json:"baseRiskLevel"`
	BaseFinalNetWorth    decimal.Decimal  `json:"baseFinalNetWorth"`
	NetWorthDiffFromBase decimal.Decimal  `json:"netWorthDiffFromBase"`
}

// MultiDimensionalResult contains results when optimizing multiple parameters
type MultiDimensionalResult struct {
	Scenario        string               `json:"scenario"`
	Goal            OptimizationGoal     `json:"goal"`
	Results         []OptimizationResult `json:"results"`
	Recommendations []string             `json:"recommendations"`
}

// SolverOptions configures the solver algorithm
type SolverOptions struct {
	Tolerance      decimal.Decimal // Convergence tolerance for cash amounts
	ScaleTolerance decimal.Decimal // Convergence tolerance for the spending scale
	MaxIterations  int             // Maximum iterations
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:      decimal.NewFromInt(10),
		ScaleTolerance: decimal.NewFromFloat(0.001),
		MaxIterations:  60,
	}
}

// Validate checks if constraints are internally consistent
func (c *Constraints) Validate() error {
	if c.MinInitialCash != nil && c.MaxInitialCash != nil && c.MinInitialCash.GreaterThan(*c.MaxInitialCash) {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "min_initial_cash cannot be greater than max_initial_cash",
		}
	}

	if c.MinSpendingScale != nil && c.MinSpendingScale.IsNegative() {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "min_spending_scale cannot be negative",
		}
	}
	if c.MinSpendingScale != nil && c.MaxSpendingScale != nil && c.MinSpendingScale.GreaterThan(*c.MaxSpendingScale) {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "min_spending_scale cannot be greater than max_spending_scale",
		}
	}

	if c.MaxDelayMonths != nil && *c.MaxDelayMonths < 0 {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "max_delay_months cannot be negative",
		}
	}

	return nil
}

// BreakEvenError represents errors from break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
