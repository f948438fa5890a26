// Package breakeven searches for the value of one scenario parameter at which
// a liquidity or net worth goal is just met.
package breakeven

import (
	"context"
	"errors"
	"fmt"

	"github.com/rgehrsitz/finsim/internal/calculation"
	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/rgehrsitz/finsim/internal/transform"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Solver runs bisection searches over transformed scenarios
type Solver struct {
	CalcEngine *calculation.ProjectionEngine
	Options    SolverOptions
}

// NewSolver creates a new break-even solver. A nil engine gets the default engine.
func NewSolver(calcEngine *calculation.ProjectionEngine, options SolverOptions) *Solver {
	if calcEngine == nil {
		calcEngine = calculation.NewProjectionEngine()
	}
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.ProjectionEngine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// Optimize performs optimization based on the request
func (s *Solver) Optimize(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	if req.BaseScenario == nil {
		return nil, &BreakEvenError{Operation: "optimize", Message: "base scenario is required"}
	}
	if err := req.Constraints.Validate(); err != nil {
		return nil, err
	}
	switch req.Goal {
	case GoalNoShortfall, GoalLowRisk:
	case GoalTargetNetWorth:
		if req.Constraints.TargetNetWorth == nil {
			return nil, &BreakEvenError{Operation: "optimize", Message: "target_net_worth goal requires a target net worth"}
		}
	default:
		return nil, &BreakEvenError{
			Operation: "optimize",
			Message:   fmt.Sprintf("unsupported optimization goal: %s", req.Goal),
		}
	}

	// Apply defaults
	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}

	base, err := s.evaluate(ctx, req.BaseScenario)
	if err != nil {
		return nil, &BreakEvenError{Operation: "optimize", Message: "failed to project base scenario", Cause: err}
	}

	// Route to appropriate solver based on target
	switch req.Target {
	case OptimizeInitialCash:
		return s.optimizeInitialCash(ctx, req, base)
	case OptimizeSpendingScale:
		return s.optimizeSpendingScale(ctx, req, base)
	case OptimizePurchaseDelay:
		return s.optimizePurchaseDelay(ctx, req, base)
	default:
		return nil, &BreakEvenError{
			Operation: "optimize",
			Message:   fmt.Sprintf("unsupported optimization target: %s", req.Target),
		}
	}
}

// optimizeInitialCash finds the smallest starting cash that meets the goal.
// Every cash balance moves one for one with the starting cash, so the goal is
// monotone in it.
func (s *Solver) optimizeInitialCash(ctx context.Context, req OptimizationRequest, base *domain.ProjectionResult) (*OptimizationResult, error) {
	lo := decimal.Zero
	if req.Constraints.MinInitialCash != nil {
		lo = *req.Constraints.MinInitialCash
	}
	hi := cashUpperBound(req, base)
	if req.Constraints.MaxInitialCash != nil {
		hi = *req.Constraints.MaxInitialCash
	}

	at := func(cash decimal.Decimal) (*domain.ProjectionResult, error) {
		return s.evaluate(ctx, req.BaseScenario, &transform.SetInitialCash{Amount: cash})
	}

	result := &OptimizationResult{Scenario: req.BaseScenario.Name, Request: req}
	hiResult, err := at(hi)
	if err != nil {
		return nil, wrapEval("optimize_initial_cash", err)
	}
	result.Iterations++
	if !goalMet(req, hiResult) {
		result.ConvergenceInfo = fmt.Sprintf("goal not met with initial cash up to %s", hi.StringFixed(2))
		fill(result, hiResult, base)
		return result, nil
	}

	loResult, err := at(lo)
	if err != nil {
		return nil, wrapEval("optimize_initial_cash", err)
	}
	result.Iterations++
	if goalMet(req, loResult) {
		result.Success = true
		result.ConvergenceInfo = "goal already met at the lower bound"
		result.OptimalInitialCash = &lo
		fill(result, loResult, base)
		return result, nil
	}

	for result.Iterations < req.MaxIterations && hi.Sub(lo).GreaterThan(req.Tolerance) {
		mid := lo.Add(hi).Div(two).Round(2)
		r, err := at(mid)
		if err != nil {
			return nil, wrapEval("optimize_initial_cash", err)
		}
		result.Iterations++
		if goalMet(req, r) {
			hi, hiResult = mid, r
		} else {
			lo = mid
		}
	}

	result.Success = hi.Sub(lo).LessThanOrEqual(req.Tolerance)
	result.ConvergenceInfo = convergence(result.Success, result.Iterations, hi.Sub(lo).StringFixed(2))
	result.OptimalInitialCash = &hi
	fill(result, hiResult, base)
	return result, nil
}

// optimizeSpendingScale finds the largest multiplier on outflow events that
// still meets the goal.
func (s *Solver) optimizeSpendingScale(ctx context.Context, req OptimizationRequest, base *domain.ProjectionResult) (*OptimizationResult, error) {
	defaults := DefaultConstraints()
	lo, hi := *defaults.MinSpendingScale, *defaults.MaxSpendingScale
	if req.Constraints.MinSpendingScale != nil {
		lo = *req.Constraints.MinSpendingScale
	}
	if req.Constraints.MaxSpendingScale != nil {
		hi = *req.Constraints.MaxSpendingScale
	}

	at := func(scale decimal.Decimal) (*domain.ProjectionResult, error) {
		return s.evaluate(ctx, req.BaseScenario, &transform.ScaleEvents{Match: transform.MatchOutflows, Factor: scale})
	}

	result := &OptimizationResult{Scenario: req.BaseScenario.Name, Request: req}
	loResult, err := at(lo)
	if err != nil {
		return nil, wrapEval("optimize_spending_scale", err)
	}
	result.Iterations++
	if !goalMet(req, loResult) {
		result.ConvergenceInfo = fmt.Sprintf("goal not met even with outflows scaled to %s", lo.String())
		fill(result, loResult, base)
		return result, nil
	}

	hiResult, err := at(hi)
	if err != nil {
		return nil, wrapEval("optimize_spending_scale", err)
	}
	result.Iterations++
	if goalMet(req, hiResult) {
		result.Success = true
		result.ConvergenceInfo = "goal still met at the upper bound"
		result.OptimalSpendingScale = &hi
		fill(result, hiResult, base)
		return result, nil
	}

	for result.Iterations < req.MaxIterations && hi.Sub(lo).GreaterThan(s.Options.ScaleTolerance) {
		mid := lo.Add(hi).Div(two).Round(4)
		r, err := at(mid)
		if err != nil {
			return nil, wrapEval("optimize_spending_scale", err)
		}
		result.Iterations++
		if goalMet(req, r) {
			lo, loResult = mid, r
		} else {
			hi = mid
		}
	}

	result.Success = hi.Sub(lo).LessThanOrEqual(s.Options.ScaleTolerance)
	result.ConvergenceInfo = convergence(result.Success, result.Iterations, hi.Sub(lo).String())
	result.OptimalSpendingScale = &lo
	fill(result, loResult, base)
	return result, nil
}

// optimizePurchaseDelay finds the fewest months the home purchase must move
// to meet the goal. Rent keeps running until the new purchase month.
func (s *Solver) optimizePurchaseDelay(ctx context.Context, req OptimizationRequest, base *domain.ProjectionResult) (*OptimizationResult, error) {
	hi := 60
	if req.Constraints.MaxDelayMonths != nil {
		hi = *req.Constraints.MaxDelayMonths
	}
	hi = min(hi, req.BaseScenario.HorizonMonths)

	at := func(months int) (*domain.ProjectionResult, error) {
		return s.evaluate(ctx, req.BaseScenario, &transform.DelayPurchase{Home: req.Constraints.Home, Months: months, ExtendRent: true})
	}

	result := &OptimizationResult{Scenario: req.BaseScenario.Name, Request: req}
	loResult, err := at(0)
	if err != nil {
		return nil, wrapEval("optimize_purchase_delay", err)
	}
	result.Iterations++
	if goalMet(req, loResult) {
		zero := 0
		result.Success = true
		result.ConvergenceInfo = "goal already met without a delay"
		result.OptimalDelayMonths = &zero
		fill(result, loResult, base)
		return result, nil
	}

	hiResult, err := at(hi)
	if err != nil {
		return nil, wrapEval("optimize_purchase_delay", err)
	}
	result.Iterations++
	if !goalMet(req, hiResult) {
		result.ConvergenceInfo = fmt.Sprintf("goal not met with a delay of up to %d months", hi)
		fill(result, hiResult, base)
		return result, nil
	}

	lo := 0
	for result.Iterations < req.MaxIterations && hi-lo > 1 {
		mid := (lo + hi) / 2
		r, err := at(mid)
		if err != nil {
			return nil, wrapEval("optimize_purchase_delay", err)
		}
		result.Iterations++
		if goalMet(req, r) {
			hi, hiResult = mid, r
		} else {
			lo = mid
		}
	}

	result.Success = hi-lo <= 1
	result.ConvergenceInfo = convergence(result.Success, result.Iterations, fmt.Sprintf("%d months", hi-lo))
	result.OptimalDelayMonths = &hi
	fill(result, hiResult, base)
	return result, nil
}

// evaluate projects the base scenario with the transforms applied.
func (s *Solver) evaluate(ctx context.Context, base *domain.Scenario, transforms ...transform.ScenarioTransform) (*domain.ProjectionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	modified, err := transform.ApplyTransforms(base, transforms)
	if err != nil {
		return nil, err
	}
	return s.CalcEngine.ComputeProjection(&modified.ProjectionInput)
}

// goalMet reports whether a projection satisfies the request goal.
func goalMet(req OptimizationRequest, r *domain.ProjectionResult) bool {
	switch req.Goal {
	case GoalNoShortfall:
		return r.LowestMonthlyBalance.Value.GreaterThanOrEqual(req.Constraints.MinCashBalance)
	case GoalLowRisk:
		return r.RiskLevel == domain.RiskLow
	case GoalTargetNetWorth:
		return r.FinalNetWorth().GreaterThanOrEqual(*req.Constraints.TargetNetWorth)
	default:
		return false
	}
}

// cashUpperBound is a starting cash that meets any goal reachable through
// cash alone: it covers the base shortfall below the floor, a year of burn
// and any net worth gap.
func cashUpperBound(req OptimizationRequest, base *domain.ProjectionResult) decimal.Decimal {
	hi := decimal.Max(req.BaseScenario.InitialCash, decimal.Zero)
	if gap := req.Constraints.MinCashBalance.Sub(base.LowestMonthlyBalance.Value); gap.IsPositive() {
		hi = hi.Add(gap)
	}
	hi = hi.Add(calculation.BurnRate(base.NetCashflow).Mul(decimal.NewFromInt(12)))
	if req.Constraints.TargetNetWorth != nil {
		if gap := req.Constraints.TargetNetWorth.Sub(base.FinalNetWorth()); gap.IsPositive() {
			hi = hi.Add(gap)
		}
	}
	return hi.Add(req.Tolerance).Ceil()
}

func fill(result *OptimizationResult, r, base *domain.ProjectionResult) {
	result.Result = r
	result.LowestBalance = r.LowestMonthlyBalance.Value
	result.LowestBalanceMonth = r.LowestMonthlyBalance.Month
	result.RunwayMonths = r.RunwayMonths
	result.RiskLevel = r.RiskLevel
	result.FinalNetWorth = r.FinalNetWorth()

	result.BaseLowestBalance = base.LowestMonthlyBalance.Value
	result.BaseRiskLevel = base.RiskLevel
	result.BaseFinalNetWorth = base.FinalNetWorth()
	result.NetWorthDiffFromBase = result.FinalNetWorth.Sub(result.BaseFinalNetWorth)
}

func convergence(success bool, iterations int, gap string) string {
	if success {
		return fmt.Sprintf("converged after %d iterations", iterations)
	}
	return fmt.Sprintf("stopped after %d iterations with a gap of %s", iterations, gap)
}

func wrapEval(operation string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &BreakEvenError{Operation: operation, Message: "failed to evaluate scenario", Cause: err}
}
