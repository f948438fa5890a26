package breakeven

import (
	"context"
	"errors"
	"fmt"

	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/rgehrsitz/finsim/internal/output"
	"github.com/shopspring/decimal"
)

// OptimizeAllTargets runs every target that applies to the scenario against
// one goal. The purchase delay target only runs when a home is bought.
func (s *Solver) OptimizeAllTargets(
	ctx context.Context,
	baseScenario *domain.Scenario,
	goal OptimizationGoal,
	constraints Constraints,
) (*MultiDimensionalResult, error) {

	targets := []OptimizationTarget{OptimizeInitialCash, OptimizeSpendingScale}
	if hasPurchase(baseScenario, constraints.Home) {
		targets = append(targets, OptimizePurchaseDelay)
	}

	var results []OptimizationResult
	var firstErr error
	for _, target := range targets {
		result, err := s.Optimize(ctx, OptimizationRequest{
			BaseScenario:  baseScenario,
			Target:        target,
			Goal:          goal,
			Constraints:   constraints,
			MaxIterations: s.Options.MaxIterations,
			Tolerance:     s.Options.Tolerance,
		})
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			// a target that cannot apply (no outflow events, say) is skipped
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		results = append(results, *result)
	}

	if len(results) == 0 {
		return nil, &BreakEvenError{
			Operation: "optimize_all_targets",
			Message:   "no optimization target could be evaluated",
			Cause:     firstErr,
		}
	}

	return &MultiDimensionalResult{
		Scenario:        baseScenario.Name,
		Goal:            goal,
		Results:         results,
		Recommendations: generateRecommendations(baseScenario, goal, results),
	}, nil
}

func generateRecommendations(base *domain.Scenario, goal OptimizationGoal, results []OptimizationResult) []string {
	var recs []string
	label := goal.Label()

	for _, r := range results {
		if !r.Success {
			recs = append(recs, fmt.Sprintf("No %s within the constraints reaches %s", targetLabel(r.Request.Target), label))
			continue
		}
		switch {
		case r.OptimalInitialCash != nil:
			diff := r.OptimalInitialCash.Sub(base.InitialCash)
			if diff.IsPositive() {
				recs = append(recs, fmt.Sprintf("Starting cash: add %s (start with %s) to reach %s",
					output.FormatCurrency(diff), output.FormatCurrency(*r.OptimalInitialCash), label))
			} else {
				recs = append(recs, fmt.Sprintf("Starting cash: %s of the current cash is not needed to reach %s",
					output.FormatCurrency(diff.Abs()), label))
			}
		case r.OptimalSpendingScale != nil:
			pct := r.OptimalSpendingScale.Sub(decimal.NewFromInt(1)).Mul(decimal.NewFromInt(100))
			if pct.IsNegative() {
				recs = append(recs, fmt.Sprintf("Spending: cut outflows by %s%% to reach %s", pct.Abs().StringFixed(1), label))
			} else {
				recs = append(recs, fmt.Sprintf("Spending: outflows can grow by %s%% before missing %s", pct.StringFixed(1), label))
			}
		case r.OptimalDelayMonths != nil:
			if *r.OptimalDelayMonths == 0 {
				recs = append(recs, fmt.Sprintf("Home purchase: the current purchase date already reaches %s", label))
			} else {
				recs = append(recs, fmt.Sprintf("Home purchase: delay by %d months to reach %s", *r.OptimalDelayMonths, label))
			}
		}
	}
	return recs
}

func targetLabel(t OptimizationTarget) string {
	switch t {
	case OptimizeInitialCash:
		return "starting cash"
	case OptimizeSpendingScale:
		return "spending level"
	case OptimizePurchaseDelay:
		return "purchase delay"
	default:
		return string(t)
	}
}

func hasPurchase(s *domain.Scenario, home string) bool {
	if s == nil || s.Positions == nil {
		return false
	}
	for _, h := range s.Positions.AllHomes() {
		if h.IsExisting() || h.PurchaseMonth == "" {
			continue
		}
		if home == "" || h.Name == home {
			return true
		}
	}
	return false
}
