package breakeven

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rgehrsitz/finsim/internal/output"
	"github.com/shopspring/decimal"
)

// TableFormatter formats optimization results as a console table
type TableFormatter struct{}

// Format generates a formatted table for optimization result
func (tf *TableFormatter) Format(result *OptimizationResult) string {
	var sb strings.Builder

	sb.WriteString("BREAK-EVEN ANALYSIS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	sb.WriteString(fmt.Sprintf("Scenario:            %s\n", result.Scenario))
	sb.WriteString(fmt.Sprintf("Optimization Target: %s\n", result.Request.Target))
	sb.WriteString(fmt.Sprintf("Optimization Goal:   %s\n", result.Request.Goal))
	sb.WriteString(fmt.Sprintf("Status:              %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("Iterations:          %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence:         %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	if result.Success {
		sb.WriteString("OPTIMAL PARAMETERS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		sb.WriteString(fmt.Sprintf("%s\n", tf.formatOptimum(result)))
		sb.WriteString("\n")
	}

	sb.WriteString("PROJECTED RESULTS\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Lowest Balance:      %s in %s\n", output.FormatCurrency(result.LowestBalance), result.LowestBalanceMonth))
	sb.WriteString(fmt.Sprintf("Runway:              %d months\n", result.RunwayMonths))
	sb.WriteString(fmt.Sprintf("Risk Level:          %s\n", result.RiskLevel))
	sb.WriteString(fmt.Sprintf("Final Net Worth:     %s\n", output.FormatCurrency(result.FinalNetWorth)))
	sb.WriteString("\n")

	sb.WriteString("COMPARISON TO BASE SCENARIO\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	lowestDiff := result.LowestBalance.Sub(result.BaseLowestBalance)
	sb.WriteString(fmt.Sprintf("Lowest Balance Change: %s%s\n", tf.deltaSymbol(lowestDiff), output.FormatCurrency(lowestDiff)))
	sb.WriteString(fmt.Sprintf("Net Worth Change:      %s%s\n", tf.deltaSymbol(result.NetWorthDiffFromBase), output.FormatCurrency(result.NetWorthDiffFromBase)))
	if result.RiskLevel != result.BaseRiskLevel {
		sb.WriteString(fmt.Sprintf("Risk Level:            %s -> %s\n", result.BaseRiskLevel, result.RiskLevel))
	}
	sb.WriteString("\n")

	return sb.String()
}

// FormatMultiDimensional formats results across targets as a table
func (tf *TableFormatter) FormatMultiDimensional(result *MultiDimensionalResult) string {
	var sb strings.Builder

	sb.WriteString("BREAK-EVEN ANALYSIS: ALL TARGETS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Scenario: %s\n", result.Scenario))
	sb.WriteString(fmt.Sprintf("Goal:     %s\n\n", result.Goal))

	sb.WriteString(fmt.Sprintf("%-16s %-20s %12s %12s %-8s %s\n",
		"Target", "Optimum", "Lowest Cash", "Final NW", "Risk", "Status"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	for i := range result.Results {
		r := &result.Results[i]
		optimum := "-"
		if r.Success {
			optimum = tf.formatOptimumShort(r)
		}
		sb.WriteString(fmt.Sprintf("%-16s %-20s %12s %12s %-8s %s\n",
			r.Request.Target,
			tf.truncate(optimum, 20),
			tf.formatShort(r.LowestBalance),
			tf.formatShort(r.FinalNetWorth),
			r.RiskLevel,
			tf.formatStatus(r.Success)))
	}
	sb.WriteString("\n")

	if len(result.Recommendations) > 0 {
		sb.WriteString("RECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range result.Recommendations {
			sb.WriteString("- " + rec + "\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(result *OptimizationResult) (string, error) {
	return jf.marshal(result)
}

// FormatMultiDimensional formats multi-dimensional results as JSON
func (jf *JSONFormatter) FormatMultiDimensional(result *MultiDimensionalResult) (string, error) {
	return jf.marshal(result)
}

func (jf *JSONFormatter) marshal(v interface{}) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Helper methods

func (tf *TableFormatter) formatOptimum(r *OptimizationResult) string {
	switch {
	case r.OptimalInitialCash != nil:
		return fmt.Sprintf("Initial Cash:        %s", output.FormatCurrency(*r.OptimalInitialCash))
	case r.OptimalSpendingScale != nil:
		pct := r.OptimalSpendingScale.Mul(decimal.NewFromInt(100))
		return fmt.Sprintf("Spending Scale:      %s%% of current outflows", pct.StringFixed(1))
	case r.OptimalDelayMonths != nil:
		return fmt.Sprintf("Purchase Delay:      %d months", *r.OptimalDelayMonths)
	default:
		return "none"
	}
}

func (tf *TableFormatter) formatOptimumShort(r *OptimizationResult) string {
	switch {
	case r.OptimalInitialCash != nil:
		return output.FormatCurrency(*r.OptimalInitialCash)
	case r.OptimalSpendingScale != nil:
		return r.OptimalSpendingScale.Mul(decimal.NewFromInt(100)).StringFixed(1) + "% spending"
	case r.OptimalDelayMonths != nil:
		return fmt.Sprintf("%d months", *r.OptimalDelayMonths)
	default:
		return "-"
	}
}

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "✓ Converged"
	}
	return "⚠ Not reached"
}

func (tf *TableFormatter) formatShort(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
