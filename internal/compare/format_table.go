package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	nameWidth := 22
	numWidth := 11

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "NW Year 5",
		numWidth, "Final NW",
		numWidth, "Lowest Cash",
		numWidth, "Runway",
		numWidth, "Risk"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	// Deltas from base
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))
			sb.WriteString(fmt.Sprintf("  Net Worth (Year 5): %s\n", tf.formatDelta(alt.NetWorthYear5Diff)))
			sb.WriteString(fmt.Sprintf("  Final Net Worth:    %s (%s%%)\n",
				tf.formatDelta(alt.FinalNetWorthDiff),
				alt.FinalNetWorthPct.StringFixed(1)))
			sb.WriteString(fmt.Sprintf("  Lowest Cash:        %s\n", tf.formatDelta(alt.LowestBalanceDiff)))
			if alt.RunwayDiff != 0 {
				sign := "+"
				if alt.RunwayDiff < 0 {
					sign = ""
				}
				sb.WriteString(fmt.Sprintf("  Runway:             %s%d months\n", sign, alt.RunwayDiff))
			}
			if alt.RiskChanged && compSet.BaseResult != nil {
				sb.WriteString(fmt.Sprintf("  Risk:               %s -> %s\n", compSet.BaseResult.RiskLevel, alt.RiskLevel))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("- %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, tf.formatMoney(result.NetWorthYear5),
		numWidth, tf.formatMoney(result.FinalNetWorth),
		numWidth, tf.formatMoney(result.LowestBalance),
		numWidth, fmt.Sprintf("%d mo", result.RunwayMonths),
		numWidth, string(result.RiskLevel))
}

func (tf *TableFormatter) formatMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + tf.formatDecimal(d.Abs())
	}
	return "$" + tf.formatDecimal(d)
}

func (tf *TableFormatter) formatDelta(d decimal.Decimal) string {
	switch {
	case d.IsPositive():
		return "+$" + tf.formatDecimal(d)
	case d.IsNegative():
		return "-$" + tf.formatDecimal(d.Abs())
	default:
		return "$0"
	}
}

// formatDecimal formats a decimal for display (in thousands)
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if !alt.FinalNetWorthDiff.IsZero() {
			change = tf.formatDelta(alt.FinalNetWorthDiff)
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, change))
	}

	return sb.String()
}
