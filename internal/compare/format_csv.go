package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Net Worth Year 5",
		"Final Net Worth",
		"Final Cash",
		"Lowest Balance",
		"Lowest Balance Month",
		"Runway Months",
		"Risk Level",
		"Net Worth Year 5 Diff",
		"Final Net Worth Diff",
		"Final Net Worth % Change",
		"Lowest Balance Diff",
		"Runway Diff",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		result.NetWorthYear5.StringFixed(2),
		result.FinalNetWorth.StringFixed(2),
		result.FinalCash.StringFixed(2),
		result.LowestBalance.StringFixed(2),
		result.LowestBalanceMonth,
		strconv.Itoa(result.RunwayMonths),
		string(result.RiskLevel),
		result.NetWorthYear5Diff.StringFixed(2),
		result.FinalNetWorthDiff.StringFixed(2),
		result.FinalNetWorthPct.StringFixed(2),
		result.LowestBalanceDiff.StringFixed(2),
		strconv.Itoa(result.RunwayDiff),
	}
}
