package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/rgehrsitz/finsim/internal/tui/tuistyles"
)

const rule = "================================================================================="

// ConsoleFormatter renders a KPI summary and a year-end snapshot per scenario.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, "FINANCIAL PROJECTION SUMMARY")
	fmt.Fprintln(&buf, rule)
	if report.Source != "" {
		fmt.Fprintf(&buf, "Source: %s\n", report.Source)
	}
	fmt.Fprintln(&buf)

	if len(report.Scenarios) == 0 {
		fmt.Fprintln(&buf, "No scenarios to report.")
		return buf.Bytes(), nil
	}

	for i, sc := range report.Scenarios {
		fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, sc.Name)
		if sc.Description != "" {
			fmt.Fprintf(&buf, "%s\n", sc.Description)
		}
		fmt.Fprintln(&buf, strings.Repeat("-", 50))
		if sc.Result == nil {
			fmt.Fprintln(&buf, "(no result)")
			fmt.Fprintln(&buf)
			continue
		}
		writeKPIs(&buf, sc.Result)
		fmt.Fprintln(&buf)
		writeYearEndTable(&buf, sc.Result)
		fmt.Fprintln(&buf)
	}
	return buf.Bytes(), nil
}

func writeKPIs(w io.Writer, r *domain.ProjectionResult) {
	fmt.Fprintf(w, "Base Month:         %s (%d months)\n", r.BaseMonth, len(r.Months))
	fmt.Fprintf(w, "Risk Level:         %s\n", tuistyles.RiskBadge(r.RiskLevel))
	fmt.Fprintf(w, "Runway:             %d months\n", r.RunwayMonths)
	fmt.Fprintf(w, "Lowest Balance:     %s in %s\n", FormatCurrency(r.LowestMonthlyBalance.Value), r.LowestMonthlyBalance.Month)
	fmt.Fprintf(w, "Net Worth (Year 5): %s\n", FormatCurrency(r.NetWorthYear5))
	fmt.Fprintf(w, "Final Net Worth:    %s\n", FormatCurrency(r.FinalNetWorth()))
	fmt.Fprintf(w, "Final Cash:         %s\n", FormatCurrency(r.FinalCashBalance()))
}

func writeYearEndTable(w io.Writer, r *domain.ProjectionResult) {
	fmt.Fprintln(w, "YEAR-END SNAPSHOT")
	fmt.Fprintf(w, "%-8s %16s %16s %16s %16s\n", "Month", "Cash", "Assets", "Liabilities", "Net Worth")
	for _, i := range yearEndIndices(len(r.Months)) {
		fmt.Fprintf(w, "%-8s %16s %16s %16s %16s\n",
			r.Months[i],
			FormatCurrency(r.CashBalance[i]),
			FormatCurrency(r.Assets.Total[i]),
			FormatCurrency(r.Liabilities.Total[i]),
			FormatCurrency(r.NetWorth[i]),
		)
	}
}

// yearEndIndices returns every twelfth month index plus the final month.
func yearEndIndices(n int) []int {
	var idx []int
	for i := 11; i < n; i += 12 {
		idx = append(idx, i)
	}
	if n > 0 && (len(idx) == 0 || idx[len(idx)-1] != n-1) {
		idx = append(idx, n-1)
	}
	return idx
}
