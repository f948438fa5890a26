package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// MonthlyFormatter renders the full month-by-month table for each scenario.
type MonthlyFormatter struct{}

func (m MonthlyFormatter) Name() string { return "monthly" }

func (m MonthlyFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	for i, sc := range report.Scenarios {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		fmt.Fprintf(&buf, "SCENARIO: %s\n", sc.Name)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		r := sc.Result
		if r == nil {
			fmt.Fprintln(&buf, "(no result)")
			continue
		}
		writeKPIs(&buf, r)
		fmt.Fprintln(&buf)

		fmt.Fprintf(&buf, "%-8s %14s %14s %14s %14s %14s %14s %14s\n",
			"Month", "Net Flow", "Cash", "Housing", "Investments", "Mortgage", "Loans", "Net Worth")
		for j, month := range r.Months {
			marker := ""
			if j == r.LowestMonthlyBalance.Index {
				marker = " <- lowest"
			}
			fmt.Fprintf(&buf, "%-8s %14s %14s %14s %14s %14s %14s %14s%s\n",
				month,
				FormatCurrency(r.NetCashflow[j]),
				FormatCurrency(r.CashBalance[j]),
				FormatCurrency(r.Assets.Housing[j]),
				FormatCurrency(r.Assets.Investments[j]),
				FormatCurrency(r.Liabilities.Mortgage[j]),
				FormatCurrency(at(r.Liabilities.Loans, j)),
				FormatCurrency(r.NetWorth[j]),
				marker,
			)
		}
	}
	return buf.Bytes(), nil
}

// at returns s[i], or zero for an omitted series.
func at(s []decimal.Decimal, i int) decimal.Decimal {
	if i < len(s) {
		return s[i]
	}
	return decimal.Zero
}
