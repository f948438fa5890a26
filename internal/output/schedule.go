package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// ScheduleSummary totals an amortization table.
type ScheduleSummary struct {
	Payment       decimal.Decimal `json:"payment"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	TotalInterest decimal.Decimal `json:"totalInterest"`
}

// SummarizeSchedule totals the payments and interest of rows.
func SummarizeSchedule(rows []domain.AmortizationRow) ScheduleSummary {
	s := ScheduleSummary{Payment: decimal.Zero, TotalPaid: decimal.Zero, TotalInterest: decimal.Zero}
	if len(rows) > 0 {
		s.Payment = rows[0].Payment
	}
	for _, r := range rows {
		s.TotalPaid = s.TotalPaid.Add(r.Payment)
		s.TotalInterest = s.TotalInterest.Add(r.Interest)
	}
	return s
}

// FormatSchedule renders an amortization table as console text, csv or json.
func FormatSchedule(rows []domain.AmortizationRow, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(struct {
			Summary ScheduleSummary          `json:"summary"`
			Rows    []domain.AmortizationRow `json:"rows"`
		}{SummarizeSchedule(rows), rows}, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "csv":
		buf := &bytes.Buffer{}
		w := csv.NewWriter(buf)
		if err := w.Write([]string{"month", "payment", "interest", "principal", "balance"}); err != nil {
			return nil, err
		}
		for _, r := range rows {
			if err := w.Write([]string{
				strconv.Itoa(r.Month),
				r.Payment.StringFixed(2),
				r.Interest.StringFixed(2),
				r.Principal.StringFixed(2),
				r.Balance.StringFixed(2),
			}); err != nil {
				return nil, err
			}
		}
		w.Flush()
		return buf.Bytes(), w.Error()
	case "console", "":
		var buf bytes.Buffer
		s := SummarizeSchedule(rows)
		fmt.Fprintf(&buf, "Monthly Payment: %s\n", FormatCurrency(s.Payment))
		fmt.Fprintf(&buf, "Total Paid:      %s\n", FormatCurrency(s.TotalPaid))
		fmt.Fprintf(&buf, "Total Interest:  %s\n\n", FormatCurrency(s.TotalInterest))
		fmt.Fprintf(&buf, "%6s %14s %14s %14s %16s\n", "Month", "Payment", "Interest", "Principal", "Balance")
		for _, r := range rows {
			fmt.Fprintf(&buf, "%6d %14s %14s %14s %16s\n", r.Month,
				FormatCurrency(r.Payment), FormatCurrency(r.Interest), FormatCurrency(r.Principal), FormatCurrency(r.Balance))
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported schedule format: %s", format)
	}
}
