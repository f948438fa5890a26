package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rgehrsitz/finsim/internal/domain"
)

// CSVFormatter writes one row per scenario month.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

var csvHeader = []string{
	"scenario", "month", "net_cashflow", "cash_balance",
	"housing", "investments", "cars", "total_assets",
	"mortgage", "loans", "total_liabilities", "net_worth",
}

func (c CSVFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, sc := range report.Scenarios {
		r := sc.Result
		if r == nil {
			continue
		}
		for i, month := range r.Months {
			row := []string{
				sc.Name,
				month,
				r.NetCashflow[i].StringFixed(2),
				r.CashBalance[i].StringFixed(2),
				r.Assets.Housing[i].StringFixed(2),
				r.Assets.Investments[i].StringFixed(2),
				at(r.Assets.Cars, i).StringFixed(2),
				r.Assets.Total[i].StringFixed(2),
				r.Liabilities.Mortgage[i].StringFixed(2),
				at(r.Liabilities.Loans, i).StringFixed(2),
				r.Liabilities.Total[i].StringFixed(2),
				r.NetWorth[i].StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
