package calculation

import (
	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// MortgageParams describes a level-payment loan placed on the projection horizon.
type MortgageParams struct {
	Principal     decimal.Decimal
	AnnualRate    decimal.Decimal
	TermMonths    int
	StartIndex    int // month index of the first payment; may be negative
	HorizonMonths int
}

// ComputeMortgageSchedule expands a mortgage into per-month interest, principal
// and balance series over the horizon.
//
// Each active month pays interest = balance*r and principal = min(balance,
// payment-interest). The payment is assumed sufficient; loans whose payment can
// be overridden use ApplyAmortizationMonth instead.
func ComputeMortgageSchedule(p MortgageParams) domain.MortgageSchedule {
	schedule := domain.MortgageSchedule{
		PaymentMonthly:  decimal.Zero,
		InterestSeries:  zeroSeries(p.HorizonMonths),
		PrincipalSeries: zeroSeries(p.HorizonMonths),
		BalanceSeries:   zeroSeries(p.HorizonMonths),
	}
	if p.Principal.LessThanOrEqual(decimal.Zero) || p.TermMonths <= 0 || p.HorizonMonths <= 0 {
		return schedule
	}

	schedule.PaymentMonthly = CalcFixedMonthlyPayment(p.Principal, p.AnnualRate, p.TermMonths)
	r := MonthlyRate(p.AnnualRate)

	balance := p.Principal
	first := max(0, p.StartIndex)
	last := min(p.HorizonMonths, p.StartIndex+p.TermMonths)
	for i := first; i < last; i++ {
		interest := round(balance.Mul(r))
		principalPayment := schedule.PaymentMonthly.Sub(interest)
		if principalPayment.GreaterThan(balance) {
			principalPayment = balance
		}
		balance = balance.Sub(principalPayment)
		if balance.LessThan(decimal.Zero) {
			balance = decimal.Zero
		}

		schedule.InterestSeries[i] = interest
		schedule.PrincipalSeries[i] = principalPayment
		schedule.BalanceSeries[i] = balance
	}

	return schedule
}

// BuildAmortizationTable returns the full month-by-month table for a loan
// starting at month 1.
func BuildAmortizationTable(principal, annualRate decimal.Decimal, termMonths int) []domain.AmortizationRow {
	schedule := ComputeMortgageSchedule(MortgageParams{
		Principal:     principal,
		AnnualRate:    annualRate,
		TermMonths:    termMonths,
		StartIndex:    0,
		HorizonMonths: termMonths,
	})
	if schedule.PaymentMonthly.IsZero() {
		return nil
	}

	rows := make([]domain.AmortizationRow, 0, termMonths)
	for i := 0; i < termMonths; i++ {
		interest := schedule.InterestSeries[i]
		principalPart := schedule.PrincipalSeries[i]
		rows = append(rows, domain.AmortizationRow{
			Month:     i + 1,
			Payment:   interest.Add(principalPart),
			Interest:  interest,
			Principal: principalPart,
			Balance:   schedule.BalanceSeries[i],
		})
	}
	return rows
}
