package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

// AmortizationStep is the result of applying one monthly payment to a balance.
type AmortizationStep struct {
	Interest        decimal.Decimal
	PrincipalPaid   decimal.Decimal
	NextOutstanding decimal.Decimal
}

// MonthlyRate converts an annual nominal rate to a monthly rate (annualRate/12).
func MonthlyRate(annualRate decimal.Decimal) decimal.Decimal {
	return annualRate.Div(twelve)
}

// CalcFixedMonthlyPayment returns the level payment that amortizes principal over
// termMonths at annualRate/12 per month. It is zero for a non-positive principal
// or term and straight-line (principal/termMonths) at a zero rate.
//
//	payment = P * r / (1 - (1+r)^-n)
func CalcFixedMonthlyPayment(principal, annualRate decimal.Decimal, termMonths int) decimal.Decimal {
	if principal.LessThanOrEqual(decimal.Zero) || termMonths <= 0 {
		return decimal.Zero
	}
	r := MonthlyRate(annualRate)
	if r.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(termMonths)))
	}

	// The power term is evaluated in float64, the rest stays in decimal.
	denominator := 1 - math.Pow(1+r.InexactFloat64(), -float64(termMonths))
	if denominator == 0 {
		return principal.Div(decimal.NewFromInt(int64(termMonths)))
	}
	return principal.Mul(r).Div(floatToDecimal(denominator))
}

// ApplyAmortizationMonth applies one payment to an outstanding balance.
//
// The principal portion is clamped to [0, outstanding]. The next balance is
// max(0, outstanding + interest - payment), so an underpayment grows the balance
// (negative amortization). A non-positive balance yields an all-zero step.
func ApplyAmortizationMonth(outstanding, monthlyRate, payment decimal.Decimal) AmortizationStep {
	if outstanding.LessThanOrEqual(decimal.Zero) {
		return AmortizationStep{Interest: decimal.Zero, PrincipalPaid: decimal.Zero, NextOutstanding: decimal.Zero}
	}

	interest := round(outstanding.Mul(monthlyRate))
	principalPaid := payment.Sub(interest)
	if principalPaid.LessThan(decimal.Zero) {
		principalPaid = decimal.Zero
	}
	if principalPaid.GreaterThan(outstanding) {
		principalPaid = outstanding
	}

	next := outstanding.Add(interest).Sub(payment)
	if next.LessThan(decimal.Zero) {
		next = decimal.Zero
	}

	return AmortizationStep{
		Interest:        interest,
		PrincipalPaid:   principalPaid,
		NextOutstanding: next,
	}
}
