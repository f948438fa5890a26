package calculation

import (
	"github.com/shopspring/decimal"
)

// HomeValueParams describes an appreciating asset placed on the horizon.
type HomeValueParams struct {
	PurchasePrice      decimal.Decimal
	AnnualAppreciation decimal.Decimal
	StartIndex         int
	HorizonMonths      int
}

// ComputeHomeValueSeries returns the monthly value of a home from its purchase
// month onward. The value is PurchasePrice at max(0, StartIndex) and compounds at
// (1+AnnualAppreciation)^(1/12)-1 per month through the end of the horizon.
// Earlier months are zero.
func ComputeHomeValueSeries(p HomeValueParams) []decimal.Decimal {
	return compoundSeries(p.PurchasePrice, p.AnnualAppreciation, p.StartIndex, p.HorizonMonths)
}

// compoundSeries is the shared compounding law for home values, car values,
// holding costs and rent. A negative annual rate depreciates.
func compoundSeries(initial, annualRate decimal.Decimal, startIndex, horizonMonths int) []decimal.Decimal {
	series := zeroSeries(horizonMonths)
	if initial.LessThanOrEqual(decimal.Zero) || horizonMonths <= 0 {
		return series
	}

	start := max(0, startIndex)
	if start >= horizonMonths {
		return series
	}

	factor := one.Add(monthlyEquivalentRate(annualRate))
	series[start] = initial
	for i := start + 1; i < horizonMonths; i++ {
		series[i] = round(series[i-1].Mul(factor))
	}
	return series
}
