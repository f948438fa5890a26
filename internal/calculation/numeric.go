package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

// roundPlaces bounds decimal growth across repeated multiplication.
const roundPlaces int32 = 10

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(roundPlaces)
}

// floatToDecimal converts a float64 power result, mapping NaN and infinities to zero.
func floatToDecimal(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// growthFactor returns (1+annualRate)^(months/12). A rate at or below -100%
// collapses the factor to zero.
func growthFactor(annualRate decimal.Decimal, months int) decimal.Decimal {
	base := 1 + annualRate.InexactFloat64()
	if base <= 0 {
		if months == 0 {
			return one
		}
		return decimal.Zero
	}
	return floatToDecimal(math.Pow(base, float64(months)/12.0))
}

// monthlyEquivalentRate returns (1+annualRate)^(1/12) - 1.
func monthlyEquivalentRate(annualRate decimal.Decimal) decimal.Decimal {
	if annualRate.IsZero() {
		return decimal.Zero
	}
	return growthFactor(annualRate, 1).Sub(one)
}

func zeroSeries(n int) []decimal.Decimal {
	if n < 0 {
		n = 0
	}
	s := make([]decimal.Decimal, n)
	for i := range s {
		s[i] = decimal.Zero
	}
	return s
}

// addInto adds src into dst pointwise over their common length.
func addInto(dst, src []decimal.Decimal) {
	for i := 0; i < len(dst) && i < len(src); i++ {
		dst[i] = dst[i].Add(src[i])
	}
}

// subInto subtracts src from dst pointwise over their common length.
func subInto(dst, src []decimal.Decimal) {
	for i := 0; i < len(dst) && i < len(src); i++ {
		dst[i] = dst[i].Sub(src[i])
	}
}

func clampIndex(i, lo, hi int) int {
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}
