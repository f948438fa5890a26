package calculation

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcFixedMonthlyPayment_Degenerate(t *testing.T) {
	tests := []struct {
		name      string
		principal decimal.Decimal
		rate      decimal.Decimal
		term      int
	}{
		{"zero principal", decimal.Zero, dec(0.05), 360},
		{"negative principal", dec(-1000), dec(0.05), 360},
		{"zero term", dec(100000), dec(0.05), 0},
		{"negative term", dec(100000), dec(0.05), -12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, CalcFixedMonthlyPayment(tt.principal, tt.rate, tt.term).IsZero())
		})
	}
}

func TestCalcFixedMonthlyPayment_ZeroRateIsStraightLine(t *testing.T) {
	payment := CalcFixedMonthlyPayment(dec(120000), decimal.Zero, 360)
	assertDecimalEqual(t, dec(120000).Div(decimal.NewFromInt(360)), payment)

	payment = CalcFixedMonthlyPayment(dec(12000), decimal.Zero, 12)
	assertDecimalEqual(t, dec(1000), payment)
}

func TestCalcFixedMonthlyPayment_MatchesClosedForm(t *testing.T) {
	tests := []struct {
		principal float64
		rate      float64
		term      int
	}{
		{300000, 0.06, 360},
		{100000, 0.05, 360},
		{25000, 0.079, 60},
		{450000, 0.0325, 180},
	}
	for _, tt := range tests {
		r := tt.rate / 12
		want := tt.principal * r / (1 - math.Pow(1+r, -float64(tt.term)))
		got := CalcFixedMonthlyPayment(dec(tt.principal), dec(tt.rate), tt.term)
		assertDecimalNear(t, want, got, 1e-6, "principal %.0f rate %.4f term %d", tt.principal, tt.rate, tt.term)
	}

	// $100,000 at 5% over 30 years is the familiar $536.82.
	assert.Equal(t, "536.82", CalcFixedMonthlyPayment(dec(100000), dec(0.05), 360).StringFixed(2))
}

func TestApplyAmortizationMonth(t *testing.T) {
	r := dec(0.01)

	step := ApplyAmortizationMonth(dec(1000), r, dec(100))
	assertDecimalEqual(t, dec(10), step.Interest)
	assertDecimalEqual(t, dec(90), step.PrincipalPaid)
	assertDecimalEqual(t, dec(910), step.NextOutstanding)

	t.Run("underpayment grows the balance", func(t *testing.T) {
		step := ApplyAmortizationMonth(dec(1000), r, dec(5))
		assertDecimalEqual(t, dec(10), step.Interest)
		assert.True(t, step.PrincipalPaid.IsZero(), "principal paid must not go negative")
		assertDecimalEqual(t, dec(1005), step.NextOutstanding)
	})

	t.Run("overpayment clamps to the outstanding balance", func(t *testing.T) {
		step := ApplyAmortizationMonth(dec(1000), r, dec(2000))
		assertDecimalEqual(t, dec(1000), step.PrincipalPaid)
		assert.True(t, step.NextOutstanding.IsZero())
	})

	t.Run("paid off balance is all zero", func(t *testing.T) {
		for _, outstanding := range []decimal.Decimal{decimal.Zero, dec(-50)} {
			step := ApplyAmortizationMonth(outstanding, r, dec(100))
			assert.True(t, step.Interest.IsZero())
			assert.True(t, step.PrincipalPaid.IsZero())
			assert.True(t, step.NextOutstanding.IsZero())
		}
	})

	t.Run("zero rate", func(t *testing.T) {
		step := ApplyAmortizationMonth(dec(1000), decimal.Zero, dec(250))
		assert.True(t, step.Interest.IsZero())
		assertDecimalEqual(t, dec(250), step.PrincipalPaid)
		assertDecimalEqual(t, dec(750), step.NextOutstanding)
	})
}

func TestMonthlyRate(t *testing.T) {
	assertDecimalEqual(t, dec(0.005), MonthlyRate(dec(0.06)))
	require.True(t, MonthlyRate(decimal.Zero).IsZero())
}
