package calculation

import (
	"fmt"

	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/rgehrsitz/finsim/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// PositionKind tags the closed set of position variants.
type PositionKind string

const (
	PositionHome       PositionKind = "home"
	PositionLoan       PositionKind = "loan"
	PositionInvestment PositionKind = "investment"
	PositionCar        PositionKind = "car"
)

// timeline is the shared month axis of one projection.
type timeline struct {
	baseMonth string
	horizon   int
}

// index returns the month offset of m from the base month.
func (tl timeline) index(m string) (int, error) {
	return dateutil.MonthIndex(tl.baseMonth, m)
}

// Contribution is what one position adds to the projection. Asset and
// liability series are levels; Cashflow is signed (negative = outflow).
type Contribution struct {
	Housing     []decimal.Decimal
	Investments []decimal.Decimal
	Cars        []decimal.Decimal
	Mortgage    []decimal.Decimal
	Loans       []decimal.Decimal
	Cashflow    []decimal.Decimal
}

func newContribution(horizon int) Contribution {
	return Contribution{
		Housing:     zeroSeries(horizon),
		Investments: zeroSeries(horizon),
		Cars:        zeroSeries(horizon),
		Mortgage:    zeroSeries(horizon),
		Loans:       zeroSeries(horizon),
		Cashflow:    zeroSeries(horizon),
	}
}

// outflowAt records a one-time outflow at index i when it lies in the horizon.
func (c *Contribution) outflowAt(i int, amount decimal.Decimal) {
	if i < 0 || i >= len(c.Cashflow) || amount.IsZero() {
		return
	}
	c.Cashflow[i] = c.Cashflow[i].Sub(amount)
}

// position is one tagged position variant.
type position interface {
	kind() PositionKind
	label() string
	contribute(tl timeline) (Contribution, error)
}

// collectPositions flattens a position bundle into its variants, folding the
// legacy singular home into homes[0].
func collectPositions(p *domain.Positions) []position {
	if p == nil {
		return nil
	}
	var out []position
	for i, h := range p.AllHomes() {
		out = append(out, homePosition{HomePosition: h, ordinal: i})
	}
	for i, l := range p.Loans {
		out = append(out, loanPosition{LoanPosition: l, ordinal: i})
	}
	for i, inv := range p.Investments {
		out = append(out, investmentPosition{InvestmentPosition: inv, ordinal: i})
	}
	for i, c := range p.Cars {
		out = append(out, carPosition{CarPosition: c, ordinal: i})
	}
	return out
}

func positionLabel(kind PositionKind, name string, ordinal int) string {
	if name != "" {
		return fmt.Sprintf("%s %q", kind, name)
	}
	return fmt.Sprintf("%s #%d", kind, ordinal+1)
}

type homePosition struct {
	domain.HomePosition
	ordinal int
}

func (h homePosition) kind() PositionKind { return PositionHome }
func (h homePosition) label() string      { return positionLabel(PositionHome, h.Name, h.ordinal) }

func (h homePosition) contribute(tl timeline) (Contribution, error) {
	c := newContribution(tl.horizon)

	var startIndex int
	var err error
	if h.IsExisting() {
		startIndex, err = h.contributeExisting(tl, &c)
	} else {
		startIndex, err = h.contributePurchase(tl, &c)
	}
	if err != nil {
		return Contribution{}, err
	}

	holding := compoundSeries(h.HoldingCostMonthly, h.HoldingCostAnnualGrowth, startIndex, tl.horizon)
	subInto(c.Cashflow, holding)

	if h.Rental != nil {
		rentStart := startIndex
		if h.Rental.RentStartMonth != "" {
			rentStart, err = tl.index(h.Rental.RentStartMonth)
			if err != nil {
				return Contribution{}, fmt.Errorf("rent start month: %w", err)
			}
		}
		rent := compoundSeries(h.Rental.RentMonthly, h.Rental.RentAnnualGrowth, rentStart, tl.horizon)
		addInto(c.Cashflow, rent)
	}

	return c, nil
}

// contributePurchase models a new purchase and returns the purchase month index.
func (h homePosition) contributePurchase(tl timeline, c *Contribution) (int, error) {
	if h.PurchaseMonth == "" {
		if h.PurchasePrice.IsPositive() {
			return 0, fmt.Errorf("purchase month is required for a new purchase")
		}
		// Nothing purchased: the home contributes nothing.
		return tl.horizon, nil
	}
	start, err := tl.index(h.PurchaseMonth)
	if err != nil {
		return 0, fmt.Errorf("purchase month: %w", err)
	}

	c.Housing = ComputeHomeValueSeries(HomeValueParams{
		PurchasePrice:      h.PurchasePrice,
		AnnualAppreciation: h.AnnualAppreciation,
		StartIndex:         start,
		HorizonMonths:      tl.horizon,
	})
	c.outflowAt(start, h.DownPayment.Add(h.FeesOneTime))

	if h.Mortgage != nil {
		schedule := ComputeMortgageSchedule(MortgageParams{
			Principal:     h.Mortgage.Principal,
			AnnualRate:    h.Mortgage.AnnualRate,
			TermMonths:    h.Mortgage.TermMonths,
			StartIndex:    start,
			HorizonMonths: tl.horizon,
		})
		applySchedule(c, schedule)
	}
	return start, nil
}

// contributeExisting models an owned home from its as-of valuation and returns
// the as-of month index.
func (h homePosition) contributeExisting(tl timeline, c *Contribution) (int, error) {
	ex := h.Existing
	start, err := tl.index(ex.AsOfMonth)
	if err != nil {
		return 0, fmt.Errorf("as-of month: %w", err)
	}

	c.Housing = ComputeHomeValueSeries(HomeValueParams{
		PurchasePrice:      ex.MarketValue,
		AnnualAppreciation: h.AnnualAppreciation,
		StartIndex:         start,
		HorizonMonths:      tl.horizon,
	})

	schedule := ComputeMortgageSchedule(MortgageParams{
		Principal:     ex.MortgageBalance,
		AnnualRate:    ex.AnnualRate,
		TermMonths:    ex.RemainingTermMonths,
		StartIndex:    start,
		HorizonMonths: tl.horizon,
	})
	applySchedule(c, schedule)
	return start, nil
}

// applySchedule books a mortgage balance as liability and each month's
// interest plus principal as cash outflow.
func applySchedule(c *Contribution, s domain.MortgageSchedule) {
	addInto(c.Mortgage, s.BalanceSeries)
	subInto(c.Cashflow, s.InterestSeries)
	subInto(c.Cashflow, s.PrincipalSeries)
}

// residualTolerance is the balance below which a loan counts as paid off once
// its term ends.
var residualTolerance = decimal.New(1, -6)

type loanPosition struct {
	domain.LoanPosition
	ordinal int
}

func (l loanPosition) kind() PositionKind { return PositionLoan }
func (l loanPosition) label() string      { return positionLabel(PositionLoan, l.Name, l.ordinal) }

// payment returns the override when one is supplied, else the level payment.
func (l loanPosition) payment() decimal.Decimal {
	if l.MonthlyPayment != nil {
		return *l.MonthlyPayment
	}
	return CalcFixedMonthlyPayment(l.Principal, l.AnnualInterestRate, l.TermMonths)
}

// contribute amortizes the loan with ApplyAmortizationMonth so an overridden
// payment below the accrued interest grows the balance instead of failing.
// A balance left at the end of the term is carried flat to the horizon.
func (l loanPosition) contribute(tl timeline) (Contribution, error) {
	c := newContribution(tl.horizon)
	if l.Principal.LessThanOrEqual(decimal.Zero) || l.TermMonths <= 0 {
		return c, nil
	}
	start, err := tl.index(l.StartMonth)
	if err != nil {
		return Contribution{}, fmt.Errorf("start month: %w", err)
	}

	r := MonthlyRate(l.AnnualInterestRate)
	payment := l.payment()
	balance := l.Principal

	first := max(0, start)
	last := min(tl.horizon, start+l.TermMonths)
	active := false
	for i := first; i < last && balance.IsPositive(); i++ {
		active = true
		step := ApplyAmortizationMonth(balance, r, payment)
		due := balance.Add(step.Interest)
		paid := payment
		if paid.GreaterThan(due) {
			paid = due
		}
		c.Cashflow[i] = c.Cashflow[i].Sub(paid)
		balance = step.NextOutstanding
		c.Loans[i] = balance
	}
	if active && balance.GreaterThan(residualTolerance) {
		for i := last; i < tl.horizon; i++ {
			c.Loans[i] = balance
		}
	}
	return c, nil
}

type investmentPosition struct {
	domain.InvestmentPosition
	ordinal int
}

func (inv investmentPosition) kind() PositionKind { return PositionInvestment }
func (inv investmentPosition) label() string {
	return positionLabel(PositionInvestment, inv.Name, inv.ordinal)
}

// contribute compounds the account monthly. Within a month growth is applied to
// the prior balance first and the contribution is added after, so a
// contribution earns nothing in the month it is made. The start month holds
// InitialValue plus that month's contribution.
func (inv investmentPosition) contribute(tl timeline) (Contribution, error) {
	c := newContribution(tl.horizon)
	start, err := tl.index(inv.StartMonth)
	if err != nil {
		return Contribution{}, fmt.Errorf("start month: %w", err)
	}
	contributeUntil := tl.horizon - 1
	if inv.ContributionEndMonth != "" {
		contributeUntil, err = tl.index(inv.ContributionEndMonth)
		if err != nil {
			return Contribution{}, fmt.Errorf("contribution end month: %w", err)
		}
	}

	first := max(0, start)
	if first >= tl.horizon {
		return c, nil
	}
	factor := one.Add(monthlyEquivalentRate(inv.AnnualReturnRate))

	balance := inv.InitialValue
	for i := first; i < tl.horizon; i++ {
		if i > first {
			balance = round(balance.Mul(factor))
		}
		if i <= contributeUntil && inv.MonthlyContribution.IsPositive() {
			balance = balance.Add(inv.MonthlyContribution)
			c.Cashflow[i] = c.Cashflow[i].Sub(inv.MonthlyContribution)
		}
		c.Investments[i] = balance
	}
	return c, nil
}

type carPosition struct {
	domain.CarPosition
	ordinal int
}

func (car carPosition) kind() PositionKind { return PositionCar }
func (car carPosition) label() string      { return positionLabel(PositionCar, car.Name, car.ordinal) }

// contribute depreciates the car with the home compounding law and books the
// down payment and growing holding costs as outflows.
func (car carPosition) contribute(tl timeline) (Contribution, error) {
	c := newContribution(tl.horizon)
	start, err := tl.index(car.PurchaseMonth)
	if err != nil {
		return Contribution{}, fmt.Errorf("purchase month: %w", err)
	}

	c.Cars = compoundSeries(car.PurchasePrice, car.AnnualDepreciationRate, start, tl.horizon)
	c.outflowAt(start, car.DownPayment)
	subInto(c.Cashflow, compoundSeries(car.HoldingCostMonthly, car.HoldingCostAnnualGrowth, start, tl.horizon))
	return c, nil
}
