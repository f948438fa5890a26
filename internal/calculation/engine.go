package calculation

import (
	"errors"
	"fmt"

	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/rgehrsitz/finsim/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ErrInvalidHorizon is returned when horizonMonths is not positive.
var ErrInvalidHorizon = errors.New("horizon months must be positive")

// ProjectionEngine runs projections. It holds no state between calls and is
// safe for concurrent use once configured.
type ProjectionEngine struct {
	Logger Logger
	Debug  bool // log per-event and per-position detail
}

// NewProjectionEngine creates an engine with a no-op logger.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger installs a logger; nil restores the no-op logger.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// ComputeProjection runs a projection with a default engine.
func ComputeProjection(input *domain.ProjectionInput) (*domain.ProjectionResult, error) {
	return NewProjectionEngine().ComputeProjection(input)
}

// ComputeProjection expands every event and position onto the month axis and
// derives cash balance, net worth and the summary indicators. The input is not
// modified. Either the full result is returned or an error.
func (pe *ProjectionEngine) ComputeProjection(input *domain.ProjectionInput) (*domain.ProjectionResult, error) {
	if input == nil {
		return nil, errors.New("projection input is required")
	}
	if input.HorizonMonths <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHorizon, input.HorizonMonths)
	}
	months, err := dateutil.BuildMonthRange(input.BaseMonth, input.HorizonMonths)
	if err != nil {
		return nil, fmt.Errorf("base month: %w", err)
	}

	n := input.HorizonMonths
	tl := timeline{baseMonth: input.BaseMonth, horizon: n}
	acc := newContribution(n)

	for i, raw := range input.Events {
		event := ApplyEventAssumptionFallbacks(raw, input.Assumptions)
		series, err := ExpandEventToSeries(event, input.BaseMonth, n)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		addInto(acc.Cashflow, series)
		if pe.Debug {
			pe.Logger.Debugf("event %d (%s/%s): start=%s end=%s monthly=%s one-time=%s growth=%s",
				i, event.Name, event.Type, event.StartMonth, event.EndMonth,
				event.MonthlyAmount, event.OneTimeAmount, event.GrowthRate())
		}
	}

	var hasCars, hasLoans bool
	for _, pos := range collectPositions(input.Positions) {
		c, err := pos.contribute(tl)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pos.label(), err)
		}
		switch pos.kind() {
		case PositionCar:
			hasCars = true
		case PositionLoan:
			hasLoans = true
		}
		addInto(acc.Housing, c.Housing)
		addInto(acc.Investments, c.Investments)
		addInto(acc.Cars, c.Cars)
		addInto(acc.Mortgage, c.Mortgage)
		addInto(acc.Loans, c.Loans)
		addInto(acc.Cashflow, c.Cashflow)
		if pe.Debug {
			pe.Logger.Debugf("%s: first-month cashflow=%s", pos.label(), c.Cashflow[0])
		}
	}

	result := &domain.ProjectionResult{
		BaseMonth:   months[0],
		Months:      months,
		NetCashflow: acc.Cashflow,
		CashBalance: make([]decimal.Decimal, n),
		Assets: domain.AssetSeries{
			Housing:     acc.Housing,
			Investments: acc.Investments,
			Total:       make([]decimal.Decimal, n),
		},
		Liabilities: domain.LiabilitySeries{
			Mortgage: acc.Mortgage,
			Total:    make([]decimal.Decimal, n),
		},
		NetWorth: make([]decimal.Decimal, n),
	}
	if hasCars {
		result.Assets.Cars = acc.Cars
	}
	if hasLoans {
		result.Liabilities.Loans = acc.Loans
	}

	cash := input.InitialCash
	for i := 0; i < n; i++ {
		cash = cash.Add(acc.Cashflow[i])
		result.CashBalance[i] = cash
		result.Assets.Total[i] = acc.Housing[i].Add(acc.Investments[i]).Add(acc.Cars[i])
		result.Liabilities.Total[i] = acc.Mortgage[i].Add(acc.Loans[i])
		result.NetWorth[i] = cash.Add(result.Assets.Total[i]).Sub(result.Liabilities.Total[i])
	}

	result.LowestMonthlyBalance = FindLowestBalance(result.CashBalance, months)
	result.RunwayMonths = EstimateRunway(input.InitialCash, result.NetCashflow)
	result.NetWorthYear5 = NetWorthAtYear5(result.NetWorth)
	burning := BurnRate(result.NetCashflow).IsPositive()
	result.RiskLevel = ClassifyRisk(result.LowestMonthlyBalance.Value, result.RunwayMonths, burning)

	pe.Logger.Infof("projection %s +%dm: lowest balance %s at %s, runway %d, risk %s",
		result.BaseMonth, n, result.LowestMonthlyBalance.Value.StringFixed(2),
		result.LowestMonthlyBalance.Month, result.RunwayMonths, result.RiskLevel)

	return result, nil
}
