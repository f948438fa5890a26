package calculation

import (
	"fmt"

	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/rgehrsitz/finsim/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ExpandEventToSeries expands one event into a signed monthly series aligned to
// baseMonth.
//
// The start and end months are clipped to the horizon. For each month in that
// window the value is MonthlyAmount*(1+g)^(n/12), where n counts months since
// the clipped start, and OneTimeAmount is added once at the clipped start. An
// event that began before baseMonth therefore enters the horizon at month 0
// with no growth applied. Disabled events and events entirely outside the
// horizon yield zeros.
func ExpandEventToSeries(event domain.Event, baseMonth string, horizonMonths int) ([]decimal.Decimal, error) {
	series := zeroSeries(horizonMonths)
	if !event.IsEnabled() || horizonMonths <= 0 {
		return series, nil
	}

	startIndex, err := dateutil.MonthIndex(baseMonth, event.StartMonth)
	if err != nil {
		return nil, fmt.Errorf("event %q start month: %w", event.Name, err)
	}
	endIndex := horizonMonths - 1
	if event.EndMonth != "" {
		endIndex, err = dateutil.MonthIndex(baseMonth, event.EndMonth)
		if err != nil {
			return nil, fmt.Errorf("event %q end month: %w", event.Name, err)
		}
	}

	if startIndex > horizonMonths-1 || endIndex < 0 || startIndex > endIndex {
		return series, nil
	}

	first := clampIndex(startIndex, 0, horizonMonths-1)
	last := clampIndex(endIndex, 0, horizonMonths-1)
	growth := event.GrowthRate()

	if !event.MonthlyAmount.IsZero() {
		for i := first; i <= last; i++ {
			value := event.MonthlyAmount
			if !growth.IsZero() {
				value = round(value.Mul(growthFactor(growth, i-first)))
			}
			series[i] = value
		}
	}

	series[first] = series[first].Add(event.OneTimeAmount)

	return series, nil
}

// ApplyEventAssumptionFallbacks fills an unset growth rate from scenario
// assumptions: rent events use the rent growth rate (or inflation when that is
// unset), salary events use the salary growth rate. Events that already carry a
// rate, and events of other types, are returned unchanged.
func ApplyEventAssumptionFallbacks(event domain.Event, assumptions *domain.Assumptions) domain.Event {
	if event.AnnualGrowthPct != nil || assumptions == nil {
		return event
	}

	switch event.Type {
	case domain.EventTypeRent:
		if assumptions.RentAnnualGrowthPct != nil {
			event.AnnualGrowthPct = copyDecimal(assumptions.RentAnnualGrowthPct)
		} else {
			event.AnnualGrowthPct = copyDecimal(assumptions.InflationRate)
		}
	case domain.EventTypeSalary:
		event.AnnualGrowthPct = copyDecimal(assumptions.SalaryGrowthRate)
	}
	return event
}

func copyDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
