package transform

import (
	"fmt"

	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/rgehrsitz/finsim/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// DelayPurchase moves the purchase month of a home later. An empty Home delays
// every home that is bought within the scenario. With ExtendRent, rent events
// that stop around the original purchase month keep running until the new one.
type DelayPurchase struct {
	Home       string
	Months     int
	ExtendRent bool
}

func (dp *DelayPurchase) Name() string {
	return "delay_purchase"
}

func (dp *DelayPurchase) Description() string {
	target := "the home purchase"
	if dp.Home != "" {
		target = fmt.Sprintf("the purchase of %s", dp.Home)
	}
	return fmt.Sprintf("Delay %s by %d months", target, dp.Months)
}

func (dp *DelayPurchase) Validate(base *domain.Scenario) error {
	if dp.Months < 0 {
		return NewTransformError(dp.Name(), "validate", fmt.Sprintf("months must be non-negative, got %d", dp.Months), nil)
	}
	if base == nil {
		return NewTransformError(dp.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if len(purchasedHomes(base, dp.Home)) == 0 {
		if dp.Home != "" {
			return NewTransformError(dp.Name(), "validate", fmt.Sprintf("home %s is not purchased in scenario %s", dp.Home, base.Name), nil)
		}
		return NewTransformError(dp.Name(), "validate", fmt.Sprintf("scenario %s has no home purchase", base.Name), nil)
	}
	return nil
}

func (dp *DelayPurchase) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()

	for _, i := range purchasedHomes(modified, dp.Home) {
		h := &modified.Positions.Homes[i]
		original := h.PurchaseMonth

		moved, err := dateutil.AddMonths(original, dp.Months)
		if err != nil {
			return nil, NewTransformError(dp.Name(), "apply", "invalid purchase month", err)
		}
		h.PurchaseMonth = moved

		if h.Rental != nil && h.Rental.RentStartMonth != "" {
			if h.Rental.RentStartMonth, err = dateutil.AddMonths(h.Rental.RentStartMonth, dp.Months); err != nil {
				return nil, NewTransformError(dp.Name(), "apply", "invalid rent start month", err)
			}
		}
		if dp.ExtendRent {
			if err := extendRent(modified, original, dp.Months); err != nil {
				return nil, NewTransformError(dp.Name(), "apply", "invalid rent end month", err)
			}
		}
	}
	return modified, nil
}

// extendRent pushes back the end of rent events that stop in the month before
// or the month of purchase.
func extendRent(s *domain.Scenario, purchaseMonth string, months int) error {
	for i := range s.Events {
		e := &s.Events[i]
		if e.Type != domain.EventTypeRent || e.EndMonth == "" {
			continue
		}
		idx, err := dateutil.MonthIndex(e.EndMonth, purchaseMonth)
		if err != nil {
			return err
		}
		if idx != 0 && idx != 1 {
			continue
		}
		if e.EndMonth, err = dateutil.AddMonths(e.EndMonth, months); err != nil {
			return err
		}
	}
	return nil
}

// SetDownPayment sets the down payment of purchased homes to a fraction of the
// price. A mortgage, when present, finances the remainder.
type SetDownPayment struct {
	Home     string
	Fraction decimal.Decimal
}

func (sd *SetDownPayment) Name() string {
	return "set_down_payment"
}

func (sd *SetDownPayment) Description() string {
	pct := sd.Fraction.Mul(decimal.NewFromInt(100)).StringFixed(0)
	if sd.Home != "" {
		return fmt.Sprintf("Put %s%% down on %s", pct, sd.Home)
	}
	return fmt.Sprintf("Put %s%% down on the home purchase", pct)
}

func (sd *SetDownPayment) Validate(base *domain.Scenario) error {
	if sd.Fraction.IsNegative() || sd.Fraction.GreaterThan(decimal.NewFromInt(1)) {
		return NewTransformError(sd.Name(), "validate", fmt.Sprintf("fraction must be between 0 and 1, got %s", sd.Fraction), nil)
	}
	if base == nil {
		return NewTransformError(sd.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if len(purchasedHomes(base, sd.Home)) == 0 {
		return NewTransformError(sd.Name(), "validate", fmt.Sprintf("scenario %s has no matching home purchase", base.Name), nil)
	}
	return nil
}

func (sd *SetDownPayment) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	for _, i := range purchasedHomes(modified, sd.Home) {
		h := &modified.Positions.Homes[i]
		h.DownPayment = h.PurchasePrice.Mul(sd.Fraction).Round(2)
		if h.Mortgage != nil {
			h.Mortgage.Principal = h.PurchasePrice.Sub(h.DownPayment)
		}
	}
	return modified, nil
}

// purchasedHomes returns the indexes of homes bought within the scenario,
// filtered by name when name is not empty. Homes are read from the normalized
// positions.homes list.
func purchasedHomes(s *domain.Scenario, name string) []int {
	if s.Positions == nil {
		return nil
	}
	var idx []int
	for i, h := range s.Positions.Homes {
		if h.IsExisting() || h.PurchaseMonth == "" {
			continue
		}
		if name != "" && h.Name != name {
			continue
		}
		idx = append(idx, i)
	}
	return idx
}
