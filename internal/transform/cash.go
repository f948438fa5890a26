package transform

import (
	"fmt"

	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// maxHorizonMonths matches the horizon limit enforced on loaded scenarios.
const maxHorizonMonths = 1200

// SetInitialCash replaces the starting cash balance.
type SetInitialCash struct {
	Amount decimal.Decimal
}

func (sc *SetInitialCash) Name() string {
	return "set_initial_cash"
}

func (sc *SetInitialCash) Description() string {
	return fmt.Sprintf("Start with %s in cash", sc.Amount.StringFixed(2))
}

func (sc *SetInitialCash) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(sc.Name(), "validate", "base scenario cannot be nil", nil)
	}
	return nil
}

func (sc *SetInitialCash) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.InitialCash = sc.Amount
	return modified, nil
}

// ExtendHorizon projects further ahead.
type ExtendHorizon struct {
	Months int
}

func (eh *ExtendHorizon) Name() string {
	return "extend_horizon"
}

func (eh *ExtendHorizon) Description() string {
	return fmt.Sprintf("Extend the horizon by %d months", eh.Months)
}

func (eh *ExtendHorizon) Validate(base *domain.Scenario) error {
	if eh.Months <= 0 {
		return NewTransformError(eh.Name(), "validate", fmt.Sprintf("months must be positive, got %d", eh.Months), nil)
	}
	if base == nil {
		return NewTransformError(eh.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if base.HorizonMonths+eh.Months > maxHorizonMonths {
		return NewTransformError(eh.Name(), "validate", fmt.Sprintf("horizon would exceed %d months", maxHorizonMonths), nil)
	}
	return nil
}

func (eh *ExtendHorizon) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.HorizonMonths += eh.Months
	return modified, nil
}
