package transform

import (
	"fmt"

	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// Event selectors accepted by ScaleEvents besides a plain event type.
const (
	MatchInflows  = "inflows"
	MatchOutflows = "outflows"
	MatchAll      = "all"
)

// ScaleEvents multiplies event amounts by Factor. Match selects the amounts:
// "inflows" and "outflows" pick amounts by sign, "all" picks every amount, and
// anything else is an event type whose amounts are all scaled.
type ScaleEvents struct {
	Match  string
	Factor decimal.Decimal
}

func (se *ScaleEvents) Name() string {
	return "scale_events"
}

func (se *ScaleEvents) Description() string {
	pct := se.Factor.Sub(decimal.NewFromInt(1)).Mul(decimal.NewFromInt(100))
	verb := "Raise"
	if pct.IsNegative() {
		verb = "Cut"
	}
	return fmt.Sprintf("%s %s by %s%%", verb, se.Match, pct.Abs().StringFixed(0))
}

func (se *ScaleEvents) Validate(base *domain.Scenario) error {
	if se.Match == "" {
		return NewTransformError(se.Name(), "validate", "match cannot be empty", nil)
	}
	if se.Factor.IsNegative() {
		return NewTransformError(se.Name(), "validate", fmt.Sprintf("factor must be non-negative, got %s", se.Factor), nil)
	}
	if base == nil {
		return NewTransformError(se.Name(), "validate", "base scenario cannot be nil", nil)
	}
	for _, e := range base.Events {
		if se.selects(e.Type, e.MonthlyAmount) || se.selects(e.Type, e.OneTimeAmount) {
			return nil
		}
	}
	return NewTransformError(se.Name(), "validate", fmt.Sprintf("no events in scenario %s match %q", base.Name, se.Match), nil)
}

func (se *ScaleEvents) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	for i := range modified.Events {
		e := &modified.Events[i]
		if se.selects(e.Type, e.MonthlyAmount) {
			e.MonthlyAmount = e.MonthlyAmount.Mul(se.Factor).Round(2)
		}
		if se.selects(e.Type, e.OneTimeAmount) {
			e.OneTimeAmount = e.OneTimeAmount.Mul(se.Factor).Round(2)
		}
	}
	return modified, nil
}

func (se *ScaleEvents) selects(eventType string, amount decimal.Decimal) bool {
	if amount.IsZero() {
		return false
	}
	switch se.Match {
	case MatchInflows:
		return amount.IsPositive()
	case MatchOutflows:
		return amount.IsNegative()
	case MatchAll:
		return true
	default:
		return eventType == se.Match
	}
}

// DisableEvent switches a named event off.
type DisableEvent struct {
	Event string
}

func (de *DisableEvent) Name() string {
	return "disable_event"
}

func (de *DisableEvent) Description() string {
	return fmt.Sprintf("Drop the %s event", de.Event)
}

func (de *DisableEvent) Validate(base *domain.Scenario) error {
	if de.Event == "" {
		return NewTransformError(de.Name(), "validate", "event name cannot be empty", nil)
	}
	if base == nil {
		return NewTransformError(de.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if findEvent(base, de.Event) < 0 {
		return NewTransformError(de.Name(), "validate", fmt.Sprintf("event %s not found in scenario %s", de.Event, base.Name), nil)
	}
	return nil
}

func (de *DisableEvent) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	off := false
	for i := range modified.Events {
		if modified.Events[i].Name == de.Event {
			modified.Events[i].Enabled = &off
		}
	}
	return modified, nil
}

func findEvent(s *domain.Scenario, name string) int {
	for i, e := range s.Events {
		if e.Name == name {
			return i
		}
	}
	return -1
}
