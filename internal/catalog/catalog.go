// Package catalog maps event types to cashflow polarity. Scenario files may
// write amounts unsigned; the catalog decides whether an amount is money in or
// money out before the engine sees it.
package catalog

import (
	"sort"

	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// Polarity is the cashflow direction of an event type.
type Polarity int

const (
	// AsIs keeps the amount's sign as written.
	AsIs Polarity = iota
	Inflow
	Outflow
)

func (p Polarity) String() string {
	switch p {
	case Inflow:
		return "inflow"
	case Outflow:
		return "outflow"
	default:
		return "as-is"
	}
}

// Entry describes one event type.
type Entry struct {
	Type     string
	Label    string
	Polarity Polarity
}

var entries = map[string]Entry{
	domain.EventTypeSalary:         {domain.EventTypeSalary, "Salary", Inflow},
	domain.EventTypeBonus:          {domain.EventTypeBonus, "Bonus", Inflow},
	domain.EventTypeRentalIncome:   {domain.EventTypeRentalIncome, "Rental income", Inflow},
	domain.EventTypeOtherIncome:    {domain.EventTypeOtherIncome, "Other income", Inflow},
	domain.EventTypeRent:           {domain.EventTypeRent, "Rent", Outflow},
	domain.EventTypeLivingExpenses: {domain.EventTypeLivingExpenses, "Living expenses", Outflow},
	domain.EventTypeChildcare:      {domain.EventTypeChildcare, "Childcare", Outflow},
	domain.EventTypeTuition:        {domain.EventTypeTuition, "Tuition", Outflow},
	domain.EventTypeInsurance:      {domain.EventTypeInsurance, "Insurance", Outflow},
	domain.EventTypeHealthcare:     {domain.EventTypeHealthcare, "Healthcare", Outflow},
	domain.EventTypeTravel:         {domain.EventTypeTravel, "Travel", Outflow},
	domain.EventTypePurchase:       {domain.EventTypePurchase, "Purchase", Outflow},
	domain.EventTypeWedding:        {domain.EventTypeWedding, "Wedding", Outflow},
	// a job loss is usually written as the negative of the lost salary
	domain.EventTypeJobLoss: {domain.EventTypeJobLoss, "Job loss", AsIs},
	domain.EventTypeCustom:  {domain.EventTypeCustom, "Custom", AsIs},
}

// Lookup returns the catalog entry for an event type.
func Lookup(eventType string) (Entry, bool) {
	e, ok := entries[eventType]
	return e, ok
}

// Known reports whether the event type is in the catalog.
func Known(eventType string) bool {
	_, ok := entries[eventType]
	return ok
}

// Types returns every catalogued event type, sorted.
func Types() []string {
	types := make([]string, 0, len(entries))
	for t := range entries {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// PolarityOf returns the polarity of an event type; unknown types are AsIs.
func PolarityOf(eventType string) Polarity {
	e, _ := Lookup(eventType)
	return e.Polarity
}

// Sign applies the polarity of eventType to amount: +|amount| for inflows,
// -|amount| for outflows, and amount unchanged otherwise.
func Sign(eventType string, amount decimal.Decimal) decimal.Decimal {
	switch PolarityOf(eventType) {
	case Inflow:
		return amount.Abs()
	case Outflow:
		return amount.Abs().Neg()
	default:
		return amount
	}
}

// Label returns the display label for an event type, falling back to the type itself.
func Label(eventType string) string {
	if e, ok := Lookup(eventType); ok {
		return e.Label
	}
	return eventType
}
