package domain

// Event types known to the event catalog and the assumption fallbacks.
const (
	EventTypeSalary         = "salary"
	EventTypeBonus          = "bonus"
	EventTypeRentalIncome   = "rental_income"
	EventTypeOtherIncome    = "other_income"
	EventTypeRent           = "rent"
	EventTypeLivingExpenses = "living_expenses"
	EventTypeChildcare      = "childcare"
	EventTypeTuition        = "tuition"
	EventTypeInsurance      = "insurance"
	EventTypeHealthcare     = "healthcare"
	EventTypeTravel         = "travel"
	EventTypePurchase       = "purchase"
	EventTypeWedding        = "wedding"
	EventTypeJobLoss        = "job_loss"
	EventTypeCustom         = "custom"
)
