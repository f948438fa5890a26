package transform

import (
	"errors"
	"strings"
	"testing"

	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// createTestScenario returns a normalized rent-then-buy scenario.
func createTestScenario() *domain.Scenario {
	return &domain.Scenario{
		Name: "buy",
		ProjectionInput: domain.ProjectionInput{
			BaseMonth:     "2025-01",
			HorizonMonths: 36,
			InitialCash:   decimal.NewFromInt(90000),
			Events: []domain.Event{
				{Name: "pay", Type: domain.EventTypeSalary, StartMonth: "2025-01", MonthlyAmount: decimal.NewFromInt(7000)},
				{Name: "rent", Type: domain.EventTypeRent, StartMonth: "2025-01", EndMonth: "2025-05", MonthlyAmount: decimal.NewFromInt(-2000)},
				{Name: "living", Type: domain.EventTypeLivingExpenses, StartMonth: "2025-01", MonthlyAmount: decimal.NewFromInt(-3000)},
				{Name: "wedding", Type: domain.EventTypeWedding, StartMonth: "2025-09", OneTimeAmount: decimal.NewFromInt(-20000)},
			},
			Positions: &domain.Positions{
				Homes: []domain.HomePosition{
					{
						Name:          "starter",
						PurchasePrice: decimal.NewFromInt(400000),
						DownPayment:   decimal.NewFromInt(40000),
						PurchaseMonth: "2025-06",
						Mortgage: &domain.MortgageTerms{
							Principal:  decimal.NewFromInt(360000),
							AnnualRate: decimal.NewFromFloat(0.06),
							TermMonths: 360,
						},
					},
					{
						Name:     "cabin",
						Existing: &domain.ExistingHome{AsOfMonth: "2024-01", MarketValue: decimal.NewFromInt(150000)},
					},
				},
			},
		},
	}
}

func TestApplyTransforms_NilScenario(t *testing.T) {
	_, err := ApplyTransforms(nil, []ScenarioTransform{&DelayPurchase{Months: 6}})
	if err == nil {
		t.Error("Expected error for nil scenario, got nil")
	}
}

func TestApplyTransforms_EmptyTransforms(t *testing.T) {
	base := createTestScenario()

	result, err := ApplyTransforms(base, nil)
	if err != nil {
		t.Fatalf("Expected no error for empty transforms, got: %v", err)
	}
	if result == base {
		t.Error("Expected a copy, got the base scenario itself")
	}
	if result.Name != base.Name {
		t.Errorf("Expected name %s, got %s", base.Name, result.Name)
	}
}

func TestApplyTransforms_NilTransform(t *testing.T) {
	_, err := ApplyTransforms(createTestScenario(), []ScenarioTransform{nil})
	if err == nil || !strings.Contains(err.Error(), "index 0 is nil") {
		t.Errorf("Expected nil transform error, got: %v", err)
	}
}

func TestApplyTransforms_Chain(t *testing.T) {
	base := createTestScenario()

	result, err := ApplyTransforms(base, []ScenarioTransform{
		&DelayPurchase{Months: 12, ExtendRent: true},
		&SetDownPayment{Fraction: decimal.NewFromFloat(0.2)},
		&SetInitialCash{Amount: decimal.NewFromInt(120000)},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	home := result.Positions.Homes[0]
	if home.PurchaseMonth != "2026-06" {
		t.Errorf("Expected purchase month 2026-06, got %s", home.PurchaseMonth)
	}
	if !home.DownPayment.Equal(decimal.NewFromInt(80000)) {
		t.Errorf("Expected down payment 80000, got %s", home.DownPayment)
	}
	if !result.InitialCash.Equal(decimal.NewFromInt(120000)) {
		t.Errorf("Expected initial cash 120000, got %s", result.InitialCash)
	}

	// base untouched
	if base.Positions.Homes[0].PurchaseMonth != "2025-06" {
		t.Errorf("Base scenario was modified: %s", base.Positions.Homes[0].PurchaseMonth)
	}
	if !base.InitialCash.Equal(decimal.NewFromInt(90000)) {
		t.Errorf("Base initial cash was modified: %s", base.InitialCash)
	}
}

func TestApplyTransforms_ValidationFailure(t *testing.T) {
	_, err := ApplyTransforms(createTestScenario(), []ScenarioTransform{
		&DelayPurchase{Months: -1},
	})
	if err == nil {
		t.Fatal("Expected validation error, got nil")
	}
	var te *TransformError
	if !errors.As(err, &te) {
		t.Fatalf("Expected TransformError in chain, got %T", err)
	}
	if te.Operation != "validate" {
		t.Errorf("Expected operation validate, got %s", te.Operation)
	}
}

func TestDelayPurchase(t *testing.T) {
	base := createTestScenario()

	result, err := (&DelayPurchase{Home: "starter", Months: 6, ExtendRent: true}).Apply(base)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := result.Positions.Homes[0].PurchaseMonth; got != "2025-12" {
		t.Errorf("Expected purchase month 2025-12, got %s", got)
	}
	if got := result.Events[1].EndMonth; got != "2025-11" {
		t.Errorf("Expected rent to run until 2025-11, got %s", got)
	}
	if result.Positions.Homes[1].PurchaseMonth != "" {
		t.Error("Existing home should not gain a purchase month")
	}
}

func TestDelayPurchase_WithoutRentExtension(t *testing.T) {
	result, err := (&DelayPurchase{Months: 6}).Apply(createTestScenario())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := result.Events[1].EndMonth; got != "2025-05" {
		t.Errorf("Expected rent end month unchanged, got %s", got)
	}
}

func TestDelayPurchase_ShiftsRentalStart(t *testing.T) {
	base := createTestScenario()
	base.Positions.Homes[0].Rental = &domain.Rental{RentMonthly: decimal.NewFromInt(800), RentStartMonth: "2025-08"}

	result, err := (&DelayPurchase{Months: 3}).Apply(base)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := result.Positions.Homes[0].Rental.RentStartMonth; got != "2025-11" {
		t.Errorf("Expected rent start 2025-11, got %s", got)
	}
}

func TestDelayPurchase_Validate(t *testing.T) {
	base := createTestScenario()

	tests := []struct {
		name      string
		transform *DelayPurchase
		scenario  *domain.Scenario
		wantErr   bool
	}{
		{"valid", &DelayPurchase{Months: 6}, base, false},
		{"named home", &DelayPurchase{Home: "starter", Months: 6}, base, false},
		{"negative months", &DelayPurchase{Months: -3}, base, true},
		{"existing home", &DelayPurchase{Home: "cabin", Months: 6}, base, true},
		{"unknown home", &DelayPurchase{Home: "castle", Months: 6}, base, true},
		{"no positions", &DelayPurchase{Months: 6}, &domain.Scenario{Name: "rent"}, true},
		{"nil scenario", &DelayPurchase{Months: 6}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transform.Validate(tt.scenario)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSetDownPayment(t *testing.T) {
	result, err := (&SetDownPayment{Fraction: decimal.NewFromFloat(0.25)}).Apply(createTestScenario())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	home := result.Positions.Homes[0]
	if !home.DownPayment.Equal(decimal.NewFromInt(100000)) {
		t.Errorf("Expected down payment 100000, got %s", home.DownPayment)
	}
	if !home.Mortgage.Principal.Equal(decimal.NewFromInt(300000)) {
		t.Errorf("Expected principal 300000, got %s", home.Mortgage.Principal)
	}

	if err := (&SetDownPayment{Fraction: decimal.NewFromFloat(1.5)}).Validate(createTestScenario()); err == nil {
		t.Error("Expected error for fraction above 1")
	}
}

func TestScaleEvents(t *testing.T) {
	base := createTestScenario()

	result, err := (&ScaleEvents{Match: MatchOutflows, Factor: decimal.NewFromFloat(0.5)}).Apply(base)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.Events[0].MonthlyAmount.Equal(decimal.NewFromInt(7000)) {
		t.Errorf("Inflow should be unchanged, got %s", result.Events[0].MonthlyAmount)
	}
	if !result.Events[1].MonthlyAmount.Equal(decimal.NewFromInt(-1000)) {
		t.Errorf("Expected rent -1000, got %s", result.Events[1].MonthlyAmount)
	}
	if !result.Events[3].OneTimeAmount.Equal(decimal.NewFromInt(-10000)) {
		t.Errorf("Expected wedding -10000, got %s", result.Events[3].OneTimeAmount)
	}

	result, err = (&ScaleEvents{Match: domain.EventTypeSalary, Factor: decimal.NewFromFloat(1.1)}).Apply(base)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.Events[0].MonthlyAmount.Equal(decimal.NewFromInt(7700)) {
		t.Errorf("Expected salary 7700, got %s", result.Events[0].MonthlyAmount)
	}
	if !result.Events[2].MonthlyAmount.Equal(decimal.NewFromInt(-3000)) {
		t.Errorf("Living expenses should be unchanged, got %s", result.Events[2].MonthlyAmount)
	}
}

func TestScaleEvents_Validate(t *testing.T) {
	base := createTestScenario()
	if err := (&ScaleEvents{Match: MatchAll, Factor: decimal.NewFromInt(2)}).Validate(base); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if err := (&ScaleEvents{Match: domain.EventTypeTuition, Factor: decimal.NewFromInt(2)}).Validate(base); err == nil {
		t.Error("Expected error when no events match")
	}
	if err := (&ScaleEvents{Match: MatchAll, Factor: decimal.NewFromInt(-1)}).Validate(base); err == nil {
		t.Error("Expected error for negative factor")
	}
	if err := (&ScaleEvents{Factor: decimal.NewFromInt(1)}).Validate(base); err == nil {
		t.Error("Expected error for empty match")
	}
}

func TestScaleEvents_Description(t *testing.T) {
	cut := &ScaleEvents{Match: MatchOutflows, Factor: decimal.NewFromFloat(0.9)}
	if got := cut.Description(); got != "Cut outflows by 10%" {
		t.Errorf("Unexpected description: %s", got)
	}
	raise := &ScaleEvents{Match: domain.EventTypeSalary, Factor: decimal.NewFromFloat(1.25)}
	if got := raise.Description(); got != "Raise salary by 25%" {
		t.Errorf("Unexpected description: %s", got)
	}
}

func TestDisableEvent(t *testing.T) {
	base := createTestScenario()

	result, err := ApplyTransforms(base, []ScenarioTransform{&DisableEvent{Event: "wedding"}})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Events[3].IsEnabled() {
		t.Error("Expected wedding to be disabled")
	}
	if !base.Events[3].IsEnabled() {
		t.Error("Base event was modified")
	}

	if _, err := ApplyTransforms(base, []ScenarioTransform{&DisableEvent{Event: "lottery"}}); err == nil {
		t.Error("Expected error for unknown event")
	}
}

func TestExtendHorizon(t *testing.T) {
	base := createTestScenario()

	result, err := ApplyTransforms(base, []ScenarioTransform{&ExtendHorizon{Months: 24}})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.HorizonMonths != 60 {
		t.Errorf("Expected horizon 60, got %d", result.HorizonMonths)
	}

	if err := (&ExtendHorizon{Months: 0}).Validate(base); err == nil {
		t.Error("Expected error for zero months")
	}
	if err := (&ExtendHorizon{Months: 1200}).Validate(base); err == nil {
		t.Error("Expected error past the horizon limit")
	}
}

func TestTransformError(t *testing.T) {
	cause := errors.New("boom")
	err := NewTransformError("delay_purchase", "apply", "invalid month", cause)
	if !strings.Contains(err.Error(), "transform delay_purchase (apply): invalid month: boom") {
		t.Errorf("Unexpected message: %s", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("Expected error to unwrap to its cause")
	}

	bare := NewTransformError("disable_event", "validate", "missing", nil)
	if bare.Error() != "transform disable_event (validate): missing" {
		t.Errorf("Unexpected message: %s", bare.Error())
	}
}
