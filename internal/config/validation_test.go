package config

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *domain.ProjectionInput {
	return &domain.ProjectionInput{
		BaseMonth:     "2025-01",
		HorizonMonths: 24,
		InitialCash:   decimal.NewFromInt(10000),
		Events: []domain.Event{
			{Name: "pay", Type: domain.EventTypeSalary, StartMonth: "2025-01", MonthlyAmount: decimal.NewFromInt(5000)},
		},
	}
}

func issueFields(err error) []string {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return nil
	}
	fields := make([]string, 0, len(verr.Issues))
	for _, is := range verr.Issues {
		fields = append(fields, is.Field)
	}
	return fields
}

func TestValidateInput_Valid(t *testing.T) {
	assert.NoError(t, NewInputParser().ValidateInput(validInput()))
}

func TestValidateInput_Nil(t *testing.T) {
	err := NewInputParser().ValidateInput(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "projection input is required")
}

func TestValidateInput_StructRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *domain.ProjectionInput)
		field  string
	}{
		{"missing base month", func(in *domain.ProjectionInput) { in.BaseMonth = "" }, "base_month"},
		{"malformed base month", func(in *domain.ProjectionInput) { in.BaseMonth = "2025/01" }, "base_month"},
		{"zero horizon", func(in *domain.ProjectionInput) { in.HorizonMonths = 0 }, "horizon_months"},
		{"horizon too long", func(in *domain.ProjectionInput) { in.HorizonMonths = 5000 }, "horizon_months"},
		{"event without start", func(in *domain.ProjectionInput) { in.Events[0].StartMonth = "" }, "events[0].start_month"},
		{"growth at -100%", func(in *domain.ProjectionInput) {
			g := decimal.NewFromInt(-1)
			in.Events[0].AnnualGrowthPct = &g
		}, "events[0].annual_growth_pct"},
		{"negative purchase price", func(in *domain.ProjectionInput) {
			in.Positions = &domain.Positions{Homes: []domain.HomePosition{{PurchasePrice: decimal.NewFromInt(-5)}}}
		}, "positions.homes[0].purchase_price"},
		{"loan without start", func(in *domain.ProjectionInput) {
			in.Positions = &domain.Positions{Loans: []domain.LoanPosition{{Principal: decimal.NewFromInt(100), TermMonths: 12}}}
		}, "positions.loans[0].start_month"},
		{"existing home without as-of month", func(in *domain.ProjectionInput) {
			in.Positions = &domain.Positions{Homes: []domain.HomePosition{{Existing: &domain.ExistingHome{MarketValue: decimal.NewFromInt(1)}}}}
		}, "positions.homes[0].existing.as_of_month"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)
			err := NewInputParser().ValidateInput(in)
			require.Error(t, err)
			assert.Contains(t, issueFields(err), tt.field)

			var verrs validator.ValidationErrors
			assert.True(t, errors.As(err, &verrs), "wraps the validator errors")
		})
	}
}

func TestValidateInput_SemanticRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *domain.ProjectionInput)
		field  string
	}{
		{"end before start", func(in *domain.ProjectionInput) { in.Events[0].EndMonth = "2024-12" }, "events[0].end_month"},
		{"unknown event type", func(in *domain.ProjectionInput) { in.Events[0].Type = "living" }, "events[0].type"},
		{"purchase without month", func(in *domain.ProjectionInput) {
			in.Positions = &domain.Positions{Homes: []domain.HomePosition{{PurchasePrice: decimal.NewFromInt(300000)}}}
		}, "positions.homes[0].purchase_month"},
		{"down payment above price", func(in *domain.ProjectionInput) {
			in.Positions = &domain.Positions{Homes: []domain.HomePosition{{
				PurchasePrice: decimal.NewFromInt(100), DownPayment: decimal.NewFromInt(200), PurchaseMonth: "2025-01",
			}}}
		}, "positions.homes[0].down_payment"},
		{"existing home with purchase fields", func(in *domain.ProjectionInput) {
			in.Positions = &domain.Positions{Homes: []domain.HomePosition{{
				PurchasePrice: decimal.NewFromInt(100),
				Existing:      &domain.ExistingHome{AsOfMonth: "2025-01"},
			}}}
		}, "positions.homes[0]"},
		{"loan without term", func(in *domain.ProjectionInput) {
			in.Positions = &domain.Positions{Loans: []domain.LoanPosition{{Principal: decimal.NewFromInt(100), StartMonth: "2025-01"}}}
		}, "positions.loans[0].term_months"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)
			err := NewInputParser().ValidateInput(in)
			require.Error(t, err)
			assert.Contains(t, issueFields(err), tt.field)
		})
	}
}

func TestValidateInput_EventTypes(t *testing.T) {
	in := validInput()
	in.Events[0].Type = ""
	assert.NoError(t, NewInputParser().ValidateInput(in))

	in.Events[0].Type = domain.EventTypeLivingExpenses
	assert.NoError(t, NewInputParser().ValidateInput(in))

	in.Events[0].Type = "groceries"
	err := NewInputParser().ValidateInput(in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown event type "groceries"`)
	assert.Contains(t, err.Error(), domain.EventTypeLivingExpenses)
}

func TestValidateConfiguration(t *testing.T) {
	parser := NewInputParser()

	err := parser.ValidateConfiguration(&domain.Configuration{})
	require.Error(t, err)
	assert.Contains(t, issueFields(err), "scenarios")

	config := &domain.Configuration{Scenarios: []domain.Scenario{
		{Name: "a", ProjectionInput: *validInput()},
		{Name: "a", ProjectionInput: *validInput()},
		{ProjectionInput: *validInput()},
	}}
	config.Scenarios[1].HorizonMonths = 0

	err = parser.ValidateConfiguration(config)
	require.Error(t, err)
	fields := issueFields(err)
	assert.Contains(t, fields, "scenarios[1].name")
	assert.Contains(t, fields, "scenarios[1].horizon_months")
	assert.Contains(t, fields, "scenarios[2].name")
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Issues: []FieldIssue{
		{Field: "base_month", Message: "is required"},
		{Message: "something else"},
	}}
	assert.Equal(t, "base_month: is required; something else", err.Error())
	assert.Nil(t, err.Unwrap())
}
