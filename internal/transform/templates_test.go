package transform

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTemplateRegistry_RegisterAndGet(t *testing.T) {
	registry := NewTemplateRegistry()

	template := Template{
		Name:        "test_template",
		Description: "A test template",
		Transforms:  []ScenarioTransform{},
	}
	registry.Register(template)

	retrieved, ok := registry.Get("test_template")
	if !ok {
		t.Fatal("Expected to find template")
	}
	if retrieved.Name != template.Name {
		t.Errorf("Expected name %s, got %s", template.Name, retrieved.Name)
	}

	if _, ok = registry.Get("TEST_TEMPLATE"); !ok {
		t.Fatal("Expected case-insensitive lookup to work")
	}
	if _, ok = registry.Get("nonexistent"); ok {
		t.Error("Expected not to find nonexistent template")
	}
}

func TestTemplateRegistry_List(t *testing.T) {
	registry := NewTemplateRegistry()
	registry.Register(Template{Name: "template2", Description: "Second"})
	registry.Register(Template{Name: "template1", Description: "First"})

	names := registry.List()
	if len(names) != 2 || names[0] != "template1" {
		t.Errorf("Expected sorted names, got %v", names)
	}
}

func TestCreateBuiltInTemplates(t *testing.T) {
	registry := CreateBuiltInTemplates()

	for _, name := range []string{
		"delay_purchase_6mo",
		"delay_purchase_12mo",
		"down_payment_10pct",
		"down_payment_20pct",
		"spend_less_10pct",
		"income_shock_20pct",
		"income_shock_50pct",
		"cautious_buyer",
		"lean_year",
	} {
		template, ok := registry.Get(name)
		if !ok {
			t.Errorf("Expected template %s to exist", name)
			continue
		}
		if len(template.Transforms) == 0 {
			t.Errorf("Template %s has no transforms", name)
		}
		if template.Description == "" {
			t.Errorf("Template %s has no description", name)
		}
	}
}

func TestApplyTemplate(t *testing.T) {
	registry := CreateBuiltInTemplates()
	base := createTestScenario()

	template, _ := registry.Get("cautious_buyer")
	result, err := ApplyTemplate(base, template)
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
	if result.Events[1].EndMonth != "2026-05" {
		t.Errorf("Expected rent until 2026-05, got %s", result.Events[1].EndMonth)
	}

	template, _ = registry.Get("lean_year")
	result, err = ApplyTemplate(base, template)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.Events[0].MonthlyAmount.Equal(decimal.NewFromInt(5600)) {
		t.Errorf("Expected salary 5600, got %s", result.Events[0].MonthlyAmount)
	}
	if !result.Events[2].MonthlyAmount.Equal(decimal.NewFromInt(-2700)) {
		t.Errorf("Expected living expenses -2700, got %s", result.Events[2].MonthlyAmount)
	}
}

func TestApplyTemplate_NoPurchase(t *testing.T) {
	base := createTestScenario()
	base.Positions = nil

	template, _ := CreateBuiltInTemplates().Get("delay_purchase_6mo")
	if _, err := ApplyTemplate(base, template); err == nil {
		t.Error("Expected error applying a purchase template to a renter")
	}
}

func TestParseTemplateList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{}},
		{"delay_purchase_6mo", []string{"delay_purchase_6mo"}},
		{" cautious_buyer , lean_year ,", []string{"cautious_buyer", "lean_year"}},
	}
	for _, tt := range tests {
		got := ParseTemplateList(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("ParseTemplateList(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParseTemplateList(%q)[%d] = %s, want %s", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestGetTemplateHelp(t *testing.T) {
	help := GetTemplateHelp(CreateBuiltInTemplates())
	for _, want := range []string{"Home Purchase:", "Cashflow:", "Combination Strategies:", "delay_purchase_12mo", "Usage:"} {
		if !strings.Contains(help, want) {
			t.Errorf("Expected help to contain %q", want)
		}
	}
	if got := GetTemplateHelp(NewTemplateRegistry()); got != "No templates registered" {
		t.Errorf("Unexpected empty help: %s", got)
	}
}
