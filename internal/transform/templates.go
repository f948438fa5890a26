package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// TemplateRegistry manages built-in scenario templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []ScenarioTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates creates a template registry with common household what-ifs
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	// Home purchase templates
	registry.Register(Template{
		Name:        "delay_purchase_6mo",
		Description: "Buy the home 6 months later and keep renting until then",
		Transforms: []ScenarioTransform{
			&DelayPurchase{Months: 6, ExtendRent: true},
		},
	})

	registry.Register(Template{
		Name:        "delay_purchase_12mo",
		Description: "Buy the home a year later and keep renting until then",
		Transforms: []ScenarioTransform{
			&DelayPurchase{Months: 12, ExtendRent: true},
		},
	})

	registry.Register(Template{
		Name:        "down_payment_10pct",
		Description: "Put 10% down and finance the rest",
		Transforms: []ScenarioTransform{
			&SetDownPayment{Fraction: decimal.NewFromFloat(0.10)},
		},
	})

	registry.Register(Template{
		Name:        "down_payment_20pct",
		Description: "Put 20% down and finance the rest",
		Transforms: []ScenarioTransform{
			&SetDownPayment{Fraction: decimal.NewFromFloat(0.20)},
		},
	})

	// Cashflow templates
	registry.Register(Template{
		Name:        "spend_less_10pct",
		Description: "Cut every outflow event by 10%",
		Transforms: []ScenarioTransform{
			&ScaleEvents{Match: MatchOutflows, Factor: decimal.NewFromFloat(0.90)},
		},
	})

	registry.Register(Template{
		Name:        "income_shock_20pct",
		Description: "Lose 20% of every inflow event",
		Transforms: []ScenarioTransform{
			&ScaleEvents{Match: MatchInflows, Factor: decimal.NewFromFloat(0.80)},
		},
	})

	registry.Register(Template{
		Name:        "income_shock_50pct",
		Description: "Lose half of every inflow event",
		Transforms: []ScenarioTransform{
			&ScaleEvents{Match: MatchInflows, Factor: decimal.NewFromFloat(0.50)},
		},
	})

	// Combination templates
	registry.Register(Template{
		Name:        "cautious_buyer",
		Description: "Buy a year later with 20% down",
		Transforms: []ScenarioTransform{
			&DelayPurchase{Months: 12, ExtendRent: true},
			&SetDownPayment{Fraction: decimal.NewFromFloat(0.20)},
		},
	})

	registry.Register(Template{
		Name:        "lean_year",
		Description: "Lose 20% of income and cut spending by 10%",
		Transforms: []ScenarioTransform{
			&ScaleEvents{Match: MatchInflows, Factor: decimal.NewFromFloat(0.80)},
			&ScaleEvents{Match: MatchOutflows, Factor: decimal.NewFromFloat(0.90)},
		},
	})

	return registry
}

// ApplyTemplate applies all transforms in a template to a base scenario
func ApplyTemplate(base *domain.Scenario, template Template) (*domain.Scenario, error) {
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateStr string) []string {
	if templateStr == "" {
		return []string{}
	}

	parts := strings.Split(templateStr, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")

	categories := map[string][]Template{}
	for _, name := range registry.List() {
		template := registry.templates[name]
		category := "Combination Strategies"
		switch {
		case strings.HasPrefix(name, "delay_purchase_"), strings.HasPrefix(name, "down_payment_"):
			category = "Home Purchase"
		case strings.HasPrefix(name, "spend_"), strings.HasPrefix(name, "income_"):
			category = "Cashflow"
		}
		categories[category] = append(categories[category], template)
	}

	for _, category := range []string{"Home Purchase", "Cashflow", "Combination Strategies"} {
		templates := categories[category]
		if len(templates) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("%s:\n", category))
		for _, t := range templates {
			sb.WriteString(fmt.Sprintf("  %-24s %s\n", t.Name, t.Description))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Usage:\n")
	sb.WriteString("  finsim compare household.yaml --base buy --template delay_purchase_12mo\n")
	sb.WriteString("  finsim compare household.yaml --base buy --template cautious_buyer,lean_year\n")

	return sb.String()
}
