package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rgehrsitz/finsim/internal/calculation"
	"github.com/rgehrsitz/finsim/internal/catalog"
	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/rgehrsitz/finsim/pkg/dateutil"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a configuration from a YAML or JSON file, then normalizes
// and validates it. Files ending in .json are read with camelCase keys, anything
// else as YAML with snake_case keys.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	format := "yaml"
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		format = "json"
	}
	return ip.Parse(data, format)
}

// Parse decodes, normalizes and validates a configuration.
func (ip *InputParser) Parse(data []byte, format string) (*domain.Configuration, error) {
	var config domain.Configuration
	switch format {
	case "json":
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := ip.NormalizeConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &config, nil
}

// NormalizeConfiguration resolves every scenario into engine-ready input: global
// assumptions are merged under each scenario's own, then each input is
// normalized with NormalizeInput.
func (ip *InputParser) NormalizeConfiguration(config *domain.Configuration) error {
	var issues issueList
	for i := range config.Scenarios {
		s := &config.Scenarios[i]
		s.Assumptions = s.Assumptions.Merge(config.Assumptions)
		issues = append(issues, normalizeInput(&s.ProjectionInput, fmt.Sprintf("scenarios[%d]", i))...)
	}
	return issues.wrap(dateutil.ErrInvalidMonth)
}

// NormalizeInput rewrites a projection input into the canonical shape the
// engine expects:
//   - month strings in YYYY-M form become YYYY-MM
//   - the legacy singular positions.home becomes positions.homes[0]
//   - event amounts are signed through the event catalog
//   - event growth rates left unset are resolved from the assumptions
func (ip *InputParser) NormalizeInput(in *domain.ProjectionInput) error {
	return normalizeInput(in, "").wrap(dateutil.ErrInvalidMonth)
}

func normalizeInput(in *domain.ProjectionInput, prefix string) issueList {
	var issues issueList
	field := func(name string) string { return joinField(prefix, name) }

	normalizeMonth(&issues, field("base_month"), &in.BaseMonth)

	for i := range in.Events {
		e := &in.Events[i]
		ef := field(fmt.Sprintf("events[%d]", i))
		normalizeMonth(&issues, ef+".start_month", &e.StartMonth)
		normalizeMonth(&issues, ef+".end_month", &e.EndMonth)

		e.MonthlyAmount = catalog.Sign(e.Type, e.MonthlyAmount)
		e.OneTimeAmount = catalog.Sign(e.Type, e.OneTimeAmount)
		*e = calculation.ApplyEventAssumptionFallbacks(*e, in.Assumptions)
	}

	p := in.Positions
	if p == nil {
		return issues
	}
	p.Homes = p.AllHomes()
	p.Home = nil

	for i := range p.Homes {
		h := &p.Homes[i]
		hf := field(fmt.Sprintf("positions.homes[%d]", i))
		normalizeMonth(&issues, hf+".purchase_month", &h.PurchaseMonth)
		if h.Existing != nil {
			normalizeMonth(&issues, hf+".existing.as_of_month", &h.Existing.AsOfMonth)
		}
		if h.Rental != nil {
			normalizeMonth(&issues, hf+".rental.rent_start_month", &h.Rental.RentStartMonth)
		}
	}
	for i := range p.Loans {
		normalizeMonth(&issues, field(fmt.Sprintf("positions.loans[%d].start_month", i)), &p.Loans[i].StartMonth)
	}
	for i := range p.Investments {
		inv := &p.Investments[i]
		invf := field(fmt.Sprintf("positions.investments[%d]", i))
		normalizeMonth(&issues, invf+".start_month", &inv.StartMonth)
		normalizeMonth(&issues, invf+".contribution_end_month", &inv.ContributionEndMonth)
	}
	for i := range p.Cars {
		normalizeMonth(&issues, field(fmt.Sprintf("positions.cars[%d].purchase_month", i)), &p.Cars[i].PurchaseMonth)
	}
	return issues
}

func joinField(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
