package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/finsim/internal/calculation"
	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/rgehrsitz/finsim/internal/transform"
)

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.ProjectionEngine
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.ProjectionEngine) *CompareEngine {
	if calcEngine == nil {
		calcEngine = calculation.NewProjectionEngine()
	}
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
		TemplateRegistry:  transform.CreateBuiltInTemplates(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseScenarioName string   // Name of the base scenario to compare against
	Alternatives     []string // Scenarios to compare; empty means every other scenario unless Templates is set
	Templates        []string // Templates applied to the base scenario, each compared as an alternative
	ConfigPath       string
}

// Compare runs the base scenario and each alternative from a normalized
// configuration and returns their metrics and deltas.
func (ce *CompareEngine) Compare(
	ctx context.Context,
	config *domain.Configuration,
	options CompareOptions,
) (*ComparisonSet, error) {

	baseScenario := config.FindScenario(options.BaseScenarioName)
	if baseScenario == nil {
		return nil, fmt.Errorf("base scenario %s not found in configuration", options.BaseScenarioName)
	}

	baseResult, err := ce.run(baseScenario)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}

	altNames := options.Alternatives
	if len(altNames) == 0 && len(options.Templates) == 0 {
		for _, name := range config.ScenarioNames() {
			if name != baseScenario.Name {
				altNames = append(altNames, name)
			}
		}
	}

	alternatives := make([]ComparisonResult, 0, len(altNames))
	for _, altName := range altNames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		scenario := config.FindScenario(altName)
		if scenario == nil {
			return nil, fmt.Errorf("alternative scenario %s not found", altName)
		}
		altResult, err := ce.run(scenario)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", altName, err)
		}
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(altResult, baseResult))
	}

	for _, templateName := range options.Templates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		template, ok := ce.TemplateRegistry.Get(templateName)
		if !ok {
			return nil, fmt.Errorf("template %s not found", templateName)
		}

		modifiedScenario, err := transform.ApplyTemplate(baseScenario, template)
		if err != nil {
			return nil, fmt.Errorf("failed to apply template %s: %w", templateName, err)
		}
		modifiedScenario.Name = baseScenario.Name + "_" + template.Name
		modifiedScenario.Description = template.Description

		altResult, err := ce.run(modifiedScenario)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", modifiedScenario.Name, err)
		}
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(altResult, baseResult))
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseScenario.Name,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
		ConfigPath:         options.ConfigPath,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

func (ce *CompareEngine) run(s *domain.Scenario) (ComparisonResult, error) {
	result, err := ce.CalcEngine.ComputeProjection(&s.ProjectionInput)
	if err != nil {
		return ComparisonResult{}, err
	}
	return ce.MetricsCalculator.CalculateMetrics(s.Name, s.Description, result), nil
}
