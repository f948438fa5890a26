// Package tui is an interactive viewer for scenario projections.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/finsim/internal/calculation"
	"github.com/rgehrsitz/finsim/internal/compare"
	"github.com/rgehrsitz/finsim/internal/config"
	"github.com/rgehrsitz/finsim/internal/domain"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Configuration and data
	configPath string
	config     *domain.Configuration
	report     *domain.ProjectionReport
	comparison *compare.ComparisonSet

	// Index into report.Scenarios
	selected int

	keys   keyMap
	help   help.Model
	months viewport.Model

	logger calculation.Logger

	// Error state
	err error

	// Loading state
	loading        bool
	loadingMessage string
}

// NewModel creates a new application model. A nil logger discards engine logs.
func NewModel(configPath string, logger calculation.Logger) Model {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	m := Model{
		currentScene:   SceneSummary,
		configPath:     configPath,
		keys:           defaultKeyMap(),
		help:           help.New(),
		months:         viewport.New(76, 12),
		logger:         logger,
		width:          80,
		height:         24,
		loading:        true,
		loadingMessage: "Loading configuration...",
	}
	return m
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadConfigCmd(m.configPath)
}

// SelectedScenario returns the scenario currently shown, or nil.
func (m Model) SelectedScenario() *domain.ScenarioResult {
	if m.report == nil || m.selected < 0 || m.selected >= len(m.report.Scenarios) {
		return nil
	}
	return &m.report.Scenarios[m.selected]
}

// loadConfigCmd returns a command that loads the configuration file
func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ConfigLoadedMsg{Config: cfg}
	}
}

// runProjectionsCmd projects every scenario in cfg.
func runProjectionsCmd(cfg *domain.Configuration, path string, logger calculation.Logger) tea.Cmd {
	return func() tea.Msg {
		engine := calculation.NewProjectionEngine()
		engine.SetLogger(logger)

		report := &domain.ProjectionReport{Source: path}
		for i := range cfg.Scenarios {
			s := &cfg.Scenarios[i]
			result, err := engine.ComputeProjection(&s.ProjectionInput)
			if err != nil {
				return ProjectionsReadyMsg{Err: err}
			}
			report.Scenarios = append(report.Scenarios, domain.ScenarioResult{
				Name:        s.Name,
				Description: s.Description,
				Result:      result,
			})
		}

		msg := ProjectionsReadyMsg{Report: report}
		if len(cfg.Scenarios) > 1 {
			ce := compare.NewCompareEngine(engine)
			set, err := ce.Compare(context.Background(), cfg, compare.CompareOptions{
				BaseScenarioName: cfg.Scenarios[0].Name,
				ConfigPath:       path,
			})
			if err != nil {
				return ProjectionsReadyMsg{Err: err}
			}
			msg.Comparison = set
		}
		return msg
	}
}
