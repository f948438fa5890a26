package tui

import (
	"github.com/rgehrsitz/finsim/internal/compare"
	"github.com/rgehrsitz/finsim/internal/domain"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneSummary Scene = iota
	SceneMonths
	SceneCompare
	SceneHelp
)

func (s Scene) String() string {
	switch s {
	case SceneSummary:
		return "Summary"
	case SceneMonths:
		return "Months"
	case SceneCompare:
		return "Compare"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// Message types for the Bubble Tea update cycle

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ConfigLoadedMsg signals configuration has been loaded
type ConfigLoadedMsg struct {
	Config *domain.Configuration
}

// ProjectionsReadyMsg carries every scenario's projection, plus a comparison
// against the first scenario when there is more than one.
type ProjectionsReadyMsg struct {
	Report     *domain.ProjectionReport
	Comparison *compare.ComparisonSet
	Err        error
}
