package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// chromeHeight is the rows taken by the title, tabs, KPI line and status bar.
const chromeHeight = 9

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.months.Width = max(20, msg.Width-4)
		m.months.Height = max(3, msg.Height-chromeHeight)
		m.refreshMonths()
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case ConfigLoadedMsg:
		m.config = msg.Config
		m.loadingMessage = "Running projections..."
		return m, runProjectionsCmd(msg.Config, m.configPath, m.logger)

	case ProjectionsReadyMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.report = msg.Report
		m.comparison = msg.Comparison
		m.selected = 0
		m.refreshMonths()
		return m, nil
	}

	if m.currentScene == SceneMonths {
		var cmd tea.Cmd
		m.months, cmd = m.months.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// Any other key dismisses an error once data is loaded
	if m.err != nil && m.report != nil {
		m.err = nil
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		m.cycle(1)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.cycle(-1)
		return m, nil
	case key.Matches(msg, m.keys.Summary):
		m.navigate(SceneSummary)
		return m, nil
	case key.Matches(msg, m.keys.Months):
		m.navigate(SceneMonths)
		return m, nil
	case key.Matches(msg, m.keys.Compare):
		m.navigate(SceneCompare)
		return m, nil
	case key.Matches(msg, m.keys.Help):
		if m.currentScene == SceneHelp {
			m.navigate(m.previousScene)
		} else {
			m.navigate(SceneHelp)
		}
		m.help.ShowAll = m.currentScene == SceneHelp
		return m, nil
	}

	// Let the month table scroll
	if m.currentScene == SceneMonths {
		var cmd tea.Cmd
		m.months, cmd = m.months.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) navigate(s Scene) {
	if s == m.currentScene {
		return
	}
	m.previousScene = m.currentScene
	m.currentScene = s
}

// cycle moves the selection by delta, wrapping around.
func (m *Model) cycle(delta int) {
	if m.report == nil || len(m.report.Scenarios) == 0 {
		return
	}
	n := len(m.report.Scenarios)
	m.selected = ((m.selected+delta)%n + n) % n
	m.refreshMonths()
}

func (m *Model) refreshMonths() {
	sc := m.SelectedScenario()
	if sc == nil || sc.Result == nil {
		m.months.SetContent("")
		return
	}
	m.months.SetContent(renderMonthTable(sc.Result))
	m.months.GotoTop()
}
