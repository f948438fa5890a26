package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/finsim/internal/compare"
	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/rgehrsitz/finsim/internal/output"
	"github.com/rgehrsitz/finsim/internal/tui/components"
	"github.com/rgehrsitz/finsim/internal/tui/tuistyles"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderApp(BorderStyle.Render("⠋ " + m.loadingMessage))
	}
	if m.err != nil {
		return m.renderError()
	}

	var content string
	switch m.currentScene {
	case SceneSummary:
		content = m.renderSummary()
	case SceneMonths:
		content = m.renderMonths()
	case SceneCompare:
		content = m.renderCompare()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}
	return m.renderApp(content)
}

// renderApp wraps content with title bar, scenario tabs and status bar
func (m Model) renderApp(content string) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		m.renderTabs(),
		content,
		StatusBarStyle.Render(m.help.View(m.keys)),
	)
}

func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("finsim - household projection")
	crumb := m.currentScene.String()
	if m.configPath != "" {
		crumb += " / " + m.configPath
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, " ", SubtitleStyle.Render(crumb))
}

// renderTabs lists scenario names with the selected one highlighted.
func (m Model) renderTabs() string {
	if m.report == nil || len(m.report.Scenarios) == 0 {
		return ""
	}
	tabs := make([]string, 0, len(m.report.Scenarios))
	for i, sc := range m.report.Scenarios {
		if i == m.selected {
			tabs = append(tabs, ActiveTabStyle.Render(sc.Name))
			continue
		}
		tabs = append(tabs, TabStyle.Render(sc.Name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderError() string {
	hint := "Press q to quit."
	if m.report != nil {
		hint = "Press any key to continue."
	}
	return m.renderApp(ErrorStyle.Render(fmt.Sprintf("Error: %v\n\n%s", m.err, hint)))
}

func (m Model) renderSummary() string {
	sc := m.SelectedScenario()
	if sc == nil || sc.Result == nil {
		return BorderStyle.Render("No scenarios in configuration.")
	}
	r := sc.Result

	cards := []*components.MetricCard{
		components.NewMetricCard("Risk", RiskBadge(r.RiskLevel)),
		components.NewMetricCard("Runway", fmt.Sprintf("%d months", r.RunwayMonths)),
		components.MoneyCard("Lowest Balance", r.LowestMonthlyBalance.Value).
			WithDescription(r.LowestMonthlyBalance.Month),
		components.MoneyCard("Net Worth (Year 5)", r.NetWorthYear5),
		components.MoneyCard("Final Net Worth", r.FinalNetWorth()),
		components.MoneyCard("Final Cash", r.FinalCashBalance()),
	}
	if m.comparison != nil && m.selected > 0 && m.selected-1 < len(m.comparison.AlternativeResults) {
		diff := m.comparison.AlternativeResults[m.selected-1].FinalNetWorthDiff
		cards[4].WithTrend(!diff.IsNegative(), output.FormatCurrency(diff)+" vs "+m.comparison.BaseScenarioName)
	}
	header := sc.Name
	if sc.Description != "" {
		header += " - " + sc.Description
	}

	// bordered cards need at least two 20-column boxes
	if m.width > 0 && m.width < compactWidth {
		return lipgloss.JoinVertical(lipgloss.Left,
			SubtitleStyle.Render(header),
			components.MetricList(cards),
		)
	}

	columns := 3
	if m.width < 100 {
		columns = 2
	}
	width := max(20, (m.width-4)/columns-2)
	for _, c := range cards {
		c.WithWidth(width)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		SubtitleStyle.Render(header),
		components.MetricGrid(cards, columns),
	)
}

func (m Model) renderMonths() string {
	if m.SelectedScenario() == nil {
		return BorderStyle.Render("No scenarios in configuration.")
	}
	return m.months.View()
}

func (m Model) renderCompare() string {
	if m.comparison == nil {
		return BorderStyle.Render("Add a second scenario to compare against the first.")
	}
	tf := &compare.TableFormatter{}
	return tf.Format(m.comparison)
}

func (m Model) renderHelp() string {
	return BorderStyle.Render(strings.Join([]string{
		"tab / shift+tab   cycle scenarios",
		"1 or s            KPI summary",
		"2 or m            month-by-month table (up/down, pgup/pgdn scroll)",
		"3 or c            compare every scenario against the first",
		"?                 toggle this help",
		"q / ctrl+c        quit",
	}, "\n"))
}

// compactWidth is the terminal width below which KPIs render one per line.
const compactWidth = 60

// renderMonthTable renders one row per projected month.
func renderMonthTable(r *domain.ProjectionResult) string {
	var sb strings.Builder
	header := fmt.Sprintf("%-8s %14s %14s %14s %14s %14s",
		"Month", "Net Flow", "Cash", "Assets", "Liabilities", "Net Worth")
	sb.WriteString(TableHeaderStyle.Render(header))
	sb.WriteString("\n")
	for i, month := range r.Months {
		line := fmt.Sprintf("%-8s %14s %14s %14s %14s %14s",
			month,
			output.FormatCurrency(r.NetCashflow[i]),
			output.FormatCurrency(r.CashBalance[i]),
			output.FormatCurrency(r.Assets.Total[i]),
			output.FormatCurrency(r.Liabilities.Total[i]),
			output.FormatCurrency(r.NetWorth[i]),
		)
		if i == r.LowestMonthlyBalance.Index {
			line = tuistyles.TableHighlightStyle.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
