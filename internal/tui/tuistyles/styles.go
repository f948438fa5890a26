// Package tuistyles holds the lipgloss palette shared by the TUI and the
// console report. It has no dependencies on either so both can import it.
package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/finsim/internal/domain"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("#7D56F4")
	ColorSecondary = lipgloss.Color("#3C3C3C")
	ColorAccent    = lipgloss.Color("#F25D94")
	ColorSuccess   = lipgloss.Color("#04B575")
	ColorWarning   = lipgloss.Color("#FFB454")
	ColorDanger    = lipgloss.Color("#FF5F56")
	ColorInfo      = lipgloss.Color("#5FAFFF")

	ColorForeground = lipgloss.Color("#FAFAFA")
	ColorMuted      = lipgloss.Color("#8A8A8A")
	ColorBorder     = lipgloss.Color("#585858")
)

// Base styles
var (
	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorForeground).
			Background(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	StatusKeyStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	TabStyle       = lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1)
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(ColorForeground).
			Background(ColorSecondary).
			Bold(true).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginRight(1)

	MetricLabelStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	MetricValueStyle = lipgloss.NewStyle().Bold(true)

	MetricPositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorInfo).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(ColorBorder)

	TableCellStyle      = lipgloss.NewStyle()
	TableHighlightStyle = lipgloss.NewStyle().Foreground(ColorDanger)

	HelpKeyStyle  = lipgloss.NewStyle().Foreground(ColorAccent)
	HelpDescStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	ErrorStyle    = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)
)

var riskColors = map[domain.RiskLevel]lipgloss.Color{
	domain.RiskLow:    ColorSuccess,
	domain.RiskMedium: ColorWarning,
	domain.RiskHigh:   ColorDanger,
}

// RiskBadgeStyle returns the badge style for a risk level.
func RiskBadgeStyle(level domain.RiskLevel) lipgloss.Style {
	color, ok := riskColors[level]
	if !ok {
		color = ColorMuted
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#000000")).
		Background(color).
		Padding(0, 1)
}

// RiskBadge renders a risk level as a colored badge.
func RiskBadge(level domain.RiskLevel) string {
	return RiskBadgeStyle(level).Render(string(level))
}

// SignedStyle picks the positive or negative metric style by sign.
func SignedStyle(negative bool) lipgloss.Style {
	if negative {
		return MetricNegativeStyle
	}
	return MetricPositiveStyle
}

// MetricTrendStyle colors a trend by direction.
func MetricTrendStyle(isPositive bool) lipgloss.Style {
	return SignedStyle(!isPositive)
}

// TrendIndicator returns an arrow for a trend direction.
func TrendIndicator(isPositive bool) string {
	if isPositive {
		return "▲"
	}
	return "▼"
}
