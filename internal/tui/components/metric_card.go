package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/finsim/internal/output"
	"github.com/rgehrsitz/finsim/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// MetricCard is one KPI of a projection: a label, a rendered value and an
// optional note such as the month of the lowest balance.
type MetricCard struct {
	Label       string
	Value       string
	Description string
	Width       int
	// Negative renders the value in the shortfall color.
	Negative bool
	Delta    *Delta
}

// Delta is a change against the base scenario.
type Delta struct {
	Better bool
	Text   string
}

// NewMetricCard returns a card with the default width.
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{Label: label, Value: value, Width: 30}
}

// MoneyCard returns a card for a currency amount, flagged when below zero.
func MoneyCard(label string, amount decimal.Decimal) *MetricCard {
	card := NewMetricCard(label, output.FormatCurrency(amount))
	card.Negative = amount.IsNegative()
	return card
}

// WithTrend attaches a delta; better picks the arrow and color.
func (m *MetricCard) WithTrend(better bool, text string) *MetricCard {
	m.Delta = &Delta{Better: better, Text: text}
	return m
}

func (m *MetricCard) WithDescription(desc string) *MetricCard {
	m.Description = desc
	return m
}

func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

// Render draws the card as a bordered box, one part per line.
func (m *MetricCard) Render() string {
	lines := []string{tuistyles.MetricLabelStyle.Render(m.Label), m.value()}
	if m.Delta != nil {
		lines = append(lines, m.delta())
	}
	if m.Description != "" {
		lines = append(lines, tuistyles.SubtitleStyle.Render(m.Description))
	}
	return tuistyles.CardStyle.Width(m.Width).Render(strings.Join(lines, "\n"))
}

// Line draws the card on a single unbordered line for narrow terminals.
func (m *MetricCard) Line() string {
	parts := []string{tuistyles.MetricLabelStyle.Render(m.Label + ":"), m.value()}
	if m.Description != "" {
		parts = append(parts, tuistyles.SubtitleStyle.Render("("+m.Description+")"))
	}
	if m.Delta != nil {
		parts = append(parts, m.delta())
	}
	return strings.Join(parts, " ")
}

func (m *MetricCard) value() string {
	if m.Negative {
		return tuistyles.MetricNegativeStyle.Render(m.Value)
	}
	return tuistyles.MetricValueStyle.Render(m.Value)
}

func (m *MetricCard) delta() string {
	style := tuistyles.MetricTrendStyle(m.Delta.Better)
	return style.Render(tuistyles.TrendIndicator(m.Delta.Better) + " " + m.Delta.Text)
}

// MetricGrid lays cards out left to right, starting a new row every columns cards.
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	columns = max(columns, 1)

	var rows []string
	for start := 0; start < len(cards); start += columns {
		end := min(start+columns, len(cards))
		rendered := make([]string, 0, end-start)
		for _, c := range cards[start:end] {
			rendered = append(rendered, c.Render())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// MetricList stacks cards one per line.
func MetricList(cards []*MetricCard) string {
	lines := make([]string, 0, len(cards))
	for _, c := range cards {
		lines = append(lines, c.Line())
	}
	return strings.Join(lines, "\n")
}
