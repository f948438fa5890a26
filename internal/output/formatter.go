package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// Formatter renders a projection report.
type Formatter interface {
	Name() string
	Format(report *domain.ProjectionReport) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc struct {
	ID string
	F  func(report *domain.ProjectionReport) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(report *domain.ProjectionReport) ([]byte, error) {
	return f.F(report)
}

var formatters = map[string]Formatter{}

var aliases = map[string]string{
	"table":   "console",
	"summary": "console",
	"verbose": "monthly",
	"detail":  "monthly",
	"yml":     "yaml",
}

func register(f Formatter) {
	formatters[f.Name()] = f
}

func init() {
	register(ConsoleFormatter{})
	register(MonthlyFormatter{})
	register(JSONFormatter{})
	register(YAMLFormatter{})
	register(CSVFormatter{})
}

// GetFormatterByName returns the formatter registered under name or one of its
// aliases, or nil.
func GetFormatterByName(name string) Formatter {
	name = strings.ToLower(strings.TrimSpace(name))
	if target, ok := aliases[name]; ok {
		name = target
	}
	return formatters[name]
}

// AvailableFormatterNames lists registered formatter names, sorted.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists accepted aliases, sorted.
func AvailableFormatAliases() []string {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteFormatted renders report with f and writes it to a timestamped file in
// the working directory, returning the filename.
func WriteFormatted(f Formatter, report *domain.ProjectionReport, ext string) (string, error) {
	filename := fmt.Sprintf("projection_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := WriteFormattedTo(f, report, filename); err != nil {
		return "", err
	}
	return filename, nil
}

// WriteFormattedTo renders report with f and writes it to path.
func WriteFormattedTo(f Formatter, report *domain.ProjectionReport, path string) error {
	data, err := f.Format(report)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// FormatCurrency formats a decimal as dollars with thousands separators, for
// example -$1,234.56.
func FormatCurrency(amount decimal.Decimal) string {
	s := amount.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if amount.Round(2).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// FormatPercentage formats a rate such as 0.035 as 3.50%.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
