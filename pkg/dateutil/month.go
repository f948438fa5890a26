// Package dateutil provides calendar-month arithmetic on YYYY-MM strings.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidMonth is returned for month strings that are not YYYY-MM (or YYYY-M).
var ErrInvalidMonth = errors.New("invalid month")

// Month is a calendar month. The zero value is not a valid month.
type Month struct {
	Year  int
	Month int // 1-12
}

// ParseMonth parses a strict YYYY-MM string.
func ParseMonth(s string) (Month, error) {
	if len(s) != 7 || s[4] != '-' {
		return Month{}, fmt.Errorf("%w: %q (expected YYYY-MM)", ErrInvalidMonth, s)
	}
	return parseParts(s, s[:4], s[5:])
}

// NormalizeMonth accepts YYYY-M or YYYY-MM and returns the canonical YYYY-MM form.
func NormalizeMonth(s string) (string, error) {
	s = strings.TrimSpace(s)
	year, month, ok := strings.Cut(s, "-")
	if !ok || len(year) != 4 || len(month) < 1 || len(month) > 2 {
		return "", fmt.Errorf("%w: %q (expected YYYY-MM)", ErrInvalidMonth, s)
	}
	m, err := parseParts(s, year, month)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}

func parseParts(raw, yearPart, monthPart string) (Month, error) {
	y, err := strconv.Atoi(yearPart)
	if err != nil || y < 0 {
		return Month{}, fmt.Errorf("%w: %q has a bad year", ErrInvalidMonth, raw)
	}
	for _, r := range monthPart {
		if r < '0' || r > '9' {
			return Month{}, fmt.Errorf("%w: %q has a bad month", ErrInvalidMonth, raw)
		}
	}
	m, err := strconv.Atoi(monthPart)
	if err != nil || m < 1 || m > 12 {
		return Month{}, fmt.Errorf("%w: %q month must be 01-12", ErrInvalidMonth, raw)
	}
	return Month{Year: y, Month: m}, nil
}

// String formats the month as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// ordinal counts months since year 0 so differences are exact integers.
func (m Month) ordinal() int {
	return m.Year*12 + (m.Month - 1)
}

func fromOrdinal(n int) Month {
	y := n / 12
	r := n % 12
	if r < 0 {
		r += 12
		y--
	}
	return Month{Year: y, Month: r + 1}
}

// Add returns the month n months after m (n may be negative).
func (m Month) Add(n int) Month {
	return fromOrdinal(m.ordinal() + n)
}

// Sub returns the number of months from other to m.
func (m Month) Sub(other Month) int {
	return m.ordinal() - other.ordinal()
}

// MonthIndex returns the offset of target relative to base; positive when target is later.
func MonthIndex(base, target string) (int, error) {
	b, err := ParseMonth(base)
	if err != nil {
		return 0, err
	}
	t, err := ParseMonth(target)
	if err != nil {
		return 0, err
	}
	return t.Sub(b), nil
}

// AddMonths shifts a YYYY-MM string by n months.
func AddMonths(month string, n int) (string, error) {
	m, err := ParseMonth(month)
	if err != nil {
		return "", err
	}
	return m.Add(n).String(), nil
}

// BuildMonthRange returns count consecutive months starting at base.
func BuildMonthRange(base string, count int) ([]string, error) {
	b, err := ParseMonth(base)
	if err != nil {
		return nil, err
	}
	if count < 0 {
		count = 0
	}
	months := make([]string, count)
	for i := range months {
		months[i] = b.Add(i).String()
	}
	return months, nil
}
