package calculation

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func boolPtr(b bool) *bool {
	return &b
}

func assertDecimalEqual(t *testing.T, want, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, want.Equal(got), "want %s, got %s %s", want, got, fmt.Sprint(msgAndArgs...))
}

func assertDecimalNear(t *testing.T, want float64, got decimal.Decimal, tolerance float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want, got.InexactFloat64(), tolerance, msgAndArgs...)
}

func assertAllZero(t *testing.T, series []decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	for i, v := range series {
		assert.True(t, v.IsZero(), "index %d = %s %s", i, v, fmt.Sprint(msgAndArgs...))
	}
}

// TestLogger records messages for assertions.
type TestLogger struct {
	messages []string
}

func (tl *TestLogger) Debugf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "DEBUG: "+fmt.Sprintf(format, args...))
}

func (tl *TestLogger) Infof(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "INFO: "+fmt.Sprintf(format, args...))
}

func (tl *TestLogger) Warnf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "WARN: "+fmt.Sprintf(format, args...))
}

func (tl *TestLogger) Errorf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "ERROR: "+fmt.Sprintf(format, args...))
}
