package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const householdYAML = `
assumptions:
  inflation_rate: 0.03
scenarios:
  - name: rent
    description: keep renting
    base_month: "2025-01"
    horizon_months: 24
    initial_cash: 30000
    events:
      - name: pay
        type: salary
        start_month: "2025-01"
        monthly_amount: 6000
      - name: rent
        type: rent
        start_month: "2025-01"
        monthly_amount: 2200
  - name: buy
    description: buy a starter home
    base_month: "2025-01"
    horizon_months: 24
    initial_cash: 30000
    events:
      - name: pay
        type: salary
        start_month: "2025-01"
        monthly_amount: 6000
    positions:
      homes:
        - name: starter
          purchase_price: 300000
          down_payment: 30000
          purchase_month: "2025-03"
          annual_appreciation: 0.03
          mortgage:
            principal: 270000
            annual_rate: 0.06
            term_months: 360
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs the CLI with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "finsim", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("log-level"))
}

func TestRootCommand_Help(t *testing.T) {
	stdout, _, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "finsim")
}

func TestCommandSubcommands(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"run", "validate", "compare", "breakeven", "schedule", "serve", "version"} {
		found, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, found.Name())
	}
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	_, _, err := execute(t, "frobnicate")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "finsim dev")
}

func TestRun_Console(t *testing.T) {
	path := writeFile(t, "household.yaml", householdYAML)

	stdout, _, err := execute(t, "run", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "SCENARIO 1: rent")
	assert.Contains(t, stdout, "SCENARIO 2: buy")
	assert.Contains(t, stdout, "YEAR-END SNAPSHOT")
}

func TestRun_JSONSingleScenario(t *testing.T) {
	path := writeFile(t, "household.yaml", householdYAML)

	stdout, _, err := execute(t, "run", path, "--scenario", "rent", "--format", "json")
	require.NoError(t, err)

	var report struct {
		Source    string `json:"source"`
		Scenarios []struct {
			Name   string `json:"name"`
			Result struct {
				CashBalance []string `json:"cashBalance"`
			} `json:"result"`
		} `json:"scenarios"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, path, report.Source)
	require.Len(t, report.Scenarios, 1)
	assert.Equal(t, "rent", report.Scenarios[0].Name)
	// 30000 + (6000 - 2200)
	assert.Equal(t, "33800", report.Scenarios[0].Result.CashBalance[0])
}

func TestRun_OutputFile(t *testing.T) {
	path := writeFile(t, "household.yaml", householdYAML)
	out := filepath.Join(t.TempDir(), "projection.csv")

	stdout, _, err := execute(t, "run", path, "--format", "csv", "--output", out)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 1+2*24)
}

func TestRun_Errors(t *testing.T) {
	path := writeFile(t, "household.yaml", householdYAML)

	_, _, err := execute(t, "run", path, "--scenario", "lease")
	assert.ErrorContains(t, err, "scenario lease not found")

	_, _, err = execute(t, "run", path, "--format", "pdf")
	assert.ErrorContains(t, err, `unknown output format "pdf"`)

	_, _, err = execute(t, "run", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read file")
}

func TestRun_DebugLogging(t *testing.T) {
	path := writeFile(t, "household.yaml", householdYAML)

	_, stderr, err := execute(t, "run", path, "--scenario", "buy", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "component=engine")
	assert.Contains(t, stderr, "level=debug")
}

func TestValidate(t *testing.T) {
	path := writeFile(t, "household.yaml", householdYAML)

	stdout, _, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "is valid (2 scenarios)")
}

func TestValidate_Invalid(t *testing.T) {
	path := writeFile(t, "bad.yaml", `
scenarios:
  - name: broken
    base_month: "2025-01"
    horizon_months: 0
`)

	_, stderr, err := execute(t, "validate", path)
	assert.ErrorContains(t, err, "is invalid")
	assert.Contains(t, stderr, "scenarios[0].horizon_months")
}

func TestCompare(t *testing.T) {
	path := writeFile(t, "household.yaml", householdYAML)

	stdout, _, err := execute(t, "compare", path, "--base", "rent")
	require.NoError(t, err)
	assert.Contains(t, stdout, "SCENARIO COMPARISON")
	assert.Contains(t, stdout, "rent (base)")
	assert.Contains(t, stdout, "buy")

	stdout, _, err = execute(t, "compare", path, "--base", "rent", "--with", "buy", "--format", "csv")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(stdout), "\n"), 3)

	_, _, err = execute(t, "compare", path)
	assert.ErrorContains(t, err, "--base flag is required")

	_, _, err = execute(t, "compare", path, "--base", "rent", "--format", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestCompare_Templates(t *testing.T) {
	path := writeFile(t, "household.yaml", householdYAML)

	stdout, _, err := execute(t, "compare", "--list-templates")
	require.NoError(t, err)
	assert.Contains(t, stdout, "delay_purchase_12mo")
	assert.Contains(t, stdout, "Home Purchase:")

	stdout, _, err = execute(t, "compare", path, "--base", "buy", "--template", "delay_purchase_6mo,down_payment_20pct", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, stdout, "buy_delay_purchase_6mo")
	assert.Contains(t, stdout, "buy_down_payment_20pct")
	assert.Len(t, strings.Split(strings.TrimSpace(stdout), "\n"), 4)

	_, _, err = execute(t, "compare", path, "--base", "rent", "--template", "delay_purchase_6mo")
	assert.ErrorContains(t, err, "failed to apply template delay_purchase_6mo")

	_, _, err = execute(t, "compare", "--base", "rent")
	assert.ErrorContains(t, err, "input file required")
}

func TestBreakeven(t *testing.T) {
	path := writeFile(t, "household.yaml", householdYAML)

	stdout, _, err := execute(t, "breakeven", path, "--scenario", "buy")
	require.NoError(t, err)
	assert.Contains(t, stdout, "BREAK-EVEN ANALYSIS")
	assert.Contains(t, stdout, "Optimization Target: initial_cash")
	assert.Contains(t, stdout, "Initial Cash:")

	stdout, _, err = execute(t, "breakeven", path, "--scenario", "buy", "--target", "all", "--format", "json")
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &decoded))
	assert.Equal(t, "buy", decoded["scenario"])
	// buy has no outflow events, so only initial_cash and purchase_delay apply
	assert.Len(t, decoded["results"], 2)

	stdout, _, err = execute(t, "breakeven", path, "--target", "spending_scale", "--goal", "target_net_worth", "--target-net-worth", "20000")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Scenario:            rent")
}

func TestBreakeven_Errors(t *testing.T) {
	path := writeFile(t, "household.yaml", householdYAML)

	_, _, err := execute(t, "breakeven", path, "--scenario", "castle")
	assert.ErrorContains(t, err, "scenario castle not found")

	_, _, err = execute(t, "breakeven", path, "--min-cash-balance", "lots")
	assert.ErrorContains(t, err, "invalid --min-cash-balance")

	_, _, err = execute(t, "breakeven", path, "--goal", "target_net_worth")
	assert.ErrorContains(t, err, "requires a target net worth")

	_, _, err = execute(t, "breakeven", path, "--format", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestSchedule(t *testing.T) {
	stdout, _, err := execute(t, "schedule", "--principal", "12000", "--rate", "0", "--term", "12")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Monthly Payment: $1,000.00")

	stdout, _, err = execute(t, "schedule", "--principal", "100000", "--rate", "0.06", "--term", "360", "--format", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Len(t, lines, 361)
	assert.True(t, strings.HasPrefix(lines[1], "1,599.55,500.00,99.55,"), lines[1])
}

func TestSchedule_Invalid(t *testing.T) {
	_, _, err := execute(t, "schedule", "--principal", "abc")
	assert.ErrorContains(t, err, "invalid --principal")

	_, _, err = execute(t, "schedule", "--principal", "0")
	assert.ErrorContains(t, err, "--principal must be greater than 0")

	_, _, err = execute(t, "schedule", "--principal", "1000", "--rate", "-0.01")
	assert.ErrorContains(t, err, "--rate must not be negative")

	_, _, err = execute(t, "schedule", "--principal", "1000", "--term", "0")
	assert.ErrorContains(t, err, "--term must be greater than 0")
}
