package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/finsim/internal/breakeven"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func breakevenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breakeven [input-file]",
		Short: "Find the starting cash, spending level or purchase delay that meets a goal",
		Long: `Search one parameter of a scenario for the point where a goal is just met.

Targets: initial_cash, spending_scale, purchase_delay, all
Goals:   no_shortfall, low_risk, target_net_worth

Examples:
  finsim breakeven household.yaml --scenario buy --target initial_cash
  finsim breakeven household.yaml --scenario buy --target purchase_delay --goal low_risk
  finsim breakeven household.yaml --scenario rent --target all --goal target_net_worth --target-net-worth 100000
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputFile := args[0]
			scenarioName, _ := cmd.Flags().GetString("scenario")
			target, _ := cmd.Flags().GetString("target")
			goal, _ := cmd.Flags().GetString("goal")
			format, _ := cmd.Flags().GetString("format")

			constraints, err := breakevenConstraints(cmd)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(inputFile)
			if err != nil {
				return err
			}
			if scenarioName == "" {
				scenarioName = cfg.Scenarios[0].Name
			}
			scenario := cfg.FindScenario(scenarioName)
			if scenario == nil {
				return fmt.Errorf("scenario %s not found in configuration", scenarioName)
			}

			solver := breakeven.NewDefaultSolver(newEngine(cliLogger(cmd), inputFile))
			out := cmd.OutOrStdout()
			format = strings.ToLower(format)
			if format != "table" && format != "console" && format != "json" {
				return fmt.Errorf("unknown output format: %s (valid: table, json)", format)
			}

			if breakeven.OptimizationTarget(target) == breakeven.OptimizeAll {
				result, err := solver.OptimizeAllTargets(cmd.Context(), scenario, breakeven.OptimizationGoal(goal), constraints)
				if err != nil {
					return fmt.Errorf("break-even analysis failed: %w", err)
				}
				if format == "json" {
					text, err := (&breakeven.JSONFormatter{Pretty: true}).FormatMultiDimensional(result)
					if err != nil {
						return fmt.Errorf("failed to format JSON: %w", err)
					}
					fmt.Fprintln(out, text)
					return nil
				}
				fmt.Fprint(out, (&breakeven.TableFormatter{}).FormatMultiDimensional(result))
				return nil
			}

			result, err := solver.Optimize(cmd.Context(), breakeven.OptimizationRequest{
				BaseScenario: scenario,
				Target:       breakeven.OptimizationTarget(target),
				Goal:         breakeven.OptimizationGoal(goal),
				Constraints:  constraints,
			})
			if err != nil {
				return fmt.Errorf("break-even analysis failed: %w", err)
			}
			if format == "json" {
				text, err := (&breakeven.JSONFormatter{Pretty: true}).Format(result)
				if err != nil {
					return fmt.Errorf("failed to format JSON: %w", err)
				}
				fmt.Fprintln(out, text)
				return nil
			}
			fmt.Fprint(out, (&breakeven.TableFormatter{}).Format(result))
			return nil
		},
	}
	cmd.Flags().String("scenario", "", "Scenario to analyze (default: first in file)")
	cmd.Flags().String("target", string(breakeven.OptimizeInitialCash), "Parameter to search (initial_cash, spending_scale, purchase_delay, all)")
	cmd.Flags().String("goal", string(breakeven.GoalNoShortfall), "Goal to meet (no_shortfall, low_risk, target_net_worth)")
	cmd.Flags().String("min-cash-balance", "0", "Cash floor for the no_shortfall goal")
	cmd.Flags().String("target-net-worth", "", "Final net worth for the target_net_worth goal")
	cmd.Flags().String("home", "", "Home to delay for purchase_delay (default: every purchase)")
	cmd.Flags().Int("max-delay", 60, "Longest purchase delay to consider, in months")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	return cmd
}

// breakevenConstraints reads the search bounds from flags.
func breakevenConstraints(cmd *cobra.Command) (breakeven.Constraints, error) {
	constraints := breakeven.DefaultConstraints()

	floorStr, _ := cmd.Flags().GetString("min-cash-balance")
	floor, err := decimal.NewFromString(floorStr)
	if err != nil {
		return constraints, fmt.Errorf("invalid --min-cash-balance %q: %w", floorStr, err)
	}
	constraints.MinCashBalance = floor

	if targetStr, _ := cmd.Flags().GetString("target-net-worth"); targetStr != "" {
		target, err := decimal.NewFromString(targetStr)
		if err != nil {
			return constraints, fmt.Errorf("invalid --target-net-worth %q: %w", targetStr, err)
		}
		constraints.TargetNetWorth = &target
	}

	constraints.Home, _ = cmd.Flags().GetString("home")
	maxDelay, _ := cmd.Flags().GetInt("max-delay")
	constraints.MaxDelayMonths = &maxDelay
	return constraints, nil
}
