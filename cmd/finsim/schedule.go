package main

import (
	"fmt"

	"github.com/rgehrsitz/finsim/internal/calculation"
	"github.com/rgehrsitz/finsim/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func scheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print a level-payment amortization schedule",
		Long: `Print the month-by-month amortization of a fixed-rate loan.

Examples:
  finsim schedule --principal 400000 --rate 0.065 --term 360
  finsim schedule --principal 25000 --rate 0.07 --term 60 --format csv
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			principalStr, _ := cmd.Flags().GetString("principal")
			rateStr, _ := cmd.Flags().GetString("rate")
			term, _ := cmd.Flags().GetInt("term")
			format, _ := cmd.Flags().GetString("format")

			principal, err := decimal.NewFromString(principalStr)
			if err != nil {
				return fmt.Errorf("invalid --principal %q: %w", principalStr, err)
			}
			rate, err := decimal.NewFromString(rateStr)
			if err != nil {
				return fmt.Errorf("invalid --rate %q: %w", rateStr, err)
			}
			if !principal.IsPositive() {
				return fmt.Errorf("--principal must be greater than 0")
			}
			if rate.IsNegative() {
				return fmt.Errorf("--rate must not be negative")
			}
			if term <= 0 {
				return fmt.Errorf("--term must be greater than 0")
			}

			rows := calculation.BuildAmortizationTable(principal, rate, term)
			data, err := output.FormatSchedule(rows, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().String("principal", "0", "Loan principal")
	cmd.Flags().String("rate", "0", "Annual interest rate as a decimal (0.065 for 6.5%)")
	cmd.Flags().Int("term", 360, "Term in months")
	cmd.Flags().StringP("format", "f", "console", "Output format (console, csv, json)")
	return cmd
}
