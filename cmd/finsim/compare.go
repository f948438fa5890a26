package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/finsim/internal/compare"
	"github.com/rgehrsitz/finsim/internal/transform"
	"github.com/spf13/cobra"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [input-file]",
		Short: "Compare scenarios against a base scenario",
		Long: `Compare a base scenario against alternatives from the same file, or
against what-if templates applied to the base scenario.

Examples:
  finsim compare household.yaml --base rent
  finsim compare household.yaml --base rent --with buy,buy_later --format csv
  finsim compare household.yaml --base buy --template delay_purchase_12mo,lean_year
  finsim compare --list-templates
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if listTemplates, _ := cmd.Flags().GetBool("list-templates"); listTemplates {
				fmt.Fprint(cmd.OutOrStdout(), transform.GetTemplateHelp(transform.CreateBuiltInTemplates()))
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("input file required for comparison (use --list-templates to see available templates)")
			}

			inputFile := args[0]
			baseScenarioName, _ := cmd.Flags().GetString("base")
			with, _ := cmd.Flags().GetStringSlice("with")
			templatesStr, _ := cmd.Flags().GetString("template")
			outputFormat, _ := cmd.Flags().GetString("format")

			if baseScenarioName == "" {
				return fmt.Errorf("--base flag is required to specify the base scenario name")
			}

			cfg, err := loadConfig(inputFile)
			if err != nil {
				return err
			}

			compareEngine := compare.NewCompareEngine(newEngine(cliLogger(cmd), inputFile))
			comparisonSet, err := compareEngine.Compare(cmd.Context(), cfg, compare.CompareOptions{
				BaseScenarioName: baseScenarioName,
				Alternatives:     with,
				Templates:        transform.ParseTemplateList(templatesStr),
				ConfigPath:       inputFile,
			})
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}

			out := cmd.OutOrStdout()
			switch strings.ToLower(outputFormat) {
			case "csv":
				formatter := &compare.CSVFormatter{}
				text, err := formatter.Format(comparisonSet)
				if err != nil {
					return fmt.Errorf("failed to format CSV: %w", err)
				}
				fmt.Fprint(out, text)

			case "json":
				formatter := &compare.JSONFormatter{Pretty: true}
				text, err := formatter.Format(comparisonSet)
				if err != nil {
					return fmt.Errorf("failed to format JSON: %w", err)
				}
				fmt.Fprintln(out, text)

			case "table", "console", "":
				formatter := &compare.TableFormatter{}
				fmt.Fprint(out, formatter.Format(comparisonSet))

			default:
				return fmt.Errorf("unknown output format: %s (valid: table, csv, json)", outputFormat)
			}
			return nil
		},
	}
	cmd.Flags().String("base", "", "Base scenario name to compare against (required)")
	cmd.Flags().StringSlice("with", nil, "Comma-separated scenarios to compare (default: all others)")
	cmd.Flags().String("template", "", "Comma-separated templates to apply to the base scenario")
	cmd.Flags().Bool("list-templates", false, "List all available scenario templates")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	return cmd
}
