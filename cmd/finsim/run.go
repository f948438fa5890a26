package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/rgehrsitz/finsim/internal/output"
	"github.com/spf13/cobra"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [input-file]",
		Short: "Project every scenario in a configuration file",
		Long: `Project scenarios from a YAML or JSON configuration file.

Examples:
  finsim run household.yaml
  finsim run household.yaml --scenario buy --format monthly
  finsim run household.yaml --format csv --output projection.csv
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputFile := args[0]
			names, _ := cmd.Flags().GetStringSlice("scenario")
			format, _ := cmd.Flags().GetString("format")
			outputPath, _ := cmd.Flags().GetString("output")

			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("unknown output format %q (valid: %s; aliases: %s)", format,
					strings.Join(output.AvailableFormatterNames(), ", "),
					strings.Join(output.AvailableFormatAliases(), ", "))
			}

			cfg, err := loadConfig(inputFile)
			if err != nil {
				return err
			}
			scenarios, err := selectScenarios(cfg, names)
			if err != nil {
				return err
			}

			logger := cliLogger(cmd)
			engine := newEngine(logger, inputFile)
			report := &domain.ProjectionReport{Source: inputFile}
			for _, s := range scenarios {
				result, err := engine.ComputeProjection(&s.ProjectionInput)
				if err != nil {
					return fmt.Errorf("scenario %s: %w", s.Name, err)
				}
				report.Scenarios = append(report.Scenarios, domain.ScenarioResult{
					Name:        s.Name,
					Description: s.Description,
					Result:      result,
				})
			}

			if outputPath != "" {
				if err := output.WriteFormattedTo(f, report, outputPath); err != nil {
					return err
				}
				logger.Infof("wrote %s report to %s", f.Name(), outputPath)
				return nil
			}

			data, err := f.Format(report)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringSlice("scenario", nil, "Scenario name(s) to run (default: all)")
	cmd.Flags().StringP("format", "f", "console", "Output format (console, monthly, json, yaml, csv)")
	cmd.Flags().StringP("output", "o", "", "Write the report to this file instead of stdout")
	return cmd
}

// selectScenarios returns the named scenarios in the order given, or all of
// them when names is empty.
func selectScenarios(cfg *domain.Configuration, names []string) ([]*domain.Scenario, error) {
	if len(names) == 0 {
		all := make([]*domain.Scenario, 0, len(cfg.Scenarios))
		for i := range cfg.Scenarios {
			all = append(all, &cfg.Scenarios[i])
		}
		return all, nil
	}
	selected := make([]*domain.Scenario, 0, len(names))
	for _, name := range names {
		s := cfg.FindScenario(strings.TrimSpace(name))
		if s == nil {
			return nil, fmt.Errorf("scenario %s not found (available: %s)", name, strings.Join(cfg.ScenarioNames(), ", "))
		}
		selected = append(selected, s)
	}
	return selected, nil
}
