package main

import (
	"errors"
	"fmt"

	"github.com/rgehrsitz/finsim/internal/config"
	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputFile := args[0]

			cfg, err := loadConfig(inputFile)
			if err != nil {
				var verr *config.ValidationError
				if !errors.As(err, &verr) {
					return err
				}
				out := cmd.ErrOrStderr()
				fmt.Fprintf(out, "%s has %d problem(s):\n", inputFile, len(verr.Issues))
				for _, is := range verr.Issues {
					fmt.Fprintf(out, "  %s: %s\n", is.Field, is.Message)
				}
				return fmt.Errorf("configuration file %s is invalid", inputFile)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file %s is valid (%d scenarios)\n", inputFile, len(cfg.Scenarios))
			return nil
		},
	}
}
