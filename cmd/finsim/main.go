package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rgehrsitz/finsim/internal/calculation"
	"github.com/rgehrsitz/finsim/internal/config"
	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/rgehrsitz/finsim/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "finsim %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "finsim",
		Short: "Household financial projection CLI",
		Long: `Project a household's cash, assets, liabilities and net worth month by month
from recurring events and positions (homes, loans, investments, cars), and
summarize liquidity risk.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(runCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(compareCmd())
	root.AddCommand(breakevenCmd())
	root.AddCommand(scheduleCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(versionCmd())
	return root
}

// cliLogger builds the text logger for a command from --log-level.
func cliLogger(cmd *cobra.Command) *logrus.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logging.NewWithWriter(cmd.ErrOrStderr(), level, false)
}

// newEngine returns a projection engine logging through logger.
func newEngine(logger *logrus.Logger, source string) *calculation.ProjectionEngine {
	engine := calculation.NewProjectionEngine()
	engine.SetLogger(logging.ForEngine(logger, logrus.Fields{"source": source}))
	engine.Debug = logger.IsLevelEnabled(logrus.DebugLevel)
	return engine
}

// loadConfig parses and validates a scenario file.
func loadConfig(path string) (*domain.Configuration, error) {
	return config.NewInputParser().LoadFromFile(path)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
