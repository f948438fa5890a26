package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/finsim/internal/calculation"
	"github.com/rgehrsitz/finsim/internal/logging"
	"github.com/rgehrsitz/finsim/internal/tui"
)

func newRootCmd() *cobra.Command {
	var logFile, logLevel string

	cmd := &cobra.Command{
		Use:          "finsim-tui <config-file>",
		Short:        "Explore projection scenarios interactively",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], logFile, logLevel)
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write engine logs to this file")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level when --log-file is set")
	return cmd
}

func run(configPath, logFile, logLevel string) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return fmt.Errorf("config file not found: %s", configPath)
	}

	// The alternate screen owns stdout, so logs only go to a file.
	var engineLogger calculation.Logger
	if logFile != "" {
		f, err := tea.LogToFile(logFile, "")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logger := logging.NewWithWriter(f, logLevel, false)
		engineLogger = logging.ForEngine(logger, logrus.Fields{"source": configPath})
	}

	p := tea.NewProgram(tui.NewModel(configPath, engineLogger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
