package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rgehrsitz/finsim/internal/config"
	"github.com/rgehrsitz/finsim/internal/logging"
	"github.com/rgehrsitz/finsim/internal/server"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the projection API over HTTP",
		Long: `Serve the projection API. Settings come from FINSIM_ADDR, LOG_LEVEL,
FINSIM_READ_TIMEOUT, FINSIM_WRITE_TIMEOUT and FINSIM_MAX_BODY_BYTES, optionally
loaded from an env file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			cfg, err := config.LoadServerConfig(envFile)
			if err != nil {
				return err
			}
			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
			}

			logger := logging.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel, true)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(cfg, logger).ListenAndServe(ctx)
		},
	}
	cmd.Flags().String("addr", "", "Listen address (overrides FINSIM_ADDR)")
	cmd.Flags().String("env-file", ".env", "Env file to load before reading the environment")
	return cmd
}
