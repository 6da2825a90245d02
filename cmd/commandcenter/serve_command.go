package main

import (
	"log"

	"command-center/server"
	"command-center/shared/monitoring"
	"command-center/strategy"

	"github.com/spf13/cobra"
)

func newServeCommand(cmdCtx *commandContext) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scan and strategy pipeline as a JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}

			scanner, err := cmdCtx.newScanner(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			// The strategy side is an optional unlock: without a Gemini
			// key the API still serves scans.
			var engine server.StrategyGenerator
			if builtEngine, err := cmdCtx.newEngine(cmd.Context(), cfg); err != nil {
				log.Printf("Strategy endpoint disabled: %v", err)
			} else {
				engine = builtEngine
			}

			srv := server.New(scanner, engine, monitoring.NewMonitor())
			return srv.Run(cmd.Context(), cfg.Server.Port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Override the configured listen port")

	return cmd
}

var _ server.StrategyGenerator = (*strategy.Engine)(nil)
