package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fernandezvara/passcheck/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the evaluation HTTP API",
		Long: `Serve the evaluation API:

  POST /api/v1/evaluate   {"password": "..."}
  GET  /health/live
  GET  /metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(a.cfg.Server, a.evaluator, a.log).Run(ctx)
		},
	}

	cmd.Flags().String("addr", ":8080", "Listen address")
	cmd.Flags().Float64("rate-limit", 20, "Requests per second across all clients")
	cmd.Flags().Int("rate-burst", 40, "Rate limiter burst size")
	cmd.Flags().Int64("max-body", 4096, "Maximum request body size in bytes")
	return cmd
}
