package main

import (
	"context"
	"log/slog"

	"github.com/adrianliechti/toolify/pkg/otel"
	"github.com/adrianliechti/toolify/server"

	"github.com/spf13/cobra"
)

func newServeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP and MCP endpoints",

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, logger, err := loadConfig(opts, jsonHandler)

			if err != nil {
				return err
			}

			defer cfg.Close()

			shutdown, err := otel.Setup(ctx, "toolify", version)

			if err != nil {
				return err
			}

			defer shutdown(context.WithoutCancel(ctx))

			logger = slog.New(otel.LogHandler("toolify", logger.Handler()))
			slog.SetDefault(logger)

			service, err := cfg.Service(logger)

			if err != nil {
				return err
			}

			s, err := server.New(cfg, service, logger, version)

			if err != nil {
				return err
			}

			return s.ListenAndServe(ctx)
		},
	}
}
