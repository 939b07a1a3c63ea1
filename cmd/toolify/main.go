package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/adrianliechti/toolify/config"

	"github.com/spf13/cobra"
)

var version = "dev"

type options struct {
	config string

	url string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "toolify",
		Short: "Document and image conversion tools",

		Version: version,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.config, "config", "c", os.Getenv("CONFIG_PATH"), "config file path")
	cmd.PersistentFlags().StringVar(&opts.url, "url", os.Getenv("TOOLIFY_URL"), "run actions against a remote server")

	cmd.AddCommand(
		newServeCommand(opts),
		newBackgroundCommand(opts),
		newOCRCommand(opts),
		newParaphraseCommand(opts),
		newConvertCommand(opts),
		newMergeCommand(opts),
		newInspectCommand(),
	)

	return cmd
}

func loadConfig(opts *options, handler func(w *os.File, o *slog.HandlerOptions) slog.Handler) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(opts.config)

	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(handler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	slog.SetDefault(logger)

	return cfg, logger, nil
}

func textHandler(w *os.File, o *slog.HandlerOptions) slog.Handler {
	return slog.NewTextHandler(w, o)
}

func jsonHandler(w *os.File, o *slog.HandlerOptions) slog.Handler {
	return slog.NewJSONHandler(w, o)
}
