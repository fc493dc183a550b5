package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:          "pipeline",
		Short:        "Generate illustrated articles from topic insights",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "config.yaml", "path to config file")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")

	root.AddCommand(
		newGenerateCmd(flags),
		newBatchCmd(flags),
		newInsightsCmd(flags),
		newPurgeCmd(flags),
		newJanitorCmd(flags),
	)

	return root
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}
