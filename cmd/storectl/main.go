// Command storectl is the operator CLI for the recommendation engine.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"auroramart/internal/config"

	"github.com/spf13/cobra"
)

// options are resolved once per invocation in PersistentPreRunE
type options struct {
	sqlitePath   string
	logLevel     string
	artifactDirs []string
	jsonOutput   bool

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "storectl",
		Short:         "Operate the storefront recommendation engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.sqlitePath, "sqlite", "", "use a SQLite database at this path instead of the configured driver")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.StringSliceVar(&opts.artifactDirs, "artifact-dir", nil, "directory searched for model artifacts (repeatable)")
	flags.BoolVar(&opts.jsonOutput, "json", false, "print machine-readable JSON")

	root.AddCommand(traceCmd(opts))
	root.AddCommand(seedCmd(opts))
	root.AddCommand(inspectCmd(opts))

	return root
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (o *options) init(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", o.logLevel, err)
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(o.logger)

	o.cfg = config.Load()
	if o.sqlitePath != "" {
		o.cfg.Database.Driver = config.DriverSQLite
		o.cfg.Database.SQLitePath = o.sqlitePath
	}
	if len(o.artifactDirs) > 0 {
		o.cfg.Recommendation.ArtifactDirs = o.artifactDirs
	}
	return nil
}
