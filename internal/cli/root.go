// Package cli implements the fseof command line.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fseof/internal/config"
)

// Version is set at build time.
var Version = "0.1.0"

// RootOptions holds global flags and the state built from them.
type RootOptions struct {
	LogLevel  string
	LogFile   string
	StorePath string

	Logger  *slog.Logger
	cleanup func() error
}

// NewRootCommand creates the root command of the fseof CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "fseof",
		Short: "Flux scanning based on enforced objective flux",
		Long: `fseof finds over-expression targets in metabolic models.

It enforces a product reaction step by step, from its flux at optimal growth
towards its maximum, and flags every reaction whose flux follows the enforced
flux monotonically.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.cleanup == nil {
				return nil
			}
			return opts.cleanup()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error) [FSEOF_LOG_LEVEL]")
	cmd.PersistentFlags().StringVar(&opts.LogFile, "log-file", "", "also write JSON logs to this file [FSEOF_LOG_FILE]")
	cmd.PersistentFlags().StringVar(&opts.StorePath, "store", "", "SQLite run database [FSEOF_STORE]")

	cmd.AddCommand(NewModelsCommand(opts))
	cmd.AddCommand(NewScanCommand(opts))
	cmd.AddCommand(NewRunsCommand(opts))

	return cmd
}

// setup merges the environment under the flags and builds the logger.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	env := config.Load()
	level := env.LogLevel
	if o.LogLevel != "" {
		level = config.ParseLogLevel(o.LogLevel)
	}
	if o.LogFile == "" {
		o.LogFile = env.LogFile
	}
	if o.StorePath == "" {
		o.StorePath = env.StorePath
	}
	o.Logger, o.cleanup = config.SetupLogger(o.LogFile, level)
	o.Logger.Debug("fseof: start", "command", cmd.CommandPath(), "store", o.StorePath)

	return nil
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		return fmt.Errorf("fseof: %w", err)
	}
	return nil
}
