// Package cli implements the slatectl command tree.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Genesis string // Path to a genesis yaml; empty uses the built-in accounts.
}

// NewRootCommand creates the root command for the slatectl CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "slatectl",
		Short:         "slatectl - drive slate programs against an in-memory runtime",
		Long:          "slatectl runs the greeting and calculator programs against an in-memory account runtime and prints the resulting record state.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.Verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Genesis, "genesis", "", "path to a genesis yaml file")

	// Add subcommands
	cmd.AddCommand(NewGreetCommand(opts))
	cmd.AddCommand(NewCalcCommand(opts))
	cmd.AddCommand(NewSchemaCommand(opts))

	return cmd
}
