// Package cli implements the casematch command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// RootOptions holds the global flags shared by every subcommand.
type RootOptions struct {
	ConfigPath   string
	OutputFormat string
}

// NewRootCommand builds the root command and mounts the subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "casematch",
		Short:   "Takweol legal case analysis from the command line",
		Long:    "casematch classifies a legal consultation transcript into a case category\nand derives win rate, cost band, matching experts and related figures.\nIt can also run the Takweol analysis API server.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path")
	pf.StringVarP(&opts.OutputFormat, "output", "o", "text", "output format (text, json)")

	cmd.AddCommand(
		newAnalyzeCommand(opts),
		newCatalogCommand(opts),
		newServeCommand(opts),
	)
	return cmd
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}
