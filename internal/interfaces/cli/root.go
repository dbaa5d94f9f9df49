// Package cli implements the exitready command line interface: a local,
// offline way to run the same analysis engine the API server exposes.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// rootOptions holds the persistent flags shared by all subcommands.
type rootOptions struct {
	output   string // "json" | "text"
	logLevel string
}

// NewRootCommand builds the exitready root command with all subcommands
// attached.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "exitready",
		Short:         "Exit-readiness and valuation analysis for businesses",
		Long:          "exitready analyzes a business profile and produces readiness scores,\na blended valuation estimate, a risk assessment, and an improvement roadmap.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "json", "output format: json or text")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(newAnalyzeCommand(opts))
	root.AddCommand(newVersionCommand())

	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "exitready %s (commit %s, built %s)\n",
				Version, GitCommit, BuildDate)
		},
	}
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
