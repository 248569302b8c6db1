package main

import (
	"fmt"
	"log/slog"
	"os"

	applog "github.com/nao1215/reportchain/internal/log"
	"github.com/nao1215/reportchain/internal/report"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for reportchain.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reportchain",
		Short: "Compose report output from stackable decorators",
		Long: `reportchain builds a report from a base report (sales or user) wrapped in
decorators that append date filter, sorting and export annotations.

Decorators apply in the order given, innermost first, so the same decorators
in a different order produce different output.

Run without a subcommand to print the default chain:
  SalesReport -> DateFilter -> Sorting -> PdfExport`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs to stderr as JSON")

	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// runRootCmd prints the default chain. It reads no config and no environment.
func runRootCmd(cmd *cobra.Command, _ []string) error {
	r, err := report.DefaultChain().Build()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), r.Generate())
	return err
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// newLogger creates the stderr logger selected by the persistent flags.
func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	asJSON, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		asJSON, _ = cmd.Root().PersistentFlags().GetBool("log-json")
	}
	if asJSON {
		return applog.NewJSONLogger(cmd.ErrOrStderr(), verbose)
	}
	return applog.NewLogger(cmd.ErrOrStderr(), verbose)
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
