package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpgo/taxdrag/internal/calculation"
	"github.com/rpgo/taxdrag/internal/output"
	"github.com/rpgo/taxdrag/pkg/money"
)

// Exit codes returned by the binary.
const (
	ExitOK               = 0
	ExitFailure          = 1
	ExitValidationFailed = 2
	ExitOutputFailed     = 3
)

// Execute runs the root command and exits with a status derived from the error.
func Execute() {
	cmd := newRootCmd()
	err := cmd.Execute()
	os.Exit(ExitCode(err))
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, output.ErrOutputWrite):
		return ExitOutputFailed
	case errors.Is(err, money.ErrInvalidAmount),
		errors.Is(err, money.ErrInvalidRate),
		errors.Is(err, calculation.ErrInvalidHorizon):
		return ExitValidationFailed
	default:
		return ExitFailure
	}
}

type rootOptions struct {
	debug bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "taxdrag",
		Short:        "Compare taxable and tax-advantaged account growth",
		Long:         "taxdrag projects a taxable and a Roth-style tax-advantaged account side by side and reports the tax drag.",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable per-year debug logging on stderr")

	cmd.AddCommand(runCmd(opts))
	cmd.AddCommand(initCmd())
	cmd.AddCommand(formatsCmd())
	return cmd
}

func formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List available output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range output.AvailableFormatterNames() {
				fmt.Fprintln(out, name)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Aliases:")
			for _, alias := range output.AvailableFormatAliases() {
				fmt.Fprintf(out, "  %s -> %s\n", alias, output.NormalizeFormatName(alias))
			}
			return nil
		},
	}
}
