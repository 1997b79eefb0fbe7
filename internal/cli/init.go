package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpgo/taxdrag/internal/config"
	"github.com/rpgo/taxdrag/internal/output"
)

func initCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [path]",
		Short: "Write an example scenario file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "scenario.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}

			cfg := config.NewInputParser().CreateExampleConfiguration()
			if err := output.SaveConfiguration(cfg, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example scenario written to %s\n", path)
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return c
}
