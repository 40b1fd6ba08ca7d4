package cli

import (
	"github.com/spf13/cobra"

	"github.com/marijncv/pants/internal/pkg/export"
)

func exportCommand(root *RootCommand) *cobra.Command {
	var only []string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the default lockfiles of the exportable tools.",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := export.NewPlan(root.host.Unions, only)
			if err != nil {
				return err
			}

			// Log plan
			plan.Log(root.logger.InfoWriter())

			// Dry run?
			if dryRun {
				root.logger.Info("Dry run, nothing exported.")
				return nil
			}

			return plan.Invoke(root.logger, root.fs)
		},
	}

	cmd.Flags().StringSliceVar(&only, "only", nil, "export only the named tools")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the plan, but do not export")
	return cmd
}
