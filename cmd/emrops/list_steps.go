package main

import (
	"github.com/spf13/cobra"

	"github.com/clusterops/emrops/internal/loggerutils"
)

func newListStepsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-steps <cluster-id>",
		Short: "List the steps of a cluster",
		Long: `List-steps shows every step of the cluster, including completed and failed
ones, in the order the service reports them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clusterID := args[0]

			uc, err := newUsecases(cmd.Context(), loggerutils.WithClusterID(clusterID))
			if err != nil {
				return err
			}

			steps, err := uc.ListSteps(cmd.Context(), clusterID)
			if err != nil {
				return err
			}
			return printJSON(steps)
		},
	}
}
