package main

import (
	"github.com/spf13/cobra"

	"github.com/clusterops/emrops/internal/loggerutils"
)

func newDescribeStepCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe-step <cluster-id> <step-id>",
		Short: "Show detailed information about a step, including its state",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clusterID, stepID := args[0], args[1]

			uc, err := newUsecases(cmd.Context(), loggerutils.WithClusterAndStep(clusterID, stepID))
			if err != nil {
				return err
			}

			step, err := uc.DescribeStep(cmd.Context(), clusterID, stepID)
			if err != nil {
				return err
			}
			return printJSON(step)
		},
	}
}
