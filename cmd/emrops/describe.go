package main

import (
	"github.com/spf13/cobra"

	"github.com/clusterops/emrops/internal/loggerutils"
)

func newDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <cluster-id>",
		Short: "Show detailed information about a cluster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clusterID := args[0]

			uc, err := newUsecases(cmd.Context(), loggerutils.WithClusterID(clusterID))
			if err != nil {
				return err
			}

			cluster, err := uc.DescribeCluster(cmd.Context(), clusterID)
			if err != nil {
				return err
			}
			return printJSON(cluster)
		},
	}
}
