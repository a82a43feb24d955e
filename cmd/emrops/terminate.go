package main

import (
	"github.com/spf13/cobra"

	"github.com/clusterops/emrops/internal/loggerutils"
)

func newTerminateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "terminate <cluster-id>",
		Short: "Terminate a cluster",
		Long: `Terminate shuts down every instance of the cluster. This cannot be undone;
any data not persisted elsewhere, such as an S3 bucket, is lost.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clusterID := args[0]

			uc, err := newUsecases(cmd.Context(), loggerutils.WithClusterID(clusterID))
			if err != nil {
				return err
			}

			return uc.TerminateCluster(cmd.Context(), clusterID)
		},
	}
}
