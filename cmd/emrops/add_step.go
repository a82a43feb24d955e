package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clusterops/emrops/internal/loggerutils"
	"github.com/clusterops/emrops/services/jobflow/domain/usecases"
)

func newAddStepCommand() *cobra.Command {
	var (
		name      string
		scriptURI string
	)

	cmd := &cobra.Command{
		Use:   "add-step <cluster-id> --name <name> --script-uri <uri> [-- script args...]",
		Short: "Queue one job step on a cluster",
		Long: `Add-step appends one step to the cluster's step queue. The step runs as soon
as the cluster is ready for it. Arguments after "--" are passed to the script
verbatim. Prints the id of the new step.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clusterID := args[0]
			step := usecases.StepSpec{
				Name:       name,
				ScriptURI:  scriptURI,
				ScriptArgs: args[1:],
			}

			uc, err := newUsecases(cmd.Context(), loggerutils.WithClusterID(clusterID))
			if err != nil {
				return err
			}

			stepID, err := uc.AddStep(cmd.Context(), clusterID, step)
			if err != nil {
				return err
			}
			fmt.Println(stepID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name of the step")
	cmd.Flags().StringVar(&scriptURI, "script-uri", "", "URI of the script to run, e.g. s3://bucket/script.py")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("script-uri")

	return cmd
}
