package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/clusterops/emrops/services/jobflow/domain/usecases"
)

func newCreateCommand() *cobra.Command {
	var specFile string

	cmd := &cobra.Command{
		Use:   "create -f <spec.yaml>",
		Short: "Create a cluster with its initial job steps",
		Long: `Create provisions a new EMR cluster from a YAML cluster spec and queues the
spec's steps on it. The steps run in order as soon as the cluster is ready.
Prints the id of the new cluster.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := loadClusterSpec(specFile)
			if err != nil {
				return err
			}

			uc, err := newUsecases(cmd.Context(), log.Logger)
			if err != nil {
				return err
			}

			clusterID, err := uc.RunJobFlow(cmd.Context(), *spec)
			if err != nil {
				return err
			}
			fmt.Println(clusterID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&specFile, "file", "f", "", "Path to the cluster spec YAML file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// loadClusterSpec parses and validates a cluster spec file.
func loadClusterSpec(path string) (*usecases.ClusterSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cluster spec %s: %w", path, err)
	}

	var spec usecases.ClusterSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse cluster spec %s: %w", path, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}
