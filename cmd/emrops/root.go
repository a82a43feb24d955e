package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	outboundAdapters "github.com/clusterops/emrops/services/jobflow/adapters/outbound"
	"github.com/clusterops/emrops/services/jobflow/domain/usecases"
)

var rootCmd = &cobra.Command{
	Use:   "emrops",
	Short: "emrops - Amazon EMR job-flow operations",
	Long: `emrops creates and manages EMR clusters and their job steps.
Each subcommand issues exactly one remote API call; waiting for clusters or
steps to reach a state is left to the caller.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(newCreateCommand())
	rootCmd.AddCommand(newDescribeCommand())
	rootCmd.AddCommand(newTerminateCommand())
	rootCmd.AddCommand(newAddStepCommand())
	rootCmd.AddCommand(newListStepsCommand())
	rootCmd.AddCommand(newDescribeStepCommand())
}

// newUsecases is the composition root: it wires the EMR adapter and the
// given scoped logger into a usecases instance.
func newUsecases(ctx context.Context, logger zerolog.Logger) (*usecases.Usecases, error) {
	adapter, err := outboundAdapters.CreateEMRAdapter(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create EMR adapter: %w", err)
	}
	return &usecases.Usecases{EMR: adapter.Client, Logger: logger}, nil
}

// printJSON renders a remote record to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	return nil
}
