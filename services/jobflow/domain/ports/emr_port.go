package ports

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/emr"
)

// EMRPort is the subset of the EMR API the job-flow usecases rely on.
// *emr.Client satisfies it, tests substitute a fake.
type EMRPort interface {
	// RunJobFlow provisions a new cluster and queues its initial steps.
	RunJobFlow(ctx context.Context, params *emr.RunJobFlowInput, optFns ...func(*emr.Options)) (*emr.RunJobFlowOutput, error)
	// DescribeCluster fetches the cluster-level details of a job flow.
	DescribeCluster(ctx context.Context, params *emr.DescribeClusterInput, optFns ...func(*emr.Options)) (*emr.DescribeClusterOutput, error)
	// TerminateJobFlows shuts down the given job flows.
	TerminateJobFlows(ctx context.Context, params *emr.TerminateJobFlowsInput, optFns ...func(*emr.Options)) (*emr.TerminateJobFlowsOutput, error)
	// AddJobFlowSteps appends steps to a running job flow.
	AddJobFlowSteps(ctx context.Context, params *emr.AddJobFlowStepsInput, optFns ...func(*emr.Options)) (*emr.AddJobFlowStepsOutput, error)
	// ListSteps lists the steps of a cluster.
	ListSteps(ctx context.Context, params *emr.ListStepsInput, optFns ...func(*emr.Options)) (*emr.ListStepsOutput, error)
	// DescribeStep fetches the details of a single step, including its state.
	DescribeStep(ctx context.Context, params *emr.DescribeStepInput, optFns ...func(*emr.Options)) (*emr.DescribeStepOutput, error)
}
