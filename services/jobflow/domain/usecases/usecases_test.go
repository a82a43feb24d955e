package usecases

import (
	"bytes"
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/emr"
	"github.com/rs/zerolog"
)

// EMRPortMock substitutes the remote EMR API in tests. Only the func fields
// a test sets are expected to be called.
type EMRPortMock struct {
	RunJobFlowFunc        func(ctx context.Context, params *emr.RunJobFlowInput, optFns ...func(*emr.Options)) (*emr.RunJobFlowOutput, error)
	DescribeClusterFunc   func(ctx context.Context, params *emr.DescribeClusterInput, optFns ...func(*emr.Options)) (*emr.DescribeClusterOutput, error)
	TerminateJobFlowsFunc func(ctx context.Context, params *emr.TerminateJobFlowsInput, optFns ...func(*emr.Options)) (*emr.TerminateJobFlowsOutput, error)
	AddJobFlowStepsFunc   func(ctx context.Context, params *emr.AddJobFlowStepsInput, optFns ...func(*emr.Options)) (*emr.AddJobFlowStepsOutput, error)
	ListStepsFunc         func(ctx context.Context, params *emr.ListStepsInput, optFns ...func(*emr.Options)) (*emr.ListStepsOutput, error)
	DescribeStepFunc      func(ctx context.Context, params *emr.DescribeStepInput, optFns ...func(*emr.Options)) (*emr.DescribeStepOutput, error)
}

func (m *EMRPortMock) RunJobFlow(ctx context.Context, params *emr.RunJobFlowInput, optFns ...func(*emr.Options)) (*emr.RunJobFlowOutput, error) {
	return m.RunJobFlowFunc(ctx, params, optFns...)
}

func (m *EMRPortMock) DescribeCluster(ctx context.Context, params *emr.DescribeClusterInput, optFns ...func(*emr.Options)) (*emr.DescribeClusterOutput, error) {
	return m.DescribeClusterFunc(ctx, params, optFns...)
}

func (m *EMRPortMock) TerminateJobFlows(ctx context.Context, params *emr.TerminateJobFlowsInput, optFns ...func(*emr.Options)) (*emr.TerminateJobFlowsOutput, error) {
	return m.TerminateJobFlowsFunc(ctx, params, optFns...)
}

func (m *EMRPortMock) AddJobFlowSteps(ctx context.Context, params *emr.AddJobFlowStepsInput, optFns ...func(*emr.Options)) (*emr.AddJobFlowStepsOutput, error) {
	return m.AddJobFlowStepsFunc(ctx, params, optFns...)
}

func (m *EMRPortMock) ListSteps(ctx context.Context, params *emr.ListStepsInput, optFns ...func(*emr.Options)) (*emr.ListStepsOutput, error) {
	return m.ListStepsFunc(ctx, params, optFns...)
}

func (m *EMRPortMock) DescribeStep(ctx context.Context, params *emr.DescribeStepInput, optFns ...func(*emr.Options)) (*emr.DescribeStepOutput, error) {
	return m.DescribeStepFunc(ctx, params, optFns...)
}

// newTestUsecases wires a mock port with a logger writing into the returned
// buffer, so tests can assert on emitted log entries.
func newTestUsecases(mock *EMRPortMock) (*Usecases, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Usecases{EMR: mock, Logger: zerolog.New(&buf)}, &buf
}

// logLines counts complete log entries in the buffer.
func logLines(buf *bytes.Buffer) int {
	return strings.Count(buf.String(), "\n")
}
