package usecases

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/emr"
	emrtypes "github.com/aws/aws-sdk-go-v2/service/emr/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/require"
)

func TestAddStepReturnsFirstStepID(t *testing.T) {
	var captured *emr.AddJobFlowStepsInput
	uc, _ := newTestUsecases(&EMRPortMock{
		AddJobFlowStepsFunc: func(ctx context.Context, params *emr.AddJobFlowStepsInput, optFns ...func(*emr.Options)) (*emr.AddJobFlowStepsOutput, error) {
			captured = params
			return &emr.AddJobFlowStepsOutput{StepIds: []string{"s-123"}}, nil
		},
	})

	stepID, err := uc.AddStep(context.Background(), "j-ABC", StepSpec{
		Name:       "X",
		ScriptURI:  "s3://b/s.py",
		ScriptArgs: []string{"--a", "1"},
	})

	require.NoError(t, err)
	require.Equal(t, "s-123", stepID)
	require.Equal(t, "j-ABC", aws.ToString(captured.JobFlowId))
	require.Len(t, captured.Steps, 1)

	step := captured.Steps[0]
	require.Equal(t, "X", aws.ToString(step.Name))
	require.Equal(t, emrtypes.ActionOnFailureContinue, step.ActionOnFailure)
	require.Equal(t, "command-runner.jar", aws.ToString(step.HadoopJarStep.Jar))
	require.Equal(t,
		[]string{"spark-submit", "--deploy-mode", "cluster", "s3://b/s.py", "--a", "1"},
		step.HadoopJarStep.Args,
	)
}

func TestAddStepPropagatesRemoteError(t *testing.T) {
	remoteErr := &smithy.GenericAPIError{Code: "ValidationException", Message: "1 validation error detected"}
	uc, buf := newTestUsecases(&EMRPortMock{
		AddJobFlowStepsFunc: func(ctx context.Context, params *emr.AddJobFlowStepsInput, optFns ...func(*emr.Options)) (*emr.AddJobFlowStepsOutput, error) {
			return nil, remoteErr
		},
	})

	stepID, err := uc.AddStep(context.Background(), "j-ABC", StepSpec{Name: "X", ScriptURI: "s3://b/s.py"})

	require.Empty(t, stepID)
	require.ErrorIs(t, err, remoteErr)
	require.Equal(t, 1, logLines(buf))
	require.Contains(t, buf.String(), "s3://b/s.py")
}
