package usecases

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/emr"
	emrtypes "github.com/aws/aws-sdk-go-v2/service/emr/types"
)

// AddStep appends one step to the cluster's step queue. The step runs as
// soon as the cluster is ready for it. Returns the id of the new step.
func (u *Usecases) AddStep(ctx context.Context, clusterID string, step StepSpec) (string, error) {
	resp, err := u.EMR.AddJobFlowSteps(ctx, &emr.AddJobFlowStepsInput{
		JobFlowId: aws.String(clusterID),
		Steps:     []emrtypes.StepConfig{newStepConfig(step)},
	})
	if err != nil {
		u.Logger.Err(err).Str("cluster", clusterID).Msgf("Failed to start step %s with URI %s", step.Name, step.ScriptURI)
		return "", err
	}

	// The request carried exactly one step, so the response carries
	// exactly one id.
	stepID := resp.StepIds[0]
	u.Logger.Info().Str("cluster", clusterID).Str("step", stepID).Msgf("Started step with ID %s", stepID)
	return stepID, nil
}
