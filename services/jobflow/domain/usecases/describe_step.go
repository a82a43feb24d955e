package usecases

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/emr"
	emrtypes "github.com/aws/aws-sdk-go-v2/service/emr/types"
)

// DescribeStep fetches detailed information about a single step, including
// its current execution state.
func (u *Usecases) DescribeStep(ctx context.Context, clusterID, stepID string) (*emrtypes.Step, error) {
	resp, err := u.EMR.DescribeStep(ctx, &emr.DescribeStepInput{
		ClusterId: aws.String(clusterID),
		StepId:    aws.String(stepID),
	})
	if err != nil {
		u.Logger.Err(err).Str("cluster", clusterID).Str("step", stepID).Msgf("Failed to get data for step %s", stepID)
		return nil, err
	}

	u.Logger.Info().Str("cluster", clusterID).Str("step", stepID).Msgf("Got data for step %s", stepID)
	return resp.Step, nil
}
