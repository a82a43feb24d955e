package usecases

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/emr"
	emrtypes "github.com/aws/aws-sdk-go-v2/service/emr/types"
)

// ListSteps lists the steps of the given cluster, newest first as reported
// by the service. All steps are returned, including completed and failed
// ones.
func (u *Usecases) ListSteps(ctx context.Context, clusterID string) ([]emrtypes.StepSummary, error) {
	resp, err := u.EMR.ListSteps(ctx, &emr.ListStepsInput{
		ClusterId: aws.String(clusterID),
	})
	if err != nil {
		u.Logger.Err(err).Str("cluster", clusterID).Msgf("Failed to get steps for cluster %s", clusterID)
		return nil, err
	}

	u.Logger.Info().Str("cluster", clusterID).Msgf("Got %d steps for cluster %s", len(resp.Steps), clusterID)
	return resp.Steps, nil
}
