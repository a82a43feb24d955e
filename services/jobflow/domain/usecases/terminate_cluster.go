package usecases

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/emr"
)

// TerminateCluster shuts down every instance of the given cluster. This
// cannot be undone; any data not persisted elsewhere, such as an S3 bucket,
// is lost.
func (u *Usecases) TerminateCluster(ctx context.Context, clusterID string) error {
	_, err := u.EMR.TerminateJobFlows(ctx, &emr.TerminateJobFlowsInput{
		JobFlowIds: []string{clusterID},
	})
	if err != nil {
		u.Logger.Err(err).Str("cluster", clusterID).Msgf("Failed to terminate cluster %s", clusterID)
		return err
	}

	u.Logger.Info().Str("cluster", clusterID).Msgf("Terminated cluster %s", clusterID)
	return nil
}
