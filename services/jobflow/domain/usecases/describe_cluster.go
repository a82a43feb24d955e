package usecases

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/emr"
	emrtypes "github.com/aws/aws-sdk-go-v2/service/emr/types"
)

// DescribeCluster fetches detailed information about the given cluster.
// The cluster state in the result is whatever the service reports, this
// tool models no state of its own.
func (u *Usecases) DescribeCluster(ctx context.Context, clusterID string) (*emrtypes.Cluster, error) {
	resp, err := u.EMR.DescribeCluster(ctx, &emr.DescribeClusterInput{
		ClusterId: aws.String(clusterID),
	})
	if err != nil {
		u.Logger.Err(err).Str("cluster", clusterID).Msgf("Failed to get data for cluster %s", clusterID)
		return nil, err
	}

	u.Logger.Info().Str("cluster", clusterID).Msgf("Got data for cluster %s", aws.ToString(resp.Cluster.Name))
	return resp.Cluster, nil
}
