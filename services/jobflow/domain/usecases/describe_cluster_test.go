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

func TestDescribeClusterReturnsRemoteRecord(t *testing.T) {
	cluster := &emrtypes.Cluster{
		Id:   aws.String("j-1234567890ABC"),
		Name: aws.String("demo-cluster"),
		Status: &emrtypes.ClusterStatus{
			State: emrtypes.ClusterStateWaiting,
		},
	}
	uc, _ := newTestUsecases(&EMRPortMock{
		DescribeClusterFunc: func(ctx context.Context, params *emr.DescribeClusterInput, optFns ...func(*emr.Options)) (*emr.DescribeClusterOutput, error) {
			require.Equal(t, "j-1234567890ABC", aws.ToString(params.ClusterId))
			return &emr.DescribeClusterOutput{Cluster: cluster}, nil
		},
	})

	got, err := uc.DescribeCluster(context.Background(), "j-1234567890ABC")

	require.NoError(t, err)
	require.Same(t, cluster, got)
}

func TestDescribeClusterPropagatesRemoteError(t *testing.T) {
	remoteErr := &smithy.GenericAPIError{Code: "InvalidRequestException", Message: "Cluster id 'j-MISSING' is not valid"}
	uc, buf := newTestUsecases(&EMRPortMock{
		DescribeClusterFunc: func(ctx context.Context, params *emr.DescribeClusterInput, optFns ...func(*emr.Options)) (*emr.DescribeClusterOutput, error) {
			return nil, remoteErr
		},
	})

	got, err := uc.DescribeCluster(context.Background(), "j-MISSING")

	require.Nil(t, got)
	require.ErrorIs(t, err, remoteErr)
	require.Equal(t, 1, logLines(buf))
	require.Contains(t, buf.String(), "j-MISSING")
}
