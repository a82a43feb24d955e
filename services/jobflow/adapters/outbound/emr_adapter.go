package outboundAdapters

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/emr"

	"github.com/clusterops/emrops/internal/envs"
)

var (
	awsRegion          = envs.AwsRegion
	awsAccessKeyId     = envs.AwsAccessKeyId
	awsSecretAccessKey = envs.AwsSecretAccessKey
	emrEndpoint        = envs.EmrEndpoint
)

// EMRAdapter holds the EMR client the job-flow usecases talk through.
// EMRAdapter.Client implements the EMRPort interface.
type EMRAdapter struct {
	Client *emr.Client
}

// createEMRClient creates and returns an EMR client with static credentials
// taken from the environment.
func createEMRClient() *emr.Client {
	return emr.New(
		emr.Options{
			Region: awsRegion,
			Credentials: aws.CredentialsProviderFunc(
				func(ctx context.Context) (aws.Credentials, error) {
					return aws.Credentials{AccessKeyID: awsAccessKeyId, SecretAccessKey: awsSecretAccessKey}, nil
				},
			),
			RetryMaxAttempts: 10,
			RetryMode:        aws.RetryModeStandard,
		},
	)
}

// createEMRClientWithEndpoint creates and returns an EMR client with a custom
// defined endpoint. It will lookup the endpoint from the emrEndpoint variable.
func createEMRClientWithEndpoint() *emr.Client {
	return emr.New(
		emr.Options{
			Region: awsRegion,
			Credentials: aws.CredentialsProviderFunc(
				func(ctx context.Context) (aws.Credentials, error) {
					return aws.Credentials{AccessKeyID: awsAccessKeyId, SecretAccessKey: awsSecretAccessKey}, nil
				},
			),
			RetryMaxAttempts: 10,
			RetryMode:        aws.RetryModeStandard,
			BaseEndpoint:     aws.String(emrEndpoint),
		},
	)
}

// createEMRClientFromDefaultChain creates an EMR client using the SDK's
// default credential chain (shared config files, instance profile, SSO).
func createEMRClientFromDefaultChain(ctx context.Context) (*emr.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(awsRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return emr.NewFromConfig(cfg), nil
}

// CreateEMRAdapter constructs the EMR client. Static credentials from the
// environment win over the default chain; a custom endpoint wins over the
// service's real one.
func CreateEMRAdapter(ctx context.Context) (*EMRAdapter, error) {
	if awsAccessKeyId == "" {
		client, err := createEMRClientFromDefaultChain(ctx)
		if err != nil {
			return nil, err
		}
		return &EMRAdapter{Client: client}, nil
	}
	if emrEndpoint != "" {
		return &EMRAdapter{Client: createEMRClientWithEndpoint()}, nil
	}
	return &EMRAdapter{Client: createEMRClient()}, nil
}
