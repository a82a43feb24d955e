package usecases

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/emr"
	emrtypes "github.com/aws/aws-sdk-go-v2/service/emr/types"
)

// RunJobFlow provisions a cluster of instances and queues the spec's steps
// on it. Queued steps run in order as soon as the cluster is ready.
// Returns the id of the newly created cluster.
//
// The remote error is returned to the caller unchanged; resilience policy
// (retry, abort) is the caller's to decide.
func (u *Usecases) RunJobFlow(ctx context.Context, spec ClusterSpec) (string, error) {
	steps := make([]emrtypes.StepConfig, 0, len(spec.Steps))
	for _, s := range spec.Steps {
		steps = append(steps, newStepConfig(s))
	}

	applications := make([]emrtypes.Application, 0, len(spec.Applications))
	for _, app := range spec.Applications {
		applications = append(applications, emrtypes.Application{Name: aws.String(app)})
	}

	resp, err := u.EMR.RunJobFlow(ctx, &emr.RunJobFlowInput{
		Name:         aws.String(spec.Name),
		LogUri:       aws.String(spec.LogURI),
		ReleaseLabel: aws.String(ReleaseLabel),
		Instances: &emrtypes.JobFlowInstancesConfig{
			MasterInstanceType:            aws.String(InstanceType),
			SlaveInstanceType:             aws.String(InstanceType),
			InstanceCount:                 aws.Int32(InstanceCount),
			KeepJobFlowAliveWhenNoSteps:   aws.Bool(spec.KeepAlive),
			EmrManagedMasterSecurityGroup: aws.String(spec.SecurityGroups.Manager),
			EmrManagedSlaveSecurityGroup:  aws.String(spec.SecurityGroups.Worker),
		},
		Steps:             steps,
		Applications:      applications,
		JobFlowRole:       aws.String(spec.JobFlowRole),
		ServiceRole:       aws.String(spec.ServiceRole),
		EbsRootVolumeSize: aws.Int32(EbsRootVolumeSize),
		VisibleToAllUsers: aws.Bool(true),
	})
	if err != nil {
		u.Logger.Err(err).Str("name", spec.Name).Msg("Failed to create cluster")
		return "", err
	}

	clusterID := aws.ToString(resp.JobFlowId)
	u.Logger.Info().Str("cluster", clusterID).Msgf("Created cluster %s", clusterID)
	return clusterID, nil
}
