package usecases

import (
	"github.com/rs/zerolog"

	"github.com/clusterops/emrops/services/jobflow/domain/ports"
)

// Fixed shape of every cluster this tool provisions. A production setup
// would take these from configuration.
const (
	// ReleaseLabel pins the EMR release installed on new clusters.
	// Recent releases: https://docs.aws.amazon.com/emr/latest/ReleaseGuide/emr-release-components.html
	ReleaseLabel = "emr-5.30.1"
	// InstanceType is used for both the master and the core instances.
	InstanceType = "m5.xlarge"
	// InstanceCount is the total number of instances in the cluster.
	InstanceCount = 3
	// EbsRootVolumeSize is the root volume size in GiB.
	EbsRootVolumeSize = 10

	// commandRunnerJar is the generic job-runner artifact EMR uses to launch
	// arbitrary commands on cluster nodes.
	commandRunnerJar = "command-runner.jar"
)

type Usecases struct {
	// EMR is the remote API collaborator. Session and credential setup is
	// owned by whoever constructs it, never by the usecases.
	EMR ports.EMRPort

	// Logger is injected so callers can scope it; failures of any operation
	// produce exactly one entry on it.
	Logger zerolog.Logger
}
