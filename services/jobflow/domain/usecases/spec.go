package usecases

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	emrtypes "github.com/aws/aws-sdk-go-v2/service/emr/types"
	"github.com/go-playground/validator/v10"
)

// ClusterSpec describes the cluster a caller wants provisioned. Everything
// not listed here (instance shape, release, visibility) is fixed by this
// tool, see the constants in usecases.go.
type ClusterSpec struct {
	// Name of the cluster.
	Name string `validate:"required" yaml:"name"`
	// LogURI is where the cluster writes its logs, e.g. "s3://my-log-bucket".
	LogURI string `validate:"omitempty,uri" yaml:"logUri"`
	// KeepAlive keeps the cluster in a waiting state after all steps ran.
	// When false the cluster terminates itself once the step queue is empty.
	KeepAlive bool `yaml:"keepAlive"`
	// Applications to install on every instance, e.g. Hive or Spark.
	Applications []string `yaml:"applications"`
	// JobFlowRole is the IAM role assumed by the cluster instances.
	JobFlowRole string `validate:"required" yaml:"jobFlowRole"`
	// ServiceRole is the IAM role assumed by the EMR service.
	ServiceRole string `validate:"required" yaml:"serviceRole"`
	// SecurityGroups to assign to the cluster instances. EMR adds all rules
	// it needs to these groups, so they can start out empty.
	SecurityGroups SecurityGroups `yaml:"securityGroups"`
	// Steps queued on the cluster, run in order as soon as it is ready.
	Steps []StepSpec `validate:"dive" yaml:"steps"`
}

// SecurityGroups holds the EMR-managed security group pair.
type SecurityGroups struct {
	Manager string `validate:"required" yaml:"manager"`
	Worker  string `validate:"required" yaml:"worker"`
}

// StepSpec is one unit of work submitted to the cluster's step queue.
type StepSpec struct {
	// Name of the step.
	Name string `validate:"required" yaml:"name"`
	// ScriptURI is where the script to run is stored, e.g. "s3://bucket/script.py".
	ScriptURI string `validate:"required" yaml:"scriptUri"`
	// ScriptArgs are passed to the script verbatim, in order.
	ScriptArgs []string `yaml:"scriptArgs"`
}

// Validate validates the parsed cluster spec.
// It checks for missing/invalid values and cross-field constraints the
// struct tags cannot express.
func (c *ClusterSpec) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("failed to validate cluster spec: %w", err)
	}

	// A cluster with no steps and no keep-alive terminates right after
	// provisioning, which is never what the caller wants.
	if len(c.Steps) == 0 && !c.KeepAlive {
		return fmt.Errorf("cluster %q defines no steps and keepAlive is false, the cluster would terminate immediately", c.Name)
	}

	names := make(map[string]bool)
	for _, s := range c.Steps {
		if names[s.Name] {
			return fmt.Errorf("step name %q is used across multiple steps, must be unique", s.Name)
		}
		names[s.Name] = true
	}

	return nil
}

// newStepConfig translates a step spec into the fixed job-runner invocation
// shape: command-runner.jar running spark-submit in cluster deploy mode,
// continuing with the remaining steps if this one fails.
func newStepConfig(step StepSpec) emrtypes.StepConfig {
	args := append(
		[]string{"spark-submit", "--deploy-mode", "cluster", step.ScriptURI},
		step.ScriptArgs...,
	)
	return emrtypes.StepConfig{
		Name:            aws.String(step.Name),
		ActionOnFailure: emrtypes.ActionOnFailureContinue,
		HadoopJarStep: &emrtypes.HadoopJarStepConfig{
			Jar:  aws.String(commandRunnerJar),
			Args: args,
		},
	}
}
