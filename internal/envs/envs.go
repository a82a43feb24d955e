package envs

import (
	"os"
)

// Credentials and region for the EMR client. All are read once at process
// start; an empty AwsAccessKeyId switches the adapter over to the SDK's
// default credential chain.
var (
	// AwsAccessKeyId is part of credentials needed for connecting to EMR
	AwsAccessKeyId = os.Getenv("AWS_ACCESS_KEY_ID")
	// AwsSecretAccessKey is part of credentials needed for connecting to EMR
	AwsSecretAccessKey = os.Getenv("AWS_SECRET_ACCESS_KEY")
	// AwsRegion is the region the EMR API calls are issued against
	AwsRegion = os.Getenv("AWS_REGION")
	// EmrEndpoint overrides the EMR API endpoint, e.g. for a localstack deployment
	EmrEndpoint = os.Getenv("EMR_ENDPOINT")
	// Golang log level
	LogLevel = os.Getenv("GOLANG_LOG")
)

// func init is used as setter for default values in case the env var has not been set
func init() {
	if AwsRegion == "" {
		AwsRegion = "us-east-1"
	}
}

// GetOrDefault returns the value of the env var with the given key,
// or the fallback if the var is unset or empty.
func GetOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
