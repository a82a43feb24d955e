package loggerutils

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/clusterops/emrops/internal/envs"
)

// WithClusterID creates a new logger aware of the cluster id.
func WithClusterID(clusterID string) zerolog.Logger {
	return logger.With().Str("cluster", clusterID).Logger()
}

// WithClusterAndStep creates a new logger aware of the cluster id and step id.
func WithClusterAndStep(clusterID, stepID string) zerolog.Logger {
	return logger.With().Str("cluster", clusterID).Str("step", stepID).Logger()
}

const defaultLogLevel = zerolog.InfoLevel

var (
	isLogInit = false
	// Available time formats https://pkg.go.dev/time#pkg-constants
	logTimeFormat = time.RFC3339
	logger        zerolog.Logger
)

// Initialize the logging framework.
// Inputs are the golang module name used as a logging prefix
// and the env variable with the logging level
func Init(moduleName string) {
	if !isLogInit {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		// set log level from env variable
		logLevel, err := getLogLevelFromEnv()
		baseLogger := zerolog.New(os.Stderr)
		// create sub logger
		logger = baseLogger.With().Str("module", moduleName).Logger() // Add module name to log
		logger = logger.Level(logLevel).
			Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: logTimeFormat,
			}) // Prettify the output
		logger = logger.With().Timestamp().Logger() // Add time stamp
		if logLevel == zerolog.DebugLevel {
			logger = logger.With().Caller().Logger() // Add caller (line number where log message was called)
		}
		if err != nil {
			logger.Err(err)
		}
		isLogInit = true
	}
	log.Logger = logger
}

func getLogLevelFromEnv() (zerolog.Level, error) {
	logLevelStr := envs.LogLevel
	if logLevelStr == "" {
		return defaultLogLevel, nil
	}
	level, err := convertLogLevelStr(logLevelStr)
	if err != nil {
		return defaultLogLevel, fmt.Errorf("unsupported value \"%s\" for log level. Using log level \"%v\"", logLevelStr, defaultLogLevel)
	}
	return level, err
}

func convertLogLevelStr(logLevelStr string) (zerolog.Level, error) {
	levels := map[string]zerolog.Level{
		"disabled": zerolog.Disabled,
		"panic":    zerolog.PanicLevel,
		"fatal":    zerolog.FatalLevel,
		"error":    zerolog.ErrorLevel,
		"warn":     zerolog.WarnLevel,
		"info":     zerolog.InfoLevel,
		"debug":    zerolog.DebugLevel,
		"trace":    zerolog.TraceLevel,
	}
	res, ok := levels[strings.ToLower(logLevelStr)]
	if !ok {
		return defaultLogLevel, fmt.Errorf("unsupported log level %s", logLevelStr)
	}
	return res, nil
}
