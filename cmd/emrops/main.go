package main

import (
	"fmt"
	"os"

	"github.com/clusterops/emrops/internal/loggerutils"
)

func main() {
	// Initialize logger
	loggerutils.Init("emrops")

	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
