// Package main provides the CLI entrypoint for parser-generator.
//
// parser-generator reads parser declarations from YAML manifests, validates
// them and generates the RxHttp as-family and to-family functions as Kotlin:
//   - gen: run a full pass and write the generated files
//   - check: validate and register only, reporting diagnostics
//   - dump: print the synthesized function specs
package main

import (
	"fmt"
	"os"

	"parser-generator/internal/logger"
)

func main() {
	err := newRootCmd().Execute()

	logger.Sync()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
