// Package main provides the CLI entrypoint for column-mapper.
//
// column-mapper maps dataset column names onto the semantic roles of the
// time-series pipeline:
//   - Lists known column mappings (presets)
//   - Prints a preset as a YAML or TOML mapping file
//   - Checks mapping files for errors and readiness
package main

import (
	"os"

	"column-mapper/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
