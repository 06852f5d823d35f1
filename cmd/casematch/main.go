// CLI entry point for the Takweol case-analysis tool.
package main

import (
	"os"

	"github.com/takweol/casematch/internal/interfaces/cli"
)

// Build-time variables injected via ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	cli.Version = version
	cli.GitCommit = commit
	cli.BuildDate = buildDate
}

func main() {
	os.Exit(cli.Execute())
}
