// fakerhelper CLI - generate locale-aware fake data from the command line
package main

import (
	"os"

	"github.com/getmockd/fakerhelper/pkg/cli"
)

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cli.Version = Version
	cli.Commit = Commit
	cli.BuildDate = BuildDate
	return cli.Main()
}
