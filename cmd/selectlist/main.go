// Command selectlist picks items from a list in the terminal.
package main

import (
	"os"

	"github.com/rshade/selectlist/internal/cli"
	"github.com/rshade/selectlist/pkg/version"
)

func main() {
	if err := run(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}

func run() error {
	return cli.NewRootCmd(version.GetVersion()).Execute()
}
