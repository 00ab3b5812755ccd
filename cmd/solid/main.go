// Command solid runs the SOLID principle sampler.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/solid/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "solid: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
