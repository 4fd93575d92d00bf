package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MacroPower/runcheck/internal/cli"
	"github.com/MacroPower/runcheck/pkg/vercheck"
)

const (
	cmdName = "runcheck"

	shortDesc = "Check the release token advertised by the running runtime."
	longDesc  = `Runcheck reads the version string reported by the running process, extracts
the release token that follows the implementation name, and prints a single
line telling you whether it is the expected release.

When the version string carries no release token at all, runcheck prints
nothing and exits nonzero.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		// A missing release token is reported by exit status alone.
		if !errors.Is(err, vercheck.ErrPatternNotFound) {
			fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		}

		os.Exit(1)
	}
}
