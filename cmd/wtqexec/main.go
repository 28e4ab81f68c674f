// Command wtqexec grounds questions in tagged tables and executes logical
// forms over them.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/wtqexec/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			// Already reported through the output formatter.
			os.Exit(exitErr.Code)
		}
		// Flag and argument errors.
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCommandError)
	}
}
