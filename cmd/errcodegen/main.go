// Command errcodegen generates Go error-code types from a definitions file.
//
//	errcodegen [flags] <definitions-file>
//	errcodegen validate <definitions-file>
//	errcodegen inspect <definitions-file>
//	errcodegen test <scenarios-dir>
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/errcodegen/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err != nil {
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			// Cobra argument and flag errors; commands report their own.
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	os.Exit(cli.GetExitCode(err))
}
