package main

import (
	"fmt"
	"os"

	"github.com/temirov/panes/cmd/cli"
)

const (
	exitErrorTemplateConstant = "%v\n"
	exitCodeFailureConstant   = 1
)

// main executes the panes command-line application.
func main() {
	if executionError := cli.Execute(); executionError != nil {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
		os.Exit(exitCodeFailureConstant)
	}
}
