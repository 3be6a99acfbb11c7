// Command deepcmp compares two JSON or YAML documents structurally and
// reports the first point at which they diverge.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	exitEqual     = 0
	exitDifferent = 1
	exitError     = 2
)

// errDifferent is returned by the command when the documents differ. The
// mismatch itself has already been printed.
var errDifferent = errors.New("documents differ")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	switch {
	case err == nil:
		return exitEqual
	case errors.Is(err, errDifferent):
		return exitDifferent
	}
	fmt.Fprintf(stderr, "deepcmp: %v\n", err)
	return exitError
}
