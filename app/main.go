package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Exit statuses follow grep: 0 when a line matched, 1 when nothing matched
// or the invocation was wrong, 2 when input could not be read.
const (
	exitMatch   = 0
	exitNoMatch = 1
	exitTrouble = 2
)

// exitError carries the status a failure should end the process with.
type exitError struct {
	code   int
	err    error
	silent bool
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

var errNoMatch = &exitError{code: exitNoMatch, err: errors.New("no match"), silent: true}

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
	if err == nil {
		return exitMatch
	}

	var ee *exitError
	if !errors.As(err, &ee) {
		fmt.Fprintf(stderr, "mygrep: %v\n", err)
		return exitNoMatch
	}
	if !ee.silent {
		fmt.Fprintf(stderr, "mygrep: %v\n", ee.err)
	}
	return ee.code
}
