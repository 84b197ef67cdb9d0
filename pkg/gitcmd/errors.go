package gitcmd

import (
	"fmt"
	"strings"
)

// CommandError reports a git invocation that failed, either because the
// process could not be started or because it exited non-zero.
type CommandError struct {
	// Args is the full command line, including the git binary.
	Args []string

	// ExitCode is the exit code, or -1 if the process never started.
	ExitCode int

	// Err is the underlying error from the execution.
	Err error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	cmdline := strings.Join(e.Args, " ")
	if e.ExitCode < 0 {
		return fmt.Sprintf("failed to run %q: %v", cmdline, e.Err)
	}
	return fmt.Sprintf("command %q failed with exit code %d", cmdline, e.ExitCode)
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Err
}
