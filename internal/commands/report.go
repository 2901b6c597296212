package commands

import (
	"errors"
	"fmt"
	"io"

	"taskcli/internal/exitcode"
	"taskcli/internal/service"
)

// reportError prints err to errOut and returns the matching exit code.
// id is the raw <id> argument, used for not-found messages.
func reportError(errOut io.Writer, id string, err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		fmt.Fprintf(errOut, "error: task not found (ID: %s)\n", id)
		return exitcode.UserError
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrDuplicate):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StoreError
	}
}

// PrintUsage prints the usage line of cmd to out.
func PrintUsage(out io.Writer, cmd Command) {
	fmt.Fprintf(out, "Usage: %s\n", cmd.Usage())
}
