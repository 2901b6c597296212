// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"taskcli/internal/config"
	"taskcli/internal/service"
)

// AnyArgs is the maximum arity of a command that accepts any number of arguments.
const AnyArgs = -1

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string, printed on arity errors.
	Usage() string

	// Arity returns the accepted number of positional arguments.
	// max is AnyArgs when unbounded.
	Arity() (min, max int)

	// NeedsStore returns true if the command reads or writes tasks.
	// Commands like help and version return false.
	NeedsStore() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided.
	// svc is nil if NeedsStore() returns false.
	// args contains positional arguments after flag parsing; their count has
	// already been checked against Arity.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int
}

// ArityOK reports whether n positional arguments satisfy cmd.
func ArityOK(cmd Command, n int) bool {
	min, max := cmd.Arity()
	if n < min {
		return false
	}
	return max == AnyArgs || n <= max
}
