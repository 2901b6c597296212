package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"taskcli/internal/config"
	"taskcli/internal/exitcode"
	"taskcli/internal/output"
	"taskcli/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `taskcli list` and `taskcli list <status>`.
type ListCmd struct {
	format string
}

// SetFormat sets the output format (for testing).
func (c *ListCmd) SetFormat(format string) {
	c.format = format
}

func (c *ListCmd) Name() string          { return "list" }
func (c *ListCmd) Aliases() []string     { return []string{"ls"} }
func (c *ListCmd) Synopsis() string      { return "List tasks, optionally by status" }
func (c *ListCmd) Usage() string         { return "taskcli list [--format text|json|yaml] [<status>]" }
func (c *ListCmd) Arity() (min, max int) { return 0, 1 }
func (c *ListCmd) NeedsStore() bool      { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", string(output.FormatText), "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	format, err := output.ParseFormat(c.format)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	// An unknown status is not an error; it just matches nothing.
	var status service.Status
	if len(args) == 1 {
		status = service.Status(args[0])
	}

	tasks, err := svc.List(ctx, status)
	if err != nil {
		if !errors.Is(err, service.ErrMalformed) {
			return reportError(errOut, "", err)
		}
		// Report it, then carry on as an empty store.
		fmt.Fprintf(errOut, "error: %v\n", err)
		tasks = nil
	}

	if err := output.WriteTasks(out, format, tasks); err != nil {
		fmt.Fprintf(errOut, "error: write output: %v\n", err)
		return exitcode.StoreError
	}

	// stdout carries rows only
	if len(tasks) == 0 && format == output.FormatText && !cfg.Quiet {
		fmt.Fprintln(errOut, "no tasks found")
	}
	return exitcode.Success
}
