package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskcli/internal/config"
	"taskcli/internal/exitcode"
	"taskcli/internal/service"
)

func init() {
	Register(&UpdateCmd{})
}

// UpdateCmd implements the update command.
type UpdateCmd struct{}

func (c *UpdateCmd) Name() string          { return "update" }
func (c *UpdateCmd) Aliases() []string     { return nil }
func (c *UpdateCmd) Synopsis() string      { return "Change a task description" }
func (c *UpdateCmd) Usage() string         { return "taskcli update <id> <newDescription>" }
func (c *UpdateCmd) Arity() (min, max int) { return 2, 2 }
func (c *UpdateCmd) NeedsStore() bool      { return true }

func (c *UpdateCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UpdateCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id := ParseTaskID(args[0])

	task, err := svc.Update(ctx, id.Num, args[1])
	if err != nil {
		return reportError(errOut, id.Raw, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "Task updated successfully (ID: %d)\n", task.ID)
	}
	return exitcode.Success
}
