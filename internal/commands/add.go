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
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string          { return "add" }
func (c *AddCmd) Aliases() []string     { return []string{"create"} }
func (c *AddCmd) Synopsis() string      { return "Create a task" }
func (c *AddCmd) Usage() string         { return "taskcli add <description> <author>" }
func (c *AddCmd) Arity() (min, max int) { return 2, 2 }
func (c *AddCmd) NeedsStore() bool      { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	task, err := svc.Add(ctx, args[0], args[1])
	if err != nil {
		return reportError(errOut, "", err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "Task added successfully (ID: %d)\n", task.ID)
	}
	return exitcode.Success
}
