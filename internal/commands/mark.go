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
	Register(NewMarkCmd(service.StatusInProgress))
	Register(NewMarkCmd(service.StatusDone, "done"))
}

// MarkCmd implements the mark-<status> commands.
type MarkCmd struct {
	status  service.Status
	aliases []string
}

// NewMarkCmd creates the command that moves a task to status.
func NewMarkCmd(status service.Status, aliases ...string) *MarkCmd {
	return &MarkCmd{status: status, aliases: aliases}
}

func (c *MarkCmd) Name() string          { return "mark-" + string(c.status) }
func (c *MarkCmd) Aliases() []string     { return c.aliases }
func (c *MarkCmd) Synopsis() string      { return fmt.Sprintf("Mark a task %s", c.status) }
func (c *MarkCmd) Usage() string         { return fmt.Sprintf("taskcli %s <id>", c.Name()) }
func (c *MarkCmd) Arity() (min, max int) { return 1, 1 }
func (c *MarkCmd) NeedsStore() bool      { return true }

func (c *MarkCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *MarkCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id := ParseTaskID(args[0])

	task, err := svc.MarkStatus(ctx, id.Num, c.status)
	if err != nil {
		return reportError(errOut, id.Raw, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "Task marked %s (ID: %d)\n", task.Status, task.ID)
	}
	return exitcode.Success
}
