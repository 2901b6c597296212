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
	Register(&DeleteCmd{})
}

// DeleteCmd implements the delete command.
type DeleteCmd struct{}

func (c *DeleteCmd) Name() string          { return "delete" }
func (c *DeleteCmd) Aliases() []string     { return []string{"rm"} }
func (c *DeleteCmd) Synopsis() string      { return "Delete a task" }
func (c *DeleteCmd) Usage() string         { return "taskcli delete <id>" }
func (c *DeleteCmd) Arity() (min, max int) { return 1, 1 }
func (c *DeleteCmd) NeedsStore() bool      { return true }

func (c *DeleteCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DeleteCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id := ParseTaskID(args[0])

	if err := svc.Delete(ctx, id.Num); err != nil {
		return reportError(errOut, id.Raw, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "Task deleted successfully (ID: %d)\n", id.Num)
	}
	return exitcode.Success
}
