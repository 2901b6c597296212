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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string          { return "help" }
func (c *HelpCmd) Aliases() []string     { return nil }
func (c *HelpCmd) Synopsis() string      { return "Print usage" }
func (c *HelpCmd) Usage() string         { return "taskcli help" }
func (c *HelpCmd) Arity() (min, max int) { return 0, AnyArgs }
func (c *HelpCmd) NeedsStore() bool      { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	PrintHelp(out)
	return exitcode.Success
}

// PrintHelp writes the full usage text.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, helpText)
}

const helpText = `Usage:
  taskcli add [common flags] <description> <author>
  taskcli list [common flags] [--format text|json|yaml] [<status>]
  taskcli update [common flags] <id> <newDescription>
  taskcli delete [common flags] <id>
  taskcli mark-in-progress [common flags] <id>
  taskcli mark-done [common flags] <id>
  taskcli help
  taskcli version

Statuses: todo, in-progress, done

Common flags:
  --file <path>    Task store (default: tasks.json)
  --config <path>  Config file (default: taskcli.toml if present)
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

Flags may appear anywhere on the line. Everything after a bare -- is taken
as an argument, e.g. taskcli add -- "--dry-run mode" alice
`
