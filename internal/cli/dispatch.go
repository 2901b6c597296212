// Package cli parses the command line and dispatches to commands.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"taskcli/internal/commands"
	"taskcli/internal/config"
	"taskcli/internal/exitcode"
	"taskcli/internal/logging"
	"taskcli/internal/service"
)

// ServiceFactory creates a Service from config.
// Used to inject the backend during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config, logger *log.Logger) (service.Service, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
}

// NewDispatcher creates a new dispatcher with the given registry and service factory.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// args excludes the program name. Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		commands.PrintHelp(out)
		return exitcode.UserError
	}

	cmdName := args[0]
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(out, "Unknown command: %s\n", cmdName)
		fmt.Fprintf(out, "Run '%s help' for usage.\n", config.AppName)
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var (
		configPath string
		file       string
		quiet      bool
		debug      bool
	)
	fs.StringVar(&configPath, "config", "", "")
	fs.StringVar(&file, "file", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	cmd.RegisterFlags(fs)

	positional, err := splitArgs(fs, args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	if !commands.ArityOK(cmd, len(positional)) {
		commands.PrintUsage(out, cmd)
		return exitcode.UserError
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	if file != "" {
		cfg.File = file
	}
	if quiet {
		cfg.Quiet = true
	}
	cfg.Debug = debug

	logger := logging.NewFromConfig(errOut, cfg.EffectiveLogLevel(), cfg.LogFormat)
	logger.Debug("dispatch", "command", cmd.Name(), "args", len(positional), "file", cfg.File, "config", cfg.Source)

	var svc service.Service
	if cmd.NeedsStore() {
		if d.factory == nil {
			fmt.Fprintln(errOut, "error: no task store configured")
			return exitcode.StoreError
		}
		svc, err = d.factory(ctx, cfg, logger)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.StoreError
		}
	}

	return cmd.Run(ctx, cfg, svc, positional, out, errOut)
}

// splitArgs separates flags from positional arguments.
//
// Flags may appear before, between or after positional arguments. A token
// starting with "--" must name a defined flag. A single-dash token that names
// no flag is data, so "-1" or "-draft notes" reach the command as written.
// Everything after a bare "--" is positional.
func splitArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	positional := []string{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(positional, args[i+1:]...), nil
		}

		name, ok := flagName(arg)
		if !ok {
			positional = append(positional, arg)
			continue
		}
		f := fs.Lookup(name)
		if f == nil {
			if strings.HasPrefix(arg, "--") {
				return nil, fmt.Errorf("unknown flag: %s", arg)
			}
			positional = append(positional, arg)
			continue
		}

		chunk := args[i : i+1]
		if !strings.Contains(arg, "=") && !isBoolFlag(f) && i+1 < len(args) {
			chunk = args[i : i+2]
			i++
		}
		if err := fs.Parse(chunk); err != nil {
			return nil, err
		}
	}
	return positional, nil
}

// flagName returns the flag name in "-name", "--name" or "--name=value".
func flagName(arg string) (string, bool) {
	if len(arg) < 2 || arg[0] != '-' {
		return "", false
	}
	name := strings.TrimPrefix(arg[1:], "-")
	name, _, _ = strings.Cut(name, "=")
	return name, name != ""
}

func isBoolFlag(f *flag.Flag) bool {
	bf, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && bf.IsBoolFlag()
}
