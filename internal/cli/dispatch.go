package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"task/internal/commands"
	"task/internal/config"
	"task/internal/exitcode"
	"task/internal/logging"
	"task/internal/service"
)

// ServiceFactory creates a Service from config.
// Used to inject the task store during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config, logger *log.Logger) (service.Service, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	dir      string
	factory  ServiceFactory
}

// NewDispatcher creates a new dispatcher with the given registry, working
// directory and service factory.
func NewDispatcher(registry *commands.Registry, dir string, factory ServiceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		dir:      dir,
		factory:  factory,
	}
}

// Run dispatches args[0] as the command name with the remaining args.
// There are no flags: every argument is passed to the command as is.
// Errors are reported on errOut; the exit code is always exitcode.Success.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	name := "help"
	var rest []string
	if len(args) > 0 {
		name, rest = args[0], args[1:]
	}

	cmd, known := d.registry.Find(name)
	if !known {
		// Unknown commands get the usage text.
		cmd, known = d.registry.Find("help")
		if !known {
			fmt.Fprintf(errOut, "error: unknown command: %s\n", name)
			return exitcode.Success
		}
		rest = nil
	}

	cfg, err := config.Load(d.dir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		if cmd.NeedsStore() {
			return exitcode.Success
		}
		// help does not depend on the settings file.
		cfg = config.New(d.dir)
	}
	logger := logging.New(errOut, cfg.LogLevel)
	if name != cmd.Name() {
		logger.Debug("unknown command", "command", name)
	}

	var svc service.Service
	if cmd.NeedsStore() {
		svc, err = d.factory(ctx, cfg, logger)
		if err != nil {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return exitcode.Success
		}
	}

	logger.Debug("dispatch", "command", cmd.Name(), "args", len(rest))
	return cmd.Run(ctx, cfg, svc, rest, out, errOut)
}
