package commands

import (
	"context"
	"fmt"
	"io"

	"task/internal/config"
	"task/internal/exitcode"
	"task/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command. It is also what the dispatcher
// runs for a missing or unknown command.
type HelpCmd struct {
	// Registry lists the commands to describe. Nil means DefaultRegistry.
	Registry *Registry
}

func (c *HelpCmd) Name() string     { return "help" }
func (c *HelpCmd) Synopsis() string { return "Show usage" }
func (c *HelpCmd) Usage() string    { return "help" }
func (c *HelpCmd) NeedsStore() bool { return false }

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	registry := c.Registry
	if registry == nil {
		registry = DefaultRegistry
	}

	fmt.Fprintln(out, "Usage :-")
	for _, cmd := range registry.All() {
		fmt.Fprintf(out, "$ ./task %-22s # %s\n", cmd.Usage(), cmd.Synopsis())
	}
	return exitcode.Success
}
