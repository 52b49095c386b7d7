package commands

import (
	"context"
	"fmt"
	"io"

	"task/internal/config"
	"task/internal/exitcode"
	"task/internal/output"
	"task/internal/service"
)

func init() {
	Register(&LsCmd{})
}

// LsCmd implements the ls command.
// Tasks are shown sorted by priority; the numbers shown are positions in
// that sorted listing.
type LsCmd struct{}

func (c *LsCmd) Name() string { return "ls" }
func (c *LsCmd) Synopsis() string {
	return "Show incomplete priority list items sorted by priority in ascending order"
}
func (c *LsCmd) Usage() string    { return "ls" }
func (c *LsCmd) NeedsStore() bool { return true }

func (c *LsCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	tasks, err := svc.Pending(ctx)
	if err != nil {
		return storeError(output.NewMessenger(cfg.Color), errOut, err)
	}

	if len(tasks) == 0 {
		fmt.Fprintln(out, "There are no pending tasks!")
		return exitcode.Success
	}

	for i, task := range service.SortByPriority(tasks) {
		output.FormatTask(out, i+1, task)
	}
	return exitcode.Success
}
