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
	Register(&ReportCmd{})
}

// ReportCmd implements the report command.
// Unlike ls, pending tasks are shown in stored order, unsorted.
type ReportCmd struct{}

func (c *ReportCmd) Name() string     { return "report" }
func (c *ReportCmd) Synopsis() string { return "Statistics" }
func (c *ReportCmd) Usage() string    { return "report" }
func (c *ReportCmd) NeedsStore() bool { return true }

func (c *ReportCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	pending, err := svc.Pending(ctx)
	if err != nil {
		return storeError(output.NewMessenger(cfg.Color), errOut, err)
	}
	completed, err := svc.Completed(ctx)
	if err != nil {
		return storeError(output.NewMessenger(cfg.Color), errOut, err)
	}

	output.FormatCount(out, "Pending", len(pending))
	for i, task := range pending {
		output.FormatTask(out, i+1, task)
	}

	fmt.Fprintln(out)

	output.FormatCount(out, "Completed", len(completed))
	for i, task := range completed {
		output.FormatCompleted(out, i+1, task)
	}
	return exitcode.Success
}
