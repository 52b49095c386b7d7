package commands

import (
	"context"
	"errors"
	"io"

	"task/internal/config"
	"task/internal/exitcode"
	"task/internal/output"
	"task/internal/service"
)

func init() {
	Register(&DelCmd{})
}

// DelCmd implements the del command.
type DelCmd struct{}

func (c *DelCmd) Name() string     { return "del" }
func (c *DelCmd) Synopsis() string { return "Delete the incomplete item with the given index" }
func (c *DelCmd) Usage() string    { return "del INDEX" }
func (c *DelCmd) NeedsStore() bool { return true }

func (c *DelCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	msg := output.NewMessenger(cfg.Color)

	if len(args) != 1 {
		msg.Errorf(errOut, "Missing NUMBER for deleting tasks.")
		return exitcode.Success
	}

	index, ok := parseIndex(args[0])
	if !ok {
		msg.Errorf(errOut, "task with index #%s does not exist. Nothing deleted.", args[0])
		return exitcode.Success
	}

	if _, err := svc.Delete(ctx, index); err != nil {
		if errors.Is(err, service.ErrIndexOutOfRange) {
			msg.Errorf(errOut, "task with index #%d does not exist. Nothing deleted.", index)
			return exitcode.Success
		}
		return storeError(msg, errOut, err)
	}

	msg.Okf(out, "Deleted task #%d", index)
	return exitcode.Success
}
