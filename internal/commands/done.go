package commands

import (
	"context"
	"errors"
	"io"
	"strconv"

	"task/internal/config"
	"task/internal/exitcode"
	"task/internal/output"
	"task/internal/service"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string     { return "done" }
func (c *DoneCmd) Synopsis() string { return "Mark the incomplete item with the given index as complete" }
func (c *DoneCmd) Usage() string    { return "done INDEX" }
func (c *DoneCmd) NeedsStore() bool { return true }

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	msg := output.NewMessenger(cfg.Color)

	if len(args) != 1 {
		msg.Errorf(errOut, "Missing NUMBER for marking tasks as done.")
		return exitcode.Success
	}

	index, ok := parseIndex(args[0])
	if !ok {
		msg.Errorf(errOut, "no incomplete item with index #%s exists.", args[0])
		return exitcode.Success
	}

	if _, err := svc.Complete(ctx, index); err != nil {
		if errors.Is(err, service.ErrIndexOutOfRange) {
			msg.Errorf(errOut, "no incomplete item with index #%d exists.", index)
			return exitcode.Success
		}
		return storeError(msg, errOut, err)
	}

	msg.Okf(out, "Marked item as done.")
	return exitcode.Success
}

// parseIndex parses a 1-based task index argument. Range is checked by
// the store against the current list.
func parseIndex(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
