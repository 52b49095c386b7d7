package commands

import (
	"context"
	"errors"
	"io"
	"strings"

	"task/internal/config"
	"task/internal/exitcode"
	"task/internal/output"
	"task/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string { return "add" }
func (c *AddCmd) Synopsis() string {
	return `Add a new item with priority 2 and text "hello world" to the list`
}
func (c *AddCmd) Usage() string    { return `add 2 "hello world"` }
func (c *AddCmd) NeedsStore() bool { return true }

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	msg := output.NewMessenger(cfg.Color)

	// Exactly a priority and one description argument; unquoted words are
	// never joined.
	if len(args) != 2 {
		msg.Errorf(errOut, "Missing tasks string. Nothing added!")
		return exitcode.Success
	}

	priority, err := service.ParsePriority(args[0])
	if err != nil {
		msg.Errorf(errOut, "Priority should be a non-negative integer. Nothing added!")
		return exitcode.Success
	}

	description := service.NormalizeDescription(unquote(args[1]))
	if strings.TrimSpace(description) == "" {
		msg.Errorf(errOut, "Missing tasks string. Nothing added!")
		return exitcode.Success
	}

	if err := svc.Add(ctx, service.Task{Priority: priority, Description: description}); err != nil {
		if errors.Is(err, service.ErrInvalidPriority) {
			msg.Errorf(errOut, "Priority should be a non-negative integer. Nothing added!")
			return exitcode.Success
		}
		return storeError(msg, errOut, err)
	}

	msg.Okf(out, "Added task: \"%s\" with priority %d", description, priority)
	return exitcode.Success
}

// unquote strips one pair of surrounding double quotes, for shells that
// pass them through.
func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
