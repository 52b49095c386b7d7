// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"io"

	"task/internal/config"
	"task/internal/exitcode"
	"task/internal/output"
	"task/internal/service"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the invocation shown in help output, without the
	// program name.
	Usage() string

	// NeedsStore returns true if the command reads or writes tasks.
	// help returns false so it works without a usable store.
	NeedsStore() bool

	// Run executes the command.
	// cfg is always provided.
	// svc is nil if NeedsStore() returns false.
	// args contains the arguments after the command name.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int
}

// storeError reports an error returned by the store that the command has
// no specific message for.
func storeError(msg *output.Messenger, errOut io.Writer, err error) int {
	msg.Errorf(errOut, "%v", err)
	return exitcode.Success
}
