// Package exitcode defines exit codes for the CLI.
package exitcode

// Every error, from bad arguments to an unwritable task file or a broken
// settings file, is reported on stderr and the process still exits with
// Success.
const (
	// Success indicates the command was handled.
	Success = 0
)
