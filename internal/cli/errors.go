package cli

import "errors"

// Sentinel errors returned by the selectlist commands.
var (
	// ErrNotInteractive is returned by pick when no terminal is available for input: stdin, or
	// the controlling terminal when the items are read from stdin.
	ErrNotInteractive = errors.New("pick needs an interactive terminal")
	// ErrCancelled is returned by pick when the user quits without confirming.
	ErrCancelled = errors.New("selection cancelled")
	// ErrUnknownKey is returned by render when --select or --focus names a missing item.
	ErrUnknownKey = errors.New("unknown item key")
	// ErrNoItems is returned when neither an item file nor arguments were given.
	ErrNoItems = errors.New("no items given: pass labels as arguments or use --items")
)

// exitCodeCancelled matches the shell convention for an interrupted command.
const exitCodeCancelled = 130

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrCancelled):
		return exitCodeCancelled
	default:
		return 1
	}
}
