package ports

import "context"

// CommandRunner executes external programs
type CommandRunner interface {
	// Run starts program with args, waits for it and returns its standard output.
	// Failing to start the program is an error; the exit status is only
	// reported when the runner is configured to be strict about it.
	Run(ctx context.Context, program string, args ...string) (string, error)
}
