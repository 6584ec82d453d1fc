package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/launcher"
	"github.com/cargo-launcher/cargo-launcher/internal/core/ports"
)

// Executor implements the CommandRunner interface on top of os/exec
type Executor struct {
	workDir    string
	strictExit bool
	log        zerolog.Logger
}

// Option configures an Executor
type Option func(*Executor)

// WithWorkDir runs commands from dir instead of the current directory
func WithWorkDir(dir string) Option {
	return func(e *Executor) { e.workDir = dir }
}

// WithStrictExit makes a non-zero exit status an error
func WithStrictExit(strict bool) Option {
	return func(e *Executor) { e.strictExit = strict }
}

// NewExecutor creates a new process executor
func NewExecutor(log zerolog.Logger, opts ...Option) *Executor {
	e := &Executor{log: log}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes program and captures its standard output.
func (e *Executor) Run(ctx context.Context, program string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, program, args...)
	if e.workDir != "" {
		cmd.Dir = e.workDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	e.log.Debug().Str("program", program).Strs("args", args).Msg("running command")

	err := cmd.Run()
	if err == nil {
		return stdout.String(), nil
	}

	// a killed child also reports an ExitError
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", fmt.Errorf("%s interrupted: %w", program, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		event := e.log.Warn()
		if e.strictExit {
			event = e.log.Error()
		}
		event.Int("exit_code", exitErr.ExitCode()).
			Str("program", program).
			Str("stderr", strings.TrimSpace(stderr.String())).
			Msg("command exited with non-zero status")

		if e.strictExit {
			return stdout.String(), fmt.Errorf("%w: %s exited with status %d", launcher.ErrProcessExit, program, exitErr.ExitCode())
		}
		return stdout.String(), nil
	}

	return "", fmt.Errorf("%w: failed to start %s: %w", launcher.ErrProcessSpawn, program, err)
}

var _ ports.CommandRunner = (*Executor)(nil)
