// Package execute runs built yt-dlp commands.
package execute

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"subgrab/internal/domain/errs"
	"subgrab/internal/domain/logger"
)

// Executor is the process-execution boundary: it runs argv to completion and reports its exit code.
//
// A non-nil error means the process could not be started at all.
type Executor interface {
	Execute(ctx context.Context, argv []string) (int, error)
}

// ProcessExecutor runs commands as child processes. Nil streams default to the program's own.
type ProcessExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Execute starts argv[0] with the remaining arguments and waits for it to exit.
func (p ProcessExecutor) Execute(ctx context.Context, argv []string) (int, error) {
	if len(argv) == 0 {
		return -1, fmt.Errorf("%w: empty command", errs.ErrConfiguration)
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = orReader(p.Stdin, os.Stdin)
	cmd.Stdout = orWriter(p.Stdout, os.Stdout)
	cmd.Stderr = orWriter(p.Stderr, os.Stderr)

	if err := cmd.Start(); err != nil {
		return -1, fmt.Errorf("%w: %v", errs.ErrLaunchFailure, err)
	}
	logger.Pl.D(2, "Started %s (PID: %d)", argv[0], cmd.Process.Pid)

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) && cmd.ProcessState == nil {
			return -1, fmt.Errorf("waiting for %s: %w", argv[0], err)
		}
	}
	return cmd.ProcessState.ExitCode(), nil
}

func orReader(r, def io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return def
}

func orWriter(w, def io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return def
}
