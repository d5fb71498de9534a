// Package installer runs the external commands lintkit delegates to:
// package-manager installs and the config migration tool.
package installer

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	lkerrors "github.com/wexinc/lintkit/internal/errors"
	"github.com/wexinc/lintkit/internal/logging"
)

// Runner executes one shell command line to completion.
type Runner interface {
	Run(ctx context.Context, command string) error
}

// ShellRunner runs commands through sh -c in Dir. Output streams straight
// through to the configured writers so package-manager progress stays visible.
type ShellRunner struct {
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *logging.Logger
}

// NewShellRunner creates a ShellRunner in dir wired to the process's stdio.
func NewShellRunner(dir string) *ShellRunner {
	return &ShellRunner{
		Dir:    dir,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logging.Global(),
	}
}

// Run blocks until the command exits. A non-zero exit, or a failure to
// start the shell, is returned as a CommandFailed error.
func (r *ShellRunner) Run(ctx context.Context, command string) error {
	log := r.Logger
	if log == nil {
		log = logging.Global()
	}
	log.Info("running command", "command", command, "dir", r.Dir)

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = r.Dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		exitCode := 1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		log.Error("command failed", "command", command, "exit_code", exitCode, "error", err)
		return lkerrors.CommandFailed(command, exitCode, err)
	}

	log.Debug("command finished", "command", command)
	return nil
}
