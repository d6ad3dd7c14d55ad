package process

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// ExecOptions configures how commands are executed.
type ExecOptions struct {
	// Dir is the working directory for every command.
	// If empty, the current working directory is used.
	Dir string

	// Env contains additional environment variables.
	// These are appended to the current environment.
	Env []string

	// Timeout bounds each command. Zero disables the limit.
	Timeout time.Duration

	// Logger receives one debug line per command. Defaults to a null logger.
	Logger hclog.Logger
}

// Exec runs commands as child processes.
type Exec struct {
	opts ExecOptions
	log  hclog.Logger
}

// NewExec creates a runner backed by os/exec.
func NewExec(opts ExecOptions) *Exec {
	log := opts.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Exec{opts: opts, log: log}
}

// Available returns true if the named executable is installed and in PATH.
func Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Run executes cmd and returns its trimmed stdout.
// A non-zero exit is returned as a *ProcessError with stderr context.
func (e *Exec) Run(ctx context.Context, cmd Command) (Result, error) {
	if !Available(cmd.Name) {
		return Result{}, &ErrExecutableNotFound{Name: cmd.Name}
	}

	if e.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Stdout = &stdout
	c.Stderr = &stderr
	c.Dir = e.opts.Dir

	// Inherit environment for credentials, SSH config, etc.
	c.Env = os.Environ()
	if len(e.opts.Env) > 0 {
		c.Env = append(c.Env, e.opts.Env...)
	}

	start := time.Now()
	err := c.Run()
	elapsed := time.Since(start)

	if err != nil {
		perr := &ProcessError{
			Name:     cmd.Name,
			Args:     cmd.Args,
			ExitCode: 1,
			Stderr:   stderr.String(),
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			perr.ExitCode = exitErr.ExitCode()
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			perr.TimedOut = true
		}
		e.log.Debug("command failed", "cmd", cmd.String(), "exit", perr.ExitCode, "duration", elapsed)
		return Result{}, perr
	}

	e.log.Debug("command finished", "cmd", cmd.String(), "exit", 0, "duration", elapsed)
	return Result{Stdout: strings.TrimSpace(stdout.String())}, nil
}
