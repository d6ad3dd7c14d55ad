package process

import (
	"fmt"
	"strings"
)

// ErrExecutableNotFound is returned when a binary is not installed or not in PATH.
type ErrExecutableNotFound struct {
	Name string
}

func (e *ErrExecutableNotFound) Error() string {
	return fmt.Sprintf("%s is not installed or not in PATH", e.Name)
}

// ProcessError wraps a failed command execution with full context.
type ProcessError struct {
	Name     string
	Args     []string
	ExitCode int
	Stderr   string
	TimedOut bool
}

func (e *ProcessError) Error() string {
	sub := ""
	if len(e.Args) > 0 {
		sub = " " + e.Args[0]
	}
	if e.TimedOut {
		return fmt.Sprintf("%s%s timed out", e.Name, sub)
	}
	if e.Stderr != "" {
		return fmt.Sprintf("%s%s failed (exit %d): %s", e.Name, sub, e.ExitCode, strings.TrimSpace(e.Stderr))
	}
	return fmt.Sprintf("%s%s failed (exit %d)", e.Name, sub, e.ExitCode)
}

// Command returns the failed command.
func (e *ProcessError) Command() Command {
	return Command{Name: e.Name, Args: e.Args}
}
