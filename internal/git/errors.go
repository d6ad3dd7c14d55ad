package git

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jokarl/dataver/internal/process"
)

// ErrNotARepository is returned when the directory is not inside a git repository.
type ErrNotARepository struct {
	Dir string
}

func (e *ErrNotARepository) Error() string {
	return fmt.Sprintf("'%s' is not a git repository (or any parent directory)", e.Dir)
}

// ErrVersionTooOld is returned when git version is below the minimum required.
type ErrVersionTooOld struct {
	Current  string
	Required string
}

func (e *ErrVersionTooOld) Error() string {
	return fmt.Sprintf("git version %s is below minimum required %s\n\n"+
		"Please upgrade git: https://git-scm.com/downloads", e.Current, e.Required)
}

// IsAuthError returns true if the error indicates an authentication failure.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}

	var perr *process.ProcessError
	if !errors.As(err, &perr) {
		return false
	}

	return isAuthErrorStderr(strings.ToLower(perr.Stderr))
}

// isAuthErrorStderr checks stderr content for authentication error patterns.
func isAuthErrorStderr(stderr string) bool {
	// SSH authentication failures
	if strings.Contains(stderr, "permission denied") ||
		strings.Contains(stderr, "publickey") ||
		strings.Contains(stderr, "authentication failed") ||
		strings.Contains(stderr, "could not read from remote repository") ||
		strings.Contains(stderr, "host key verification failed") ||
		strings.Contains(stderr, "connection refused") {
		return true
	}

	// HTTPS authentication failures
	if strings.Contains(stderr, "401") ||
		strings.Contains(stderr, "403") ||
		strings.Contains(stderr, "authentication") ||
		strings.Contains(stderr, "invalid credentials") ||
		strings.Contains(stderr, "could not authenticate") ||
		strings.Contains(stderr, "terminal prompts disabled") ||
		strings.Contains(stderr, "permission to") { // e.g. "Permission to org/repo.git denied"
		return true
	}

	return false
}
