package git

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jokarl/dataver/internal/process"
)

func TestErrNotARepository_Error(t *testing.T) {
	err := &ErrNotARepository{Dir: "/tmp/not-a-repo"}
	msg := err.Error()

	if !strings.Contains(msg, "/tmp/not-a-repo") {
		t.Errorf("Error() = %q, want to contain directory path", msg)
	}
	if !strings.Contains(msg, "not a git repository") {
		t.Errorf("Error() = %q, want to contain 'not a git repository'", msg)
	}
}

func TestIsAuthError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{
			name:   "SSH permission denied",
			err:    &process.ProcessError{Name: "git", Args: []string{"push"}, ExitCode: 128, Stderr: "git@github.com: Permission denied (publickey)."},
			expect: true,
		},
		{
			name:   "SSH host key verification failed",
			err:    &process.ProcessError{Name: "git", Args: []string{"push"}, ExitCode: 128, Stderr: "Host key verification failed."},
			expect: true,
		},
		{
			name:   "HTTPS authentication failed",
			err:    &process.ProcessError{Name: "git", Args: []string{"push"}, ExitCode: 128, Stderr: "fatal: Authentication failed for 'https://github.com/org/repo.git/'"},
			expect: true,
		},
		{
			name:   "HTTPS permission to repo denied",
			err:    &process.ProcessError{Name: "git", Args: []string{"push"}, ExitCode: 128, Stderr: "remote: Permission to org/repo.git denied to user."},
			expect: true,
		},
		{
			name:   "wrapped auth error",
			err:    fmt.Errorf("publish: %w", &process.ProcessError{Name: "git", Stderr: "terminal prompts disabled"}),
			expect: true,
		},
		{
			name:   "rejected non-fast-forward",
			err:    &process.ProcessError{Name: "git", Args: []string{"push"}, ExitCode: 1, Stderr: "! [rejected] main -> main (non-fast-forward)"},
			expect: false,
		},
		{
			name:   "network error",
			err:    &process.ProcessError{Name: "git", Args: []string{"push"}, ExitCode: 128, Stderr: "fatal: unable to access: Could not resolve host: github.com"},
			expect: false,
		},
		{
			name:   "generic error",
			err:    errors.New("some error"),
			expect: false,
		},
		{
			name:   "nil error",
			err:    nil,
			expect: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAuthError(tt.err); got != tt.expect {
				t.Errorf("IsAuthError() = %v, want %v", got, tt.expect)
			}
		})
	}
}
