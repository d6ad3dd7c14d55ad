package versioning

import (
	"context"
	"strings"

	"github.com/jokarl/dataver/internal/process"
)

// fakeRepo simulates git and dvc metadata. Commands succeed with empty output
// unless scripted in outputs or failures.
type fakeRepo struct {
	marker    bool
	remotes   []string
	remoteErr error

	outputs  map[string]string
	failures map[string]*process.ProcessError

	commands []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		outputs:  map[string]string{},
		failures: map[string]*process.ProcessError{},
	}
}

func (f *fakeRepo) HasMarker() (bool, error) {
	return f.marker, nil
}

func (f *fakeRepo) ListRemotes(context.Context) ([]string, error) {
	if f.remoteErr != nil {
		return nil, f.remoteErr
	}
	return f.remotes, nil
}

func (f *fakeRepo) RunCommand(_ context.Context, cmd process.Command) (process.Result, error) {
	line := cmd.String()
	f.commands = append(f.commands, line)

	if perr, ok := f.failures[line]; ok {
		return process.Result{}, perr
	}

	switch {
	case line == "dvc init":
		f.marker = true
	case strings.HasPrefix(line, "dvc remote add -d "):
		f.remotes = append(f.remotes, cmd.Args[3])
	}

	return process.Result{Stdout: f.outputs[line]}, nil
}

// mutating returns recorded commands that are not read-only queries.
func (f *fakeRepo) mutating() []string {
	var out []string
	for _, c := range f.commands {
		if strings.HasPrefix(c, "dvc status") || strings.HasPrefix(c, "git tag --list") {
			continue
		}
		out = append(out, c)
	}
	return out
}

func fail(name string, args ...string) *process.ProcessError {
	return &process.ProcessError{Name: name, Args: args, ExitCode: 1, Stderr: "boom"}
}
