package versioning

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jokarl/dataver/internal/dvc"
	"github.com/jokarl/dataver/internal/process"
)

// RepositoryState is the git and dvc metadata of a working tree.
type RepositoryState interface {
	// HasMarker reports whether the .dvc directory exists.
	HasMarker() (bool, error)

	// ListRemotes returns the names of the configured dvc remotes.
	ListRemotes(ctx context.Context) ([]string, error)

	// RunCommand executes cmd in the working tree.
	RunCommand(ctx context.Context, cmd process.Command) (process.Result, error)
}

// Workspace is a RepositoryState backed by a directory and a process.Runner.
type Workspace struct {
	root   string
	runner process.Runner
	dvc    *dvc.Tool
}

// NewWorkspace returns a Workspace rooted at root.
// The runner is expected to execute commands in root.
func NewWorkspace(root string, runner process.Runner, d *dvc.Tool) *Workspace {
	if d == nil {
		d = dvc.New("")
	}
	return &Workspace{root: root, runner: runner, dvc: d}
}

// Root returns the working tree directory.
func (w *Workspace) Root() string {
	return w.root
}

// HasMarker implements RepositoryState.
func (w *Workspace) HasMarker() (bool, error) {
	info, err := os.Stat(filepath.Join(w.root, dvc.MarkerDir))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to inspect %s: %w", dvc.MarkerDir, err)
	}
	return info.IsDir(), nil
}

// ListRemotes implements RepositoryState.
func (w *Workspace) ListRemotes(ctx context.Context) ([]string, error) {
	return dvc.ListRemotes(ctx, w.runner, w.dvc)
}

// RunCommand implements RepositoryState.
func (w *Workspace) RunCommand(ctx context.Context, cmd process.Command) (process.Result, error) {
	return w.runner.Run(ctx, cmd)
}
