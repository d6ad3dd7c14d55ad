package git

import (
	"context"
	"path/filepath"

	"github.com/jokarl/dataver/internal/process"
)

// FindRoot finds the root directory of the git repository containing dir.
// Returns the path to the repository root, or an error if dir is not in a git repository.
func FindRoot(ctx context.Context, t *Tool, dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	r := process.NewExec(process.ExecOptions{Dir: absDir})
	res, err := r.Run(ctx, t.ShowToplevel())
	if err != nil {
		return "", &ErrNotARepository{Dir: dir}
	}

	return res.Stdout, nil
}
