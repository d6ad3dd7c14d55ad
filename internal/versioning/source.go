package versioning

import (
	"context"

	"github.com/jokarl/dataver/internal/git"
	"github.com/jokarl/dataver/internal/process"
	"github.com/jokarl/dataver/internal/types"
)

// VersionSource computes the version being replaced and the one to publish.
type VersionSource interface {
	Next(ctx context.Context) (current, next types.Version, err error)
}

// FixedBaseline always reports Base as the current version.
// With the zero value every publish is tagged v1.
type FixedBaseline struct {
	Base types.Version
}

// Next implements VersionSource.
func (f FixedBaseline) Next(context.Context) (types.Version, types.Version, error) {
	return f.Base, f.Base.Next(), nil
}

// TagHistory derives the current version from the highest "v{n}" git tag.
type TagHistory struct {
	Repo RepositoryState
	Git  *git.Tool
}

// Next implements VersionSource.
func (h TagHistory) Next(ctx context.Context) (types.Version, types.Version, error) {
	tool := h.Git
	if tool == nil {
		tool = git.New("")
	}
	latest, _, err := git.LatestVersion(ctx, process.RunnerFunc(h.Repo.RunCommand), tool)
	if err != nil {
		return 0, 0, err
	}
	return latest, latest.Next(), nil
}
