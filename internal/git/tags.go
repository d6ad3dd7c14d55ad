package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/jokarl/dataver/internal/process"
	"github.com/jokarl/dataver/internal/types"
)

// VersionTagPattern matches data version tags.
const VersionTagPattern = "v*"

// ParseVersionTags extracts data versions from `git tag --list` output.
// Tags that are not of the form "v{n}" are ignored.
func ParseVersionTags(out string) []types.Version {
	var versions []types.Version
	for _, tag := range strings.Fields(out) {
		v, err := types.ParseVersion(tag)
		if err != nil {
			continue
		}
		versions = append(versions, v)
	}
	return versions
}

// LatestVersion returns the highest data version tag, and false if none exist.
func LatestVersion(ctx context.Context, r process.Runner, t *Tool) (types.Version, bool, error) {
	res, err := r.Run(ctx, t.ListTags(VersionTagPattern))
	if err != nil {
		return 0, false, fmt.Errorf("failed to list version tags: %w", err)
	}

	versions := ParseVersionTags(res.Stdout)
	if len(versions) == 0 {
		return 0, false, nil
	}

	latest := versions[0]
	for _, v := range versions[1:] {
		if v > latest {
			latest = v
		}
	}
	return latest, true, nil
}
