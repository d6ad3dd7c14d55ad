// Package git builds the git invocations dataver issues and parses their output.
//
// This package delegates all git operations to the system git binary through a
// process.Runner, leveraging the user's existing git configuration for
// authentication. It does not implement any platform-specific code (GitHub,
// GitLab, etc.) and does not store or manage credentials.
//
// Key features:
//   - Command builders for staging, committing, tagging and pushing
//   - Tag list parsing for "v{n}" data version labels
//   - Git version detection and validation (minimum: 2.5)
//   - Repository root discovery
//   - Stderr classification for authentication failures
//
// Example usage:
//
//	g := git.New("git")
//	if _, err := runner.Run(ctx, g.Commit("Initialized DVC")); err != nil {
//	    return err
//	}
//
//	// Check git version
//	if err := git.CheckMinVersion(ctx, runner, g); err != nil {
//	    return err
//	}
package git
