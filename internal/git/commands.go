package git

import (
	"github.com/jokarl/dataver/internal/process"
)

// DefaultBinary is the executable used when none is configured.
const DefaultBinary = "git"

// Tool builds git commands for a specific binary.
type Tool struct {
	Bin string
}

// New returns a Tool for bin, falling back to DefaultBinary.
func New(bin string) *Tool {
	if bin == "" {
		bin = DefaultBinary
	}
	return &Tool{Bin: bin}
}

func (t *Tool) cmd(readOnly bool, args ...string) process.Command {
	return process.Command{Name: t.Bin, Args: args, ReadOnly: readOnly}
}

// Add stages paths.
func (t *Tool) Add(paths ...string) process.Command {
	return t.cmd(false, append([]string{"add"}, paths...)...)
}

// Commit records staged changes, bypassing pre-commit and commit-msg hooks.
func (t *Tool) Commit(message string) process.Command {
	return t.cmd(false, "commit", "-nm", message)
}

// Tag creates an annotated tag on HEAD.
func (t *Tool) Tag(name, message string) process.Command {
	return t.cmd(false, "tag", "-a", name, "-m", message)
}

// PushFollowTags pushes the current branch and any annotated tags reachable from it.
func (t *Tool) PushFollowTags() process.Command {
	return t.cmd(false, "push", "--follow-tags")
}

// ForcePushTags pushes every local tag, overwriting remote tags of the same name.
func (t *Tool) ForcePushTags() process.Command {
	return t.cmd(false, "push", "-f", "--tags")
}

// ListTags lists tags matching pattern.
func (t *Tool) ListTags(pattern string) process.Command {
	return t.cmd(true, "tag", "--list", pattern)
}

// ShowToplevel prints the repository root.
func (t *Tool) ShowToplevel() process.Command {
	return t.cmd(true, "rev-parse", "--show-toplevel")
}

// Version prints the git version.
func (t *Tool) Version() process.Command {
	return t.cmd(true, "--version")
}
