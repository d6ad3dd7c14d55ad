package dvc

import (
	"path/filepath"

	"github.com/jokarl/dataver/internal/process"
)

// DefaultBinary is the executable used when none is configured.
const DefaultBinary = "dvc"

// MarkerDir is the directory `dvc init` creates at the repository root.
const MarkerDir = ".dvc"

// ConfigFile is the dvc config file, relative to the repository root.
const ConfigFile = ".dvc/config"

// Tool builds dvc commands for a specific binary.
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

// Init creates the .dvc directory.
func (t *Tool) Init() process.Command {
	return t.cmd(false, "init")
}

// ConfigSet writes a repository-level config option.
func (t *Tool) ConfigSet(key, value string) process.Command {
	return t.cmd(false, "config", key, value)
}

// RemoteList lists configured remotes.
func (t *Tool) RemoteList() process.Command {
	return t.cmd(true, "remote", "list")
}

// RemoteAddDefault adds a remote and makes it the default.
func (t *Tool) RemoteAddDefault(name, url string) process.Command {
	return t.cmd(false, "remote", "add", "-d", name, url)
}

// Status compares the workspace against the given .dvc file.
func (t *Tool) Status(target string) process.Command {
	return t.cmd(true, "status", target)
}

// Add starts tracking path, writing path.dvc.
func (t *Tool) Add(path string) process.Command {
	return t.cmd(false, "add", path)
}

// Push uploads the data referenced by target to remote.
func (t *Tool) Push(target, remote string) process.Command {
	return t.cmd(false, "push", target, "--remote", remote)
}

// Version prints the dvc version.
func (t *Tool) Version() process.Command {
	return t.cmd(true, "--version")
}

// PointerFile returns the .dvc file dvc writes for a tracked folder.
// "data/raw/" and "data/raw" both map to "data/raw.dvc".
func PointerFile(folder string) string {
	return filepath.Clean(folder) + ".dvc"
}
