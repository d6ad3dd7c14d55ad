package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	versionStr string
	commitStr  string
	dateStr    string
)

// Global flags
var (
	configFlag      string
	dirFlag         string
	logLevelFlag    string
	formatFlag      string
	colorFlag       string
	dryRunFlag      bool
	metricsFileFlag string
	remoteNameFlag  string
	remoteURLFlag   string
	dataFolderFlag  string
)

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	versionStr = version
	commitStr = commit
	dateStr = date
}

var rootCmd = &cobra.Command{
	Use:   "dataver",
	Short: "Data versioning with dvc and git",
	Long: `dataver keeps a raw data folder versioned with dvc and git.

It initializes dvc in a git repository, registers the default dvc remote,
and when the data folder has changed, commits the new dvc pointer, tags it
as a new data version and pushes data, commits and tags.

Every step is idempotent: dvc is only initialized when .dvc is missing,
the remote is only added when none is configured, and nothing is published
when dvc reports the data as up to date.

dataver does not lock the working tree. Running two instances against the
same repository at the same time can leave git and dvc in an inconsistent
state.`,
	SilenceUsage: true,
}

// Execute runs the root command. SIGINT and SIGTERM cancel the running git or dvc command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVarP(&configFlag, "config", "c", "", "Path to config file (default: .dataver.hcl, .dataver.yaml or .dataver.yml)")
	f.StringVarP(&dirFlag, "dir", "C", "", "Working tree to operate on (default: root of the enclosing git repository)")
	f.StringVar(&logLevelFlag, "log-level", "", "Log level: trace, debug, info, warn, error")
	f.StringVar(&formatFlag, "format", "", "Report format: text, json")
	f.StringVar(&colorFlag, "color", "", "Color mode: auto, always, never")
	f.BoolVar(&dryRunFlag, "dry-run", false, "Log mutating git and dvc commands instead of running them")
	f.StringVar(&metricsFileFlag, "metrics-file", "", "Write prometheus metrics in textfile format to this path")
	f.StringVar(&remoteNameFlag, "remote-name", "", "dvc remote name (overrides remote.name)")
	f.StringVar(&remoteURLFlag, "remote-url", "", "dvc remote URL (overrides remote.url)")
	f.StringVar(&dataFolderFlag, "data-folder", "", "Data folder to version (overrides data.folder)")
}
