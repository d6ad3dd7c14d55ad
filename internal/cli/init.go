package cli

import (
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize dvc in the git repository",
	Long: `Run "dvc init" in the repository, disable dvc analytics, enable
autostaging and commit the new .dvc directory.

Nothing happens when the .dvc directory already exists.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, err := newSession(ctx, "init", requirements{})
	if err != nil {
		return err
	}

	s.report.Initialized, err = s.orch.EnsureInitialized(ctx)
	return s.finish(err)
}
