package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jokarl/dataver/internal/pathfilter"
	"github.com/jokarl/dataver/internal/types"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the data folder has unpublished changes",
	Long: `Run "dvc status" for the data folder and report whether a publish would
create a new version. No git or dvc state is modified.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, err := newSession(ctx, "status", requirements{data: true})
	if err != nil {
		return err
	}

	folder := s.cfg.Data.Folder
	summary := &types.PublishSummary{
		Folder: folder,
		Remote: s.cfg.Remote.Name,
	}
	s.report.Publish = summary

	snap, err := pathfilter.New(s.cfg.Data.Include, s.cfg.Data.Exclude).Summarize(filepath.Join(s.ws.Root(), folder))
	if err != nil {
		s.log.Warn("failed to summarize data folder", "folder", folder, "error", err)
	} else {
		summary.Files = snap.Files
	}

	res := s.orch.Status(ctx, folder)
	summary.Status = res.Kind.String()
	summary.Reason = res.Reason
	if res.NeedsPublish() {
		s.log.Info("data folder has unpublished changes", "folder", folder, "status", res.Kind)
	}
	return s.finish(ctx.Err())
}
