package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jokarl/dataver/internal/pathfilter"
	"github.com/jokarl/dataver/internal/types"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish a new data version when the data folder changed",
	Long: `Run "dataver setup", then ask dvc whether the data folder changed.

When it did, dataver tracks the folder with "dvc add", commits everything,
creates an annotated version tag, pushes the data to the dvc remote and
pushes commits and tags to the git remote.

A failed "dvc status" is treated as a change. A failure half way through
is not rolled back: the commit and tag may exist locally without having
been pushed.`,
	Args: cobra.NoArgs,
	RunE: runPublish,
}

func init() {
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, err := newSession(ctx, "publish", requirements{remote: true, data: true})
	if err != nil {
		return err
	}

	if err := s.setup(cmd); err != nil {
		return s.finish(err)
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
		s.log.Debug("data folder snapshot", "folder", folder, "files", snap.Files, "bytes", snap.Bytes)
	}

	pub, err := s.orch.PublishIfChanged(ctx, folder, s.cfg.Remote.Name)
	if pub != nil {
		summary.State = pub.State
		summary.Current = pub.Current
		summary.Next = pub.Next
		summary.Status = pub.Status.Kind.String()
		summary.Reason = pub.Status.Reason
		s.metrics.PublishFinished(pub.State, pub.Next)
	}
	return s.finish(err)
}
