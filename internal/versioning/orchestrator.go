package versioning

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jokarl/dataver/internal/dvc"
	"github.com/jokarl/dataver/internal/git"
	"github.com/jokarl/dataver/internal/process"
	"github.com/jokarl/dataver/internal/types"
)

// Messages used for the commits dataver creates.
const (
	InitCommitMessage = "Initialized DVC"
	remoteCommitFmt   = "Configured remote storage at: %s"
	versionCommitFmt  = "Update version of the data from %s to %s"
	tagMessageFmt     = "Data version %s"
)

// Orchestrator sequences the dvc and git commands.
type Orchestrator struct {
	repo     RepositoryState
	git      *git.Tool
	dvc      *dvc.Tool
	versions VersionSource
	observer Observer
	log      hclog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger. Defaults to a null logger.
func WithLogger(l hclog.Logger) Option {
	return func(o *Orchestrator) { o.log = l }
}

// WithVersionSource replaces the FixedBaseline default.
func WithVersionSource(s VersionSource) Option {
	return func(o *Orchestrator) { o.versions = s }
}

// WithObserver registers an observer for issued commands.
func WithObserver(obs Observer) Option {
	return func(o *Orchestrator) { o.observer = obs }
}

// WithTools overrides the git and dvc command builders.
func WithTools(g *git.Tool, d *dvc.Tool) Option {
	return func(o *Orchestrator) {
		if g != nil {
			o.git = g
		}
		if d != nil {
			o.dvc = d
		}
	}
}

// New creates an Orchestrator over repo.
func New(repo RepositoryState, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		repo:     repo,
		git:      git.New(""),
		dvc:      dvc.New(""),
		versions: FixedBaseline{},
		log:      hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Publication is the outcome of PublishIfChanged.
type Publication struct {
	State   types.PublishState
	Current types.Version
	Next    types.Version
	Status  dvc.StatusResult
}

// Tag returns the tag created for the new version.
func (p *Publication) Tag() string {
	return p.Next.String()
}

// EnsureInitialized runs `dvc init` and commits the result unless .dvc already exists.
// It reports whether initialization happened.
func (o *Orchestrator) EnsureInitialized(ctx context.Context) (bool, error) {
	ok, err := o.repo.HasMarker()
	if err != nil {
		return false, err
	}
	if ok {
		o.log.Info("DVC is already initialized")
		return false, nil
	}

	o.log.Info("Initializing DVC")
	err = o.runAll(ctx,
		o.dvc.Init(),
		o.dvc.ConfigSet("core.analytics", "false"),
		o.dvc.ConfigSet("core.autostage", "true"),
		o.git.Add(dvc.MarkerDir),
		o.git.Commit(InitCommitMessage),
	)
	if err != nil {
		return false, err
	}
	return true, nil
}

// EnsureRemoteConfigured adds name as the default dvc remote unless any remote is configured.
// It reports whether the remote was added.
func (o *Orchestrator) EnsureRemoteConfigured(ctx context.Context, name, url string) (bool, error) {
	start := time.Now()
	remotes, err := o.repo.ListRemotes(ctx)
	o.notify(o.dvc.RemoteList(), time.Since(start), err)
	if err != nil {
		return false, err
	}
	if len(remotes) > 0 {
		o.log.Info("DVC storage was already initialized", "remotes", remotes)
		return false, nil
	}

	o.log.Info("Initializing DVC storage", "remote", name, "url", url)
	err = o.runAll(ctx,
		o.dvc.RemoteAddDefault(name, url),
		o.git.Add(dvc.ConfigFile),
		o.git.Commit(fmt.Sprintf(remoteCommitFmt, url)),
	)
	if err != nil {
		return false, err
	}
	return true, nil
}

// Status classifies the state of folder against its .dvc pointer file.
func (o *Orchestrator) Status(ctx context.Context, folder string) dvc.StatusResult {
	folder = filepath.Clean(folder)
	res, err := o.run(ctx, o.dvc.Status(dvc.PointerFile(folder)))
	return dvc.ClassifyStatus(res.Stdout, err)
}

// PublishIfChanged tags and pushes a new data version when folder has changed.
// A failed status query is treated as a change.
func (o *Orchestrator) PublishIfChanged(ctx context.Context, folder, remote string) (*Publication, error) {
	pub := &Publication{State: types.StateChecking}
	folder = filepath.Clean(folder)

	current, next, err := o.versions.Next(ctx)
	if err != nil {
		return pub, fmt.Errorf("failed to compute next data version: %w", err)
	}
	pub.Current, pub.Next = current, next

	pub.Status = o.Status(ctx, folder)
	if err := ctx.Err(); err != nil {
		return pub, err
	}

	switch pub.Status.Kind {
	case dvc.StatusUnchanged:
		o.log.Info("Data and pipelines are up to date", "folder", folder)
		pub.State = types.StateUpToDate
		return pub, nil
	case dvc.StatusQueryFailed:
		o.log.Info("dvc status failed, treating data as changed", "folder", folder, "reason", pub.Status.Reason)
	default:
		o.log.Info("Data changed", "folder", folder)
	}

	pub.State = types.StatePublishing
	o.log.Info("Publishing new data version", "from", current, "to", next, "remote", remote)

	err = o.runAll(ctx,
		o.dvc.Add(folder),
		o.git.Add("."),
		o.git.Commit(fmt.Sprintf(versionCommitFmt, current, next)),
		o.git.Tag(next.String(), fmt.Sprintf(tagMessageFmt, next)),
		o.dvc.Push(dvc.PointerFile(folder), remote),
		o.git.PushFollowTags(),
		o.git.ForcePushTags(),
	)
	if err != nil {
		return pub, err
	}

	pub.State = types.StateDone
	o.log.Info("Published data version", "version", next)
	return pub, nil
}

// runAll stops at the first failing command.
func (o *Orchestrator) runAll(ctx context.Context, cmds ...process.Command) error {
	for _, cmd := range cmds {
		if _, err := o.run(ctx, cmd); err != nil {
			return err
		}
	}
	return nil
}

func (o *Orchestrator) run(ctx context.Context, cmd process.Command) (process.Result, error) {
	o.log.Debug("running", "cmd", cmd.String())
	start := time.Now()
	res, err := o.repo.RunCommand(ctx, cmd)
	o.notify(cmd, time.Since(start), err)
	return res, err
}

func (o *Orchestrator) notify(cmd process.Command, elapsed time.Duration, err error) {
	if o.observer != nil {
		o.observer.CommandFinished(cmd, elapsed, err)
	}
}
