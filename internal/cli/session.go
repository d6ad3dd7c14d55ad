package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-isatty"

	"github.com/jokarl/dataver/internal/config"
	"github.com/jokarl/dataver/internal/dvc"
	"github.com/jokarl/dataver/internal/git"
	"github.com/jokarl/dataver/internal/metrics"
	"github.com/jokarl/dataver/internal/output"
	"github.com/jokarl/dataver/internal/process"
	"github.com/jokarl/dataver/internal/types"
	"github.com/jokarl/dataver/internal/versioning"
)

// requirements lists the settings an action cannot run without
type requirements struct {
	remote bool
	data   bool
}

// session holds everything one action needs, from config to report
type session struct {
	cfg     *config.Config
	log     hclog.Logger
	report  *types.Report
	metrics *metrics.Metrics
	ws      *versioning.Workspace
	orch    *versioning.Orchestrator
	out     *os.File
}

// loadConfig resolves the configuration and applies command-line overrides
func loadConfig(req requirements) (*config.Config, error) {
	searchDir := dirFlag
	if searchDir == "" {
		searchDir = "."
	}

	cfg, err := config.Load(configFlag, searchDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Apply(config.Overrides{
		RemoteName: remoteNameFlag,
		RemoteURL:  remoteURLFlag,
		DataFolder: dataFolderFlag,
		LogLevel:   logLevelFlag,
	})
	if formatFlag != "" {
		cfg.Output.Format = formatFlag
	}
	if colorFlag != "" {
		cfg.Output.Color = colorFlag
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := config.ValidateRequired(cfg, req.remote, req.data); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the root logger from the logging settings
func newLogger(cfg *config.Config, w io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:       "dataver",
		Level:      hclog.LevelFromString(cfg.Logging.Level),
		Output:     w,
		JSONFormat: cfg.Logging.JSON,
	})
}

// shouldUseColor resolves the color mode against the output file
func shouldUseColor(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // auto
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}

// recorder appends every issued command to the report
func recorder(report *types.Report) versioning.Observer {
	return versioning.ObserverFunc(func(cmd process.Command, elapsed time.Duration, err error) {
		step := types.Step{Command: cmd.String(), Duration: elapsed}
		if err != nil {
			step.Error = err.Error()
		}
		report.Steps = append(report.Steps, step)
	})
}

// versionSource maps versioning.source to a VersionSource
func versionSource(cfg *config.Config, repo versioning.RepositoryState, g *git.Tool) versioning.VersionSource {
	if cfg.Versioning.Source == "tags" {
		return versioning.TagHistory{Repo: repo, Git: g}
	}
	return versioning.FixedBaseline{}
}

// newSession loads config, locates the working tree and checks the git and dvc installs
func newSession(ctx context.Context, action string, req requirements) (*session, error) {
	cfg, err := loadConfig(req)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log := newLogger(cfg, os.Stderr).With("run_id", runID, "action", action)
	if path := cfg.ConfigPath(); path != "" {
		log.Debug("loaded config", "path", path)
	}

	gitTool := git.New(cfg.Execution.GitBinary)
	dvcTool := dvc.New(cfg.Execution.DVCBinary)

	start := dirFlag
	if start == "" {
		start = "."
	}
	root, err := git.FindRoot(ctx, gitTool, start)
	if err != nil {
		return nil, err
	}

	var runner process.Runner = process.NewExec(process.ExecOptions{
		Dir:     root,
		Timeout: cfg.CommandTimeout(),
		Logger:  log.Named("exec"),
	})
	if err := git.CheckMinVersion(ctx, runner, gitTool); err != nil {
		return nil, err
	}
	if err := dvc.CheckMinVersion(ctx, runner, dvcTool); err != nil {
		return nil, err
	}
	if dryRunFlag {
		log.Info("dry run enabled, mutating commands are not executed")
		runner = process.NewDryRun(runner, log.Named("dry-run"))
	}

	s := &session{
		cfg:     cfg,
		log:     log,
		metrics: metrics.New(),
		out:     os.Stdout,
		report: &types.Report{
			Action: action,
			RunID:  runID,
			Dir:    root,
		},
	}
	s.ws = versioning.NewWorkspace(root, runner, dvcTool)
	s.orch = versioning.New(s.ws,
		versioning.WithLogger(log.Named("orchestrator")),
		versioning.WithTools(gitTool, dvcTool),
		versioning.WithVersionSource(versionSource(cfg, s.ws, gitTool)),
		versioning.WithObserver(versioning.Observers(recorder(s.report), s.metrics)),
	)
	return s, nil
}

// finish renders the report, writes metrics and passes err through
func (s *session) finish(err error) error {
	if err != nil {
		s.report.Err = err.Error()
		logFailure(s.log, err)
	}

	renderer := output.NewRenderer(output.Format(s.cfg.Output.Format), shouldUseColor(s.cfg.Output.Color, s.out))
	if rerr := renderer.Render(s.out, s.report); rerr != nil && err == nil {
		err = fmt.Errorf("failed to render output: %w", rerr)
	}

	if metricsFileFlag != "" {
		if merr := s.metrics.WriteTextfile(metricsFileFlag, time.Now()); merr != nil {
			s.log.Warn("failed to write metrics file", "path", metricsFileFlag, "error", merr)
		}
	}
	return err
}

// logFailure logs the failed command and a credentials hint for rejected pushes
func logFailure(log hclog.Logger, err error) {
	var perr *process.ProcessError
	if errors.As(err, &perr) {
		log.Error("command failed", "cmd", perr.Command().String(), "exit", perr.ExitCode, "timed_out", perr.TimedOut)
	}
	if git.IsAuthError(err) {
		log.Error("push was rejected by the git remote, check your credentials")
	}
}
