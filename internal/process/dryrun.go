package process

import (
	"context"

	"github.com/hashicorp/go-hclog"
)

// DryRun passes ReadOnly commands to the wrapped runner and only logs the rest.
type DryRun struct {
	next Runner
	log  hclog.Logger
}

// NewDryRun wraps next.
func NewDryRun(next Runner, log hclog.Logger) *DryRun {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &DryRun{next: next, log: log}
}

// Run implements Runner.
func (d *DryRun) Run(ctx context.Context, cmd Command) (Result, error) {
	if cmd.ReadOnly {
		return d.next.Run(ctx, cmd)
	}
	d.log.Info("dry run: skipping", "cmd", cmd.String())
	return Result{}, nil
}
