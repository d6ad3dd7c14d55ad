// Package metrics collects per-run prometheus metrics and writes them in the
// node_exporter textfile format, which suits a tool started from cron or CI.
package metrics

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jokarl/dataver/internal/process"
	"github.com/jokarl/dataver/internal/types"
)

const namespace = "dataver"

// Metrics holds the collectors for one run.
type Metrics struct {
	reg *prometheus.Registry

	commands        *prometheus.CounterVec
	commandDuration *prometheus.HistogramVec
	publishes       *prometheus.CounterVec
	lastVersion     prometheus.Gauge
	lastRun         prometheus.Gauge
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		commands: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "External commands issued, by tool and outcome.",
		}, []string{"tool", "outcome"}),
		commandDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_duration_seconds",
			Help:      "Wall time of external commands.",
			Buckets:   []float64{0.1, 0.5, 1, 5, 30, 120, 600, 1800},
		}, []string{"tool"}),
		publishes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_runs_total",
			Help:      "Publish attempts, by final state.",
		}, []string{"state"}),
		lastVersion: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_published_version",
			Help:      "Number of the last data version this run published.",
		}),
		lastRun: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the run finished.",
		}),
	}
}

// CommandFinished records one external command.
func (m *Metrics) CommandFinished(cmd process.Command, elapsed time.Duration, err error) {
	tool := filepath.Base(cmd.Name)
	outcome := "success"
	if err != nil {
		outcome = "failure"
		var perr *process.ProcessError
		if errors.As(err, &perr) && perr.TimedOut {
			outcome = "timeout"
		}
	}
	m.commands.WithLabelValues(tool, outcome).Inc()
	m.commandDuration.WithLabelValues(tool).Observe(elapsed.Seconds())
}

// PublishFinished records the final state of a publish attempt.
func (m *Metrics) PublishFinished(state types.PublishState, next types.Version) {
	m.publishes.WithLabelValues(state.String()).Inc()
	if state == types.StateDone {
		m.lastVersion.Set(float64(next))
	}
}

// WriteTextfile stamps the run time and writes every metric to path.
func (m *Metrics) WriteTextfile(path string, now time.Time) error {
	m.lastRun.Set(float64(now.Unix()))
	return prometheus.WriteToTextfile(path, m.reg)
}
