package versioning

import (
	"time"

	"github.com/jokarl/dataver/internal/process"
)

// Observer is notified after every command the Orchestrator issues.
type Observer interface {
	CommandFinished(cmd process.Command, elapsed time.Duration, err error)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(cmd process.Command, elapsed time.Duration, err error)

// CommandFinished calls f.
func (f ObserverFunc) CommandFinished(cmd process.Command, elapsed time.Duration, err error) {
	f(cmd, elapsed, err)
}

type multiObserver []Observer

func (m multiObserver) CommandFinished(cmd process.Command, elapsed time.Duration, err error) {
	for _, o := range m {
		o.CommandFinished(cmd, elapsed, err)
	}
}

// Observers fans out notifications to every non-nil observer.
func Observers(obs ...Observer) Observer {
	var m multiObserver
	for _, o := range obs {
		if o != nil {
			m = append(m, o)
		}
	}
	return m
}
