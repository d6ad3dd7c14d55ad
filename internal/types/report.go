package types

import "time"

// Step is one external command issued during a run
type Step struct {
	// Command is the command line as a user would type it
	Command string `json:"command"`

	// Duration is how long the command took
	Duration time.Duration `json:"duration_ns"`

	// Error is the failure message, empty on success
	Error string `json:"error,omitempty"`
}

// Failed reports whether the step exited non-zero
func (s Step) Failed() bool {
	return s.Error != ""
}

// Report summarizes a single dataver invocation
type Report struct {
	// Action is the CLI action that ran (init, setup, publish)
	Action string `json:"action"`

	// RunID correlates the report with log lines
	RunID string `json:"run_id"`

	// Dir is the working tree the commands ran in
	Dir string `json:"dir"`

	// Initialized is true when this run created the .dvc directory
	Initialized bool `json:"initialized"`

	// RemoteConfigured is true when this run added the dvc remote
	RemoteConfigured bool `json:"remote_configured"`

	// Publish is set only for publish runs
	Publish *PublishSummary `json:"publish,omitempty"`

	// Steps lists every command issued, in order
	Steps []Step `json:"steps"`

	// Err is the terminal error message, empty on success
	Err string `json:"error,omitempty"`
}

// PublishSummary describes the outcome of a publish attempt
type PublishSummary struct {
	State   PublishState `json:"state"`
	Current Version      `json:"current"`
	Next    Version      `json:"next"`
	Folder  string       `json:"folder"`
	Remote  string       `json:"remote"`
	Status  string       `json:"status"`
	Files   int          `json:"files"`
	Reason  string       `json:"reason,omitempty"`
}

// Failed reports whether the run ended with an error
func (r *Report) Failed() bool {
	return r.Err != ""
}
