package dvc

import "strings"

// UpToDateSentinel is what `dvc status` prints when nothing changed.
const UpToDateSentinel = "Data and pipelines are up to date."

// StatusKind classifies `dvc status` output.
type StatusKind int

const (
	// StatusChanged means the tracked data differs from the workspace
	StatusChanged StatusKind = iota
	// StatusUnchanged means the output matched UpToDateSentinel
	StatusUnchanged
	// StatusQueryFailed means dvc status itself failed
	StatusQueryFailed
)

func (k StatusKind) String() string {
	switch k {
	case StatusChanged:
		return "changed"
	case StatusUnchanged:
		return "unchanged"
	case StatusQueryFailed:
		return "query failed"
	default:
		return "unknown"
	}
}

// StatusResult is the classified outcome of a status query.
type StatusResult struct {
	Kind StatusKind

	// Output is the raw stdout, empty when the query failed.
	Output string

	// Reason carries the error text for StatusQueryFailed.
	Reason string
}

// NeedsPublish reports whether a new version should be published.
func (s StatusResult) NeedsPublish() bool {
	return s.Kind != StatusUnchanged
}

// ClassifyStatus turns a status query outcome into a StatusResult.
// Only an exact sentinel match, ignoring surrounding whitespace, counts as unchanged.
func ClassifyStatus(stdout string, err error) StatusResult {
	if err != nil {
		return StatusResult{Kind: StatusQueryFailed, Reason: err.Error()}
	}
	if strings.TrimSpace(stdout) == UpToDateSentinel {
		return StatusResult{Kind: StatusUnchanged, Output: stdout}
	}
	return StatusResult{Kind: StatusChanged, Output: stdout}
}
