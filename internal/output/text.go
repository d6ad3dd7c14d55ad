package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/jokarl/dataver/internal/types"
)

// TextRenderer renders output in human-readable text format
type TextRenderer struct {
	ColorEnabled bool
}

// Render writes the run report in text format
func (r *TextRenderer) Render(w io.Writer, report *types.Report) error {
	// Configure color
	if !r.ColorEnabled {
		color.NoColor = true
	}

	fmt.Fprintf(w, "dataver %s: %s\n\n", report.Action, report.Dir)

	for _, s := range report.Steps {
		r.renderStep(w, s)
	}
	if len(report.Steps) > 0 {
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("-", 60))

	r.renderSummary(w, report)
	r.renderResult(w, report)

	return nil
}

func (r *TextRenderer) renderStep(w io.Writer, s types.Step) {
	mark := r.paint("ok", color.FgGreen)
	if s.Failed() {
		mark = r.paint("FAILED", color.FgRed, color.Bold)
	}
	fmt.Fprintf(w, "%-6s  %s  (%s)\n", mark, s.Command, s.Duration.Round(time.Millisecond))
	if s.Failed() {
		fmt.Fprintf(w, "  %s\n", s.Error)
	}
}

func (r *TextRenderer) renderSummary(w io.Writer, report *types.Report) {
	var parts []string
	if report.Initialized {
		parts = append(parts, "initialized dvc")
	}
	if report.RemoteConfigured {
		parts = append(parts, "configured remote")
	}
	if p := report.Publish; p != nil {
		if p.Status != "" {
			parts = append(parts, fmt.Sprintf("data %s", p.Status))
		}
		parts = append(parts, fmt.Sprintf("%d files in %s", p.Files, p.Folder))
		switch p.State {
		case types.StateDone:
			parts = append(parts, fmt.Sprintf("published %s -> %s to %s", p.Current, r.paint(p.Next.String(), color.FgCyan), p.Remote))
		case types.StateUpToDate:
			parts = append(parts, "nothing to publish")
		case types.StatePublishing:
			parts = append(parts, r.paint("publish interrupted, local commit and tag may remain", color.FgYellow))
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "nothing to do")
	}

	fmt.Fprintf(w, "Summary: %s\n", strings.Join(parts, ", "))
}

func (r *TextRenderer) renderResult(w io.Writer, report *types.Report) {
	if !report.Failed() {
		fmt.Fprintf(w, "Result: %s\n", r.paint("PASS", color.FgGreen))
		return
	}
	fmt.Fprintf(w, "Result: %s (%s)\n", r.paint("FAIL", color.FgRed), report.Err)
}

func (r *TextRenderer) paint(s string, attrs ...color.Attribute) string {
	if !r.ColorEnabled {
		return s
	}
	return color.New(attrs...).Sprint(s)
}
