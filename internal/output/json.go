package output

import (
	"encoding/json"
	"io"

	"github.com/jokarl/dataver/internal/types"
)

// JSONRenderer renders output in JSON format
type JSONRenderer struct{}

// jsonOutput is the structure for JSON output
type jsonOutput struct {
	SchemaVersion string `json:"schema_version"`
	*types.Report
	Result string `json:"result"`
}

// Render writes the run report in JSON format
func (r *JSONRenderer) Render(w io.Writer, report *types.Report) error {
	out := jsonOutput{
		SchemaVersion: "1.0",
		Report:        report,
		Result:        "PASS",
	}
	if report.Failed() {
		out.Result = "FAIL"
	}
	if out.Steps == nil {
		out.Steps = []types.Step{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
