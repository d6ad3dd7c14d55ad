package dvc

import (
	"context"
	"fmt"
	"strings"

	"github.com/jokarl/dataver/internal/process"
)

// Remote is one entry of `dvc remote list`.
type Remote struct {
	Name string
	URL  string
}

// ParseRemoteList parses `dvc remote list` output.
// Each line holds a name and URL separated by whitespace; newer dvc releases
// append a "(default)" marker which is ignored.
func ParseRemoteList(out string) []Remote {
	var remotes []Remote
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		r := Remote{Name: fields[0]}
		if len(fields) > 1 {
			r.URL = fields[1]
		}
		remotes = append(remotes, r)
	}
	return remotes
}

// ListRemotes runs `dvc remote list` and returns the remote names.
func ListRemotes(ctx context.Context, r process.Runner, t *Tool) ([]string, error) {
	res, err := r.Run(ctx, t.RemoteList())
	if err != nil {
		return nil, fmt.Errorf("failed to list dvc remotes: %w", err)
	}

	remotes := ParseRemoteList(res.Stdout)
	names := make([]string, 0, len(remotes))
	for _, rm := range remotes {
		names = append(names, rm.Name)
	}
	return names, nil
}
