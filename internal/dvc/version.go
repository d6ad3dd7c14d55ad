package dvc

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/jokarl/dataver/internal/process"
)

// MinVersionMajor is the oldest dvc major release dataver drives.
const MinVersionMajor = 2

// versionRegex matches `dvc --version` output such as "3.48.0" or "2.58.2+abc123".
var versionRegex = regexp.MustCompile(`^\s*(\d+)\.(\d+)(?:\.(\d+))?`)

// ErrVersionTooOld is returned when dvc is below MinVersionMajor.
type ErrVersionTooOld struct {
	Current string
}

func (e *ErrVersionTooOld) Error() string {
	return fmt.Sprintf("dvc version %s is below minimum required %d.0\n\n"+
		"Please upgrade dvc: https://dvc.org/doc/install", e.Current, MinVersionMajor)
}

// ParseMajor extracts the major version from `dvc --version` output.
func ParseMajor(s string) (int, error) {
	m := versionRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("failed to parse dvc version: %q", s)
	}
	return strconv.Atoi(m[1])
}

// CheckMinVersion verifies dvc is installed and at least MinVersionMajor.
func CheckMinVersion(ctx context.Context, r process.Runner, t *Tool) error {
	res, err := r.Run(ctx, t.Version())
	if err != nil {
		return fmt.Errorf("failed to get dvc version: %w", err)
	}
	major, err := ParseMajor(res.Stdout)
	if err != nil {
		return err
	}
	if major < MinVersionMajor {
		return &ErrVersionTooOld{Current: res.Stdout}
	}
	return nil
}
