package git

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/jokarl/dataver/internal/process"
)

// Version represents a parsed git version.
type Version struct {
	Major int
	Minor int
	Patch int
	Raw   string
}

// String returns the version as "major.minor.patch".
func (v *Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// AtLeast returns true if this version is at least major.minor.
func (v *Version) AtLeast(major, minor int) bool {
	if v.Major > major {
		return true
	}
	if v.Major == major && v.Minor >= minor {
		return true
	}
	return false
}

// versionRegex matches git version strings like:
// - "git version 2.39.0"
// - "git version 2.39.0 (Apple Git-143)"
// - "git version 2.39.0.windows.1"
var versionRegex = regexp.MustCompile(`git version (\d+)\.(\d+)(?:\.(\d+))?`)

// GetVersion returns the installed git version.
func GetVersion(ctx context.Context, r process.Runner, t *Tool) (*Version, error) {
	res, err := r.Run(ctx, t.Version())
	if err != nil {
		return nil, fmt.Errorf("failed to get git version: %w", err)
	}
	return ParseVersion(res.Stdout)
}

// ParseVersion parses a git version string.
func ParseVersion(s string) (*Version, error) {
	matches := versionRegex.FindStringSubmatch(s)
	if matches == nil {
		return nil, fmt.Errorf("failed to parse git version: %q", s)
	}

	major, _ := strconv.Atoi(matches[1])
	minor, _ := strconv.Atoi(matches[2])
	patch := 0
	if len(matches) > 3 && matches[3] != "" {
		patch, _ = strconv.Atoi(matches[3])
	}

	return &Version{
		Major: major,
		Minor: minor,
		Patch: patch,
		Raw:   s,
	}, nil
}

// MinVersion is the minimum git version required for dataver.
const (
	MinVersionMajor = 2
	MinVersionMinor = 5
)

// CheckMinVersion verifies git is installed and meets the minimum version for dataver.
func CheckMinVersion(ctx context.Context, r process.Runner, t *Tool) error {
	v, err := GetVersion(ctx, r, t)
	if err != nil {
		return err
	}

	if !v.AtLeast(MinVersionMajor, MinVersionMinor) {
		return &ErrVersionTooOld{
			Current:  v.String(),
			Required: fmt.Sprintf("%d.%d", MinVersionMajor, MinVersionMinor),
		}
	}

	return nil
}
