package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Version is a data snapshot number, rendered as "v{n}".
type Version int

// String returns the tag label, e.g. "v1"
func (v Version) String() string {
	return fmt.Sprintf("v%d", int(v))
}

// Next returns the version that follows v
func (v Version) Next() Version {
	return v + 1
}

// MarshalJSON implements json.Marshaler
func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (v *Version) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseVersion(str)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ParseVersion parses a "v{n}" label. The leading "v" is required.
func ParseVersion(s string) (Version, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(s), "v")
	if !ok || rest == "" {
		return 0, fmt.Errorf("invalid version label: %q", s)
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid version label: %q", s)
	}
	return Version(n), nil
}
