package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PublishState is where a publish run ended up
type PublishState int

const (
	// StateChecking means the data status has not been classified yet
	StateChecking PublishState = iota
	// StateUpToDate means the data folder had no changes
	StateUpToDate
	// StatePublishing means the publish sequence started but did not finish
	StatePublishing
	// StateDone means the new version was committed, tagged and pushed
	StateDone
)

// String returns the string representation of the state
func (s PublishState) String() string {
	switch s {
	case StateChecking:
		return "CHECKING"
	case StateUpToDate:
		return "UP_TO_DATE"
	case StatePublishing:
		return "PUBLISHING"
	case StateDone:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON implements json.Marshaler
func (s PublishState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (s *PublishState) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParsePublishState(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParsePublishState parses a string into a PublishState
func ParsePublishState(s string) (PublishState, error) {
	switch strings.ToUpper(s) {
	case "CHECKING":
		return StateChecking, nil
	case "UP_TO_DATE":
		return StateUpToDate, nil
	case "PUBLISHING":
		return StatePublishing, nil
	case "DONE":
		return StateDone, nil
	default:
		return StateChecking, fmt.Errorf("unknown publish state: %s", s)
	}
}
