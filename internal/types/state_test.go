package types

import "testing"

func TestPublishStateString(t *testing.T) {
	tests := []struct {
		state PublishState
		want  string
	}{
		{StateChecking, "CHECKING"},
		{StateUpToDate, "UP_TO_DATE"},
		{StatePublishing, "PUBLISHING"},
		{StateDone, "DONE"},
		{PublishState(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("PublishState.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParsePublishState(t *testing.T) {
	for _, s := range []PublishState{StateChecking, StateUpToDate, StatePublishing, StateDone} {
		got, err := ParsePublishState(s.String())
		if err != nil {
			t.Fatalf("ParsePublishState(%q) error: %v", s, err)
		}
		if got != s {
			t.Errorf("ParsePublishState(%q) = %v", s, got)
		}
	}

	if _, err := ParsePublishState("finished"); err == nil {
		t.Error("expected error for unknown state")
	}
}
