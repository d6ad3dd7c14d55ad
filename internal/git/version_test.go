package git

import (
	"context"
	"errors"
	"testing"

	"github.com/jokarl/dataver/internal/process"
)

func stubRunner(stdout string, err error) process.Runner {
	return process.RunnerFunc(func(context.Context, process.Command) (process.Result, error) {
		return process.Result{Stdout: stdout}, err
	})
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "standard format", input: "git version 2.39.0", want: "2.39.0"},
		{name: "two components", input: "git version 2.5", want: "2.5.0"},
		{name: "Apple Git", input: "git version 2.39.0 (Apple Git-143)", want: "2.39.0"},
		{name: "Git for Windows", input: "git version 2.37.2.windows.2", want: "2.37.2"},
		{name: "empty string", input: "", wantErr: true},
		{name: "no version number", input: "git version", wantErr: true},
		{name: "dvc output", input: "3.48.0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseVersion(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVersion(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if v.String() != tt.want {
				t.Errorf("ParseVersion(%q) = %s, want %s", tt.input, v, tt.want)
			}
			if v.Raw != tt.input {
				t.Errorf("Raw = %q, want %q", v.Raw, tt.input)
			}
		})
	}
}

func TestVersion_AtLeast(t *testing.T) {
	v := &Version{Major: 2, Minor: 5}

	tests := []struct {
		major, minor int
		want         bool
	}{
		{2, 5, true},
		{2, 4, true},
		{1, 9, true},
		{2, 6, false},
		{3, 0, false},
	}

	for _, tt := range tests {
		if got := v.AtLeast(tt.major, tt.minor); got != tt.want {
			t.Errorf("2.5 AtLeast(%d, %d) = %v, want %v", tt.major, tt.minor, got, tt.want)
		}
	}
}

func TestCheckMinVersion(t *testing.T) {
	g := New("")

	if err := CheckMinVersion(context.Background(), stubRunner("git version 2.43.0", nil), g); err != nil {
		t.Errorf("CheckMinVersion(2.43.0) = %v, want nil", err)
	}

	err := CheckMinVersion(context.Background(), stubRunner("git version 1.8.3", nil), g)
	var tooOld *ErrVersionTooOld
	if !errors.As(err, &tooOld) {
		t.Fatalf("CheckMinVersion(1.8.3) = %v, want *ErrVersionTooOld", err)
	}
	if tooOld.Current != "1.8.3" || tooOld.Required != "2.5" {
		t.Errorf("ErrVersionTooOld = %+v", tooOld)
	}

	boom := &process.ErrExecutableNotFound{Name: "git"}
	err = CheckMinVersion(context.Background(), stubRunner("", boom), g)
	if !errors.Is(err, boom) {
		t.Errorf("CheckMinVersion should wrap runner error, got %v", err)
	}
}
