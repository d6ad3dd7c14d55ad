package dvc

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jokarl/dataver/internal/process"
)

func TestParseRemoteList(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []Remote
	}{
		{
			name: "empty",
			out:  "",
			want: nil,
		},
		{
			name: "single remote",
			out:  "gcs-storage\tgs://bucket/data",
			want: []Remote{{Name: "gcs-storage", URL: "gs://bucket/data"}},
		},
		{
			name: "default marker and blank lines",
			out:  "origin-storage  s3://bucket/raw  (default)\n\nbackup  /mnt/backup\n",
			want: []Remote{
				{Name: "origin-storage", URL: "s3://bucket/raw"},
				{Name: "backup", URL: "/mnt/backup"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ParseRemoteList(tt.out)); diff != "" {
				t.Errorf("ParseRemoteList() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListRemotes(t *testing.T) {
	r := process.RunnerFunc(func(_ context.Context, cmd process.Command) (process.Result, error) {
		if cmd.String() != "dvc remote list" {
			t.Errorf("issued %q, want 'dvc remote list'", cmd.String())
		}
		return process.Result{Stdout: "a\turl-a\nb\turl-b"}, nil
	})

	names, err := ListRemotes(context.Background(), r, New(""))
	if err != nil {
		t.Fatalf("ListRemotes() error: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, names); diff != "" {
		t.Errorf("ListRemotes() mismatch (-want +got):\n%s", diff)
	}
}

func TestListRemotes_Error(t *testing.T) {
	boom := &process.ProcessError{Name: "dvc", Args: []string{"remote", "list"}, ExitCode: 255}
	r := process.RunnerFunc(func(context.Context, process.Command) (process.Result, error) {
		return process.Result{}, boom
	})

	_, err := ListRemotes(context.Background(), r, New(""))
	if !errors.Is(err, boom) {
		t.Errorf("ListRemotes() error = %v, want wrapped %v", err, boom)
	}
}
