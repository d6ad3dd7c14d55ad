package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Version != 1 {
		t.Errorf("expected version 1, got %d", cfg.Version)
	}
	if cfg.Versioning.Source != "fixed" {
		t.Errorf("expected source 'fixed', got %s", cfg.Versioning.Source)
	}
	if cfg.Execution.GitBinary != "git" || cfg.Execution.DVCBinary != "dvc" {
		t.Errorf("unexpected binaries: %+v", cfg.Execution)
	}
	if cfg.CommandTimeout() != 30*time.Minute {
		t.Errorf("expected 30m timeout, got %s", cfg.CommandTimeout())
	}
	if len(cfg.Data.Include) != 1 || cfg.Data.Include[0] != "**" {
		t.Errorf("unexpected include patterns: %v", cfg.Data.Include)
	}
	if cfg.Output.Format != "text" || cfg.Output.Color != "auto" {
		t.Errorf("unexpected output: %+v", cfg.Output)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected level info, got %s", cfg.Logging.Level)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromHCL(t *testing.T) {
	path := writeConfig(t, ".dataver.hcl", `
version = 1

remote {
  name = "origin-storage"
  url  = "s3://bucket/raw"
}

data {
  folder  = "data/raw"
  exclude = ["**/.DS_Store"]
}

versioning {
  source = "tags"
}

execution {
  timeout = "90s"
}

output {
  format = "json"
  color  = "never"
}
`)

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Remote.Name != "origin-storage" || cfg.Remote.URL != "s3://bucket/raw" {
		t.Errorf("unexpected remote: %+v", cfg.Remote)
	}
	if cfg.Data.Folder != "data/raw" {
		t.Errorf("expected folder data/raw, got %s", cfg.Data.Folder)
	}
	if len(cfg.Data.Include) != 1 || cfg.Data.Include[0] != "**" {
		t.Errorf("include should fall back to defaults, got %v", cfg.Data.Include)
	}
	if len(cfg.Data.Exclude) != 1 {
		t.Errorf("expected 1 exclude pattern, got %v", cfg.Data.Exclude)
	}
	if cfg.Versioning.Source != "tags" {
		t.Errorf("expected source tags, got %s", cfg.Versioning.Source)
	}
	if cfg.CommandTimeout() != 90*time.Second {
		t.Errorf("expected 90s timeout, got %s", cfg.CommandTimeout())
	}
	if cfg.Execution.GitBinary != "git" {
		t.Errorf("git binary should fall back to default, got %q", cfg.Execution.GitBinary)
	}
	if cfg.Output.Format != "json" || cfg.Output.Color != "never" {
		t.Errorf("unexpected output: %+v", cfg.Output)
	}
	if cfg.Logging == nil || cfg.Logging.Level != "info" {
		t.Errorf("logging should fall back to defaults, got %+v", cfg.Logging)
	}
	if cfg.ConfigPath() != path {
		t.Errorf("expected config path %s, got %s", path, cfg.ConfigPath())
	}
}

func TestLoadEnvFunction(t *testing.T) {
	t.Setenv("DATAVER_TEST_REMOTE_URL", "gs://from-env/data")

	path := writeConfig(t, ".dataver.hcl", `
version = 1
remote {
  name = "gcs"
  url  = env("DATAVER_TEST_REMOTE_URL")
}
data {
  folder = env("DATAVER_TEST_UNSET_FOLDER")
}
`)

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Remote.URL != "gs://from-env/data" {
		t.Errorf("expected url from env, got %q", cfg.Remote.URL)
	}
	if cfg.Data.Folder != "" {
		t.Errorf("unset variable should yield empty string, got %q", cfg.Data.Folder)
	}
}

func TestLoadFromYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
version: 1
remote:
  name: origin-storage
  url: s3://bucket/raw
data:
  folder: data/raw
logging:
  level: debug
  json: true
`)

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Remote.Name != "origin-storage" || cfg.Data.Folder != "data/raw" {
		t.Errorf("unexpected config: remote=%+v data=%+v", cfg.Remote, cfg.Data)
	}
	if cfg.Logging.Level != "debug" || !cfg.Logging.JSON {
		t.Errorf("unexpected logging: %+v", cfg.Logging)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("output should fall back to defaults, got %+v", cfg.Output)
	}
}

func TestLoadFromYAML_FlatKeys(t *testing.T) {
	path := writeConfig(t, "config.yml", `
version: 1
dvc_remote_name: gcs-storage
dvc_remote_url: gs://bucket/data/raw
dvc_raw_data_folder: data/raw
`)

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Remote.Name != "gcs-storage" || cfg.Remote.URL != "gs://bucket/data/raw" {
		t.Errorf("flat keys not applied to remote: %+v", cfg.Remote)
	}
	if cfg.Data.Folder != "data/raw" {
		t.Errorf("flat key not applied to data folder: %q", cfg.Data.Folder)
	}
}

func TestLoadFromYAML_UnknownField(t *testing.T) {
	path := writeConfig(t, "config.yaml", "version: 1\nremotes: []\n")

	if _, err := Load(path, ""); err == nil {
		t.Error("expected error for unknown YAML field")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".dataver.yaml"), []byte("version: 1\ndvc_remote_name: from-yaml\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("", dir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Remote.Name != "from-yaml" {
		t.Errorf("expected YAML config to be found, got %+v", cfg.Remote)
	}

	if err := os.WriteFile(filepath.Join(dir, ".dataver.hcl"), []byte("version = 1\nremote {\n  name = \"from-hcl\"\n}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err = Load("", dir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Remote.Name != "from-hcl" {
		t.Errorf("expected HCL config to take precedence, got %+v", cfg.Remote)
	}
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/.dataver.hcl", "")
	if err == nil {
		t.Error("expected error for nonexistent config")
	}
}

func TestLoadDefaultsWhenNoConfig(t *testing.T) {
	cfg, err := Load("", t.TempDir())
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("expected default version 1, got %d", cfg.Version)
	}
	if cfg.ConfigPath() != "" {
		t.Errorf("expected empty config path for defaults, got %s", cfg.ConfigPath())
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{"invalid HCL", "version = 1\nthis is not valid HCL {\n", "failed to parse"},
		{"missing version", "remote {\n  name = \"x\"\n}\n", "failed to decode"},
		{"unsupported version", "version = 2", "unsupported config version"},
		{"unknown source", "version = 1\nversioning {\n  source = \"semver\"\n}\n", "invalid versioning source"},
		{"bad timeout", "version = 1\nexecution {\n  timeout = \"soon\"\n}\n", "invalid execution timeout"},
		{"negative timeout", "version = 1\nexecution {\n  timeout = \"-1s\"\n}\n", "must not be negative"},
		{"bad format", "version = 1\noutput {\n  format = \"xml\"\n}\n", "invalid output format"},
		{"bad color", "version = 1\noutput {\n  color = \"sometimes\"\n}\n", "invalid color mode"},
		{"bad log level", "version = 1\nlogging {\n  level = \"loud\"\n}\n", "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, ".dataver.hcl", tt.content)
			_, err := Load(path, "")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("error = %q, want to contain %q", err.Error(), tt.errText)
			}
		})
	}
}

func TestApplyAndValidateRequired(t *testing.T) {
	cfg := Default()

	err := ValidateRequired(cfg, true, true)
	if err == nil {
		t.Fatal("expected missing settings error")
	}
	for _, s := range []string{"remote.name", "remote.url", "data.folder"} {
		if !strings.Contains(err.Error(), s) {
			t.Errorf("error = %q, want to mention %s", err.Error(), s)
		}
	}

	if err := ValidateRequired(cfg, false, false); err != nil {
		t.Errorf("nothing required, got %v", err)
	}

	cfg.Apply(Overrides{RemoteName: "origin-storage", RemoteURL: "s3://b", DataFolder: "data/raw", LogLevel: "debug"})
	if err := ValidateRequired(cfg, true, true); err != nil {
		t.Errorf("ValidateRequired after overrides: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level override not applied: %s", cfg.Logging.Level)
	}

	cfg.Apply(Overrides{})
	if cfg.Remote.Name != "origin-storage" {
		t.Error("empty overrides must not clear values")
	}
}

func TestDefaultConfigHCL_Loads(t *testing.T) {
	t.Setenv("DATAVER_REMOTE_URL", "s3://starter/raw")
	path := writeConfig(t, ".dataver.hcl", DefaultConfigHCL())

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("starter config failed to load: %v", err)
	}
	if cfg.Remote.URL != "s3://starter/raw" {
		t.Errorf("expected env() to resolve, got %q", cfg.Remote.URL)
	}
	if err := ValidateRequired(cfg, true, true); err != nil {
		t.Errorf("starter config should be complete: %v", err)
	}
}

func TestLoadYAMLFlatKeysWithoutVersion(t *testing.T) {
	path := writeConfig(t, "config.yaml", "dvc_remote_name: storage\ndvc_remote_url: /mnt/storage\ndvc_raw_data_folder: data/raw\n")

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("expected version 1, got %d", cfg.Version)
	}
	if cfg.Remote.Name != "storage" || cfg.Remote.URL != "/mnt/storage" || cfg.Data.Folder != "data/raw" {
		t.Errorf("flat keys not applied: remote=%+v data=%+v", cfg.Remote, cfg.Data)
	}
}

func TestDataFolderIsCleaned(t *testing.T) {
	path := writeConfig(t, ".dataver.hcl", "version = 1\ndata {\n  folder = \"data/raw/\"\n}\n")

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Data.Folder != "data/raw" {
		t.Errorf("Data.Folder = %q, want %q", cfg.Data.Folder, "data/raw")
	}

	cfg.Apply(Overrides{DataFolder: "./data/processed/"})
	if cfg.Data.Folder != "data/processed" {
		t.Errorf("Data.Folder after override = %q, want %q", cfg.Data.Folder, "data/processed")
	}
}
