package config

// Default per-command timeout. dvc push of a large folder can be slow.
const DefaultTimeout = "30m"

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Version: 1,
		Remote:  &RemoteConfig{},
		Data: &DataConfig{
			Include: []string{"**"},
			Exclude: []string{},
		},
		Versioning: &VersioningConfig{
			Source: "fixed",
		},
		Execution: &ExecutionConfig{
			Timeout:   DefaultTimeout,
			GitBinary: "git",
			DVCBinary: "dvc",
		},
		Output: &OutputConfig{
			Format: "text",
			Color:  "auto",
		},
		Logging: &LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultConfigHCL returns a documented starter configuration
func DefaultConfigHCL() string {
	return `# dataver configuration
# See: dataver --help

version = 1

# dvc remote storage. Added as the default remote by "dataver setup"
# when the repository has no remote yet.
remote {
  name = "storage"
  url  = env("DATAVER_REMOTE_URL")
}

data {
  # Folder tracked by dvc and published as a new version when it changes
  folder = "data/raw"

  # Glob patterns (doublestar syntax) used to count snapshot files
  include = ["**"]
  exclude = []
}

versioning {
  # "fixed": every publish goes from v0 to v1
  # "tags":  continue from the highest v{n} git tag
  source = "fixed"
}

execution {
  # Per-command timeout, "0s" disables it
  timeout    = "30m"
  git_binary = "git"
  dvc_binary = "dvc"
}

output {
  # Report format: text, json
  format = "text"

  # Color mode: auto, always, never
  color = "auto"
}

logging {
  # trace, debug, info, warn, error
  level = "info"
  json  = false
}
`
}
