// Package config handles loading and validating dataver configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"
)

// FileNames are searched, in order, in the working directory.
var FileNames = []string{".dataver.hcl", ".dataver.yaml", ".dataver.yml"}

// Config represents the dataver configuration
type Config struct {
	Version    int               `hcl:"version,attr" yaml:"version"`
	Remote     *RemoteConfig     `hcl:"remote,block" yaml:"remote"`
	Data       *DataConfig       `hcl:"data,block" yaml:"data"`
	Versioning *VersioningConfig `hcl:"versioning,block" yaml:"versioning"`
	Execution  *ExecutionConfig  `hcl:"execution,block" yaml:"execution"`
	Output     *OutputConfig     `hcl:"output,block" yaml:"output"`
	Logging    *LoggingConfig    `hcl:"logging,block" yaml:"logging"`

	// Flat keys accepted in YAML files, matching older project configs
	Flat FlatKeys `yaml:",inline"`

	// Internal: path to the loaded config file (empty if using defaults)
	configPath string
}

// FlatKeys are top-level YAML aliases for the remote and data settings
type FlatKeys struct {
	RemoteName    string `yaml:"dvc_remote_name,omitempty"`
	RemoteURL     string `yaml:"dvc_remote_url,omitempty"`
	RawDataFolder string `yaml:"dvc_raw_data_folder,omitempty"`
}

// RemoteConfig defines the dvc remote storage
type RemoteConfig struct {
	Name string `hcl:"name,optional" yaml:"name"`
	URL  string `hcl:"url,optional" yaml:"url"`
}

// DataConfig defines the versioned data folder
type DataConfig struct {
	Folder  string   `hcl:"folder,optional" yaml:"folder"`
	Include []string `hcl:"include,optional" yaml:"include"`
	Exclude []string `hcl:"exclude,optional" yaml:"exclude"`
}

// VersioningConfig defines how the next version label is computed
type VersioningConfig struct {
	Source string `hcl:"source,optional" yaml:"source"`
}

// ExecutionConfig defines how external commands are run
type ExecutionConfig struct {
	Timeout   string `hcl:"timeout,optional" yaml:"timeout"`
	GitBinary string `hcl:"git_binary,optional" yaml:"git_binary"`
	DVCBinary string `hcl:"dvc_binary,optional" yaml:"dvc_binary"`
}

// OutputConfig defines report output settings
type OutputConfig struct {
	Format string `hcl:"format,optional" yaml:"format"`
	Color  string `hcl:"color,optional" yaml:"color"`
}

// LoggingConfig defines log settings
type LoggingConfig struct {
	Level string `hcl:"level,optional" yaml:"level"`
	JSON  bool   `hcl:"json,optional" yaml:"json"`
}

// Overrides carries command-line values that take precedence over the file
type Overrides struct {
	RemoteName string
	RemoteURL  string
	DataFolder string
	LogLevel   string
}

// ConfigPath returns the path to the loaded config file, or empty if using defaults
func (c *Config) ConfigPath() string {
	return c.configPath
}

// CommandTimeout returns the per-command timeout. Zero means no limit.
func (c *Config) CommandTimeout() time.Duration {
	if c.Execution == nil || c.Execution.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Execution.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Apply copies non-empty overrides into the config
func (c *Config) Apply(o Overrides) {
	if o.RemoteName != "" {
		c.Remote.Name = o.RemoteName
	}
	if o.RemoteURL != "" {
		c.Remote.URL = o.RemoteURL
	}
	if o.DataFolder != "" {
		c.Data.Folder = filepath.Clean(o.DataFolder)
	}
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
}

// Load loads configuration from the specified path or searches for it in dir
func Load(configPath, dir string) (*Config, error) {
	var path string

	if configPath != "" {
		// Explicit path provided
		path = configPath
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	} else {
		path = findConfigFile(dir)
	}

	if path == "" {
		// No config found, use defaults
		return Default(), nil
	}

	return loadFromFile(path)
}

// findConfigFile searches for a config file in dir
func findConfigFile(dir string) string {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return ""
		}
		dir = cwd
	}

	for _, name := range FileNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// loadFromFile loads and parses a configuration file
func loadFromFile(path string) (*Config, error) {
	var (
		config *Config
		err    error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		config, err = decodeYAML(path)
	default:
		config, err = decodeHCL(path)
	}
	if err != nil {
		return nil, err
	}

	config.configPath = path

	// Apply defaults for missing optional blocks
	applyDefaults(config)

	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

func decodeHCL(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", formatDiagnostics(diags))
	}

	var config Config
	decodeDiags := gohcl.DecodeBody(file.Body, evalContext(), &config)
	if decodeDiags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", formatDiagnostics(decodeDiags))
	}
	return &config, nil
}

func decodeYAML(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	// Flat-key files written for older tooling carry no version
	config := Config{Version: 1}
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %s: %w", path, err)
	}
	return &config, nil
}

// formatDiagnostics formats HCL diagnostics into a readable error string
func formatDiagnostics(diags hcl.Diagnostics) string {
	if len(diags) == 0 {
		return ""
	}

	var b strings.Builder
	for i, diag := range diags {
		if i > 0 {
			b.WriteString("; ")
		}
		if diag.Subject != nil {
			fmt.Fprintf(&b, "%s:%d: ", diag.Subject.Filename, diag.Subject.Start.Line)
		}
		b.WriteString(diag.Summary)
		if diag.Detail != "" {
			b.WriteString(": ")
			b.WriteString(diag.Detail)
		}
	}
	return b.String()
}

// applyDefaults fills in default values for missing optional config blocks
func applyDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Remote == nil {
		cfg.Remote = defaults.Remote
	}
	if cfg.Remote.Name == "" {
		cfg.Remote.Name = cfg.Flat.RemoteName
	}
	if cfg.Remote.URL == "" {
		cfg.Remote.URL = cfg.Flat.RemoteURL
	}

	if cfg.Data == nil {
		cfg.Data = defaults.Data
	} else {
		if len(cfg.Data.Include) == 0 {
			cfg.Data.Include = defaults.Data.Include
		}
		if cfg.Data.Exclude == nil {
			cfg.Data.Exclude = defaults.Data.Exclude
		}
	}
	if cfg.Data.Folder == "" {
		cfg.Data.Folder = cfg.Flat.RawDataFolder
	}
	if cfg.Data.Folder != "" {
		cfg.Data.Folder = filepath.Clean(cfg.Data.Folder)
	}

	if cfg.Versioning == nil {
		cfg.Versioning = defaults.Versioning
	} else if cfg.Versioning.Source == "" {
		cfg.Versioning.Source = defaults.Versioning.Source
	}

	if cfg.Execution == nil {
		cfg.Execution = defaults.Execution
	} else {
		if cfg.Execution.Timeout == "" {
			cfg.Execution.Timeout = defaults.Execution.Timeout
		}
		if cfg.Execution.GitBinary == "" {
			cfg.Execution.GitBinary = defaults.Execution.GitBinary
		}
		if cfg.Execution.DVCBinary == "" {
			cfg.Execution.DVCBinary = defaults.Execution.DVCBinary
		}
	}

	if cfg.Output == nil {
		cfg.Output = defaults.Output
	} else {
		if cfg.Output.Format == "" {
			cfg.Output.Format = defaults.Output.Format
		}
		if cfg.Output.Color == "" {
			cfg.Output.Color = defaults.Output.Color
		}
	}

	if cfg.Logging == nil {
		cfg.Logging = defaults.Logging
	} else if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaults.Logging.Level
	}
}
