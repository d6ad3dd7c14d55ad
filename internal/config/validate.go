package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Validate validates the configuration
func Validate(cfg *Config) error {
	// Version check
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (only version 1 is supported)", cfg.Version)
	}

	if cfg.Versioning != nil && cfg.Versioning.Source != "" {
		switch cfg.Versioning.Source {
		case "fixed", "tags":
			// valid
		default:
			return fmt.Errorf("invalid versioning source: %s (must be 'fixed' or 'tags')", cfg.Versioning.Source)
		}
	}

	if cfg.Execution != nil && cfg.Execution.Timeout != "" {
		d, err := time.ParseDuration(cfg.Execution.Timeout)
		if err != nil {
			return fmt.Errorf("invalid execution timeout: %s", cfg.Execution.Timeout)
		}
		if d < 0 {
			return fmt.Errorf("invalid execution timeout: %s (must not be negative)", cfg.Execution.Timeout)
		}
	}

	// Validate output format
	if cfg.Output != nil && cfg.Output.Format != "" {
		switch cfg.Output.Format {
		case "text", "json":
			// valid
		default:
			return fmt.Errorf("invalid output format: %s (must be 'text' or 'json')", cfg.Output.Format)
		}
	}

	// Validate output color
	if cfg.Output != nil && cfg.Output.Color != "" {
		switch cfg.Output.Color {
		case "auto", "always", "never":
			// valid
		default:
			return fmt.Errorf("invalid color mode: %s (must be 'auto', 'always', or 'never')", cfg.Output.Color)
		}
	}

	if cfg.Logging != nil && cfg.Logging.Level != "" {
		if hclog.LevelFromString(cfg.Logging.Level) == hclog.NoLevel {
			return fmt.Errorf("invalid log level: %s (must be 'trace', 'debug', 'info', 'warn', or 'error')", cfg.Logging.Level)
		}
	}

	return nil
}

// ValidateRequired checks the settings needed to configure a remote and publish.
// It runs after command-line overrides are applied.
func ValidateRequired(cfg *Config, needRemote, needData bool) error {
	var missing []string
	if needRemote {
		if cfg.Remote == nil || cfg.Remote.Name == "" {
			missing = append(missing, "remote.name (--remote-name)")
		}
		if cfg.Remote == nil || cfg.Remote.URL == "" {
			missing = append(missing, "remote.url (--remote-url)")
		}
	}
	if needData && (cfg.Data == nil || cfg.Data.Folder == "") {
		missing = append(missing, "data.folder (--data-folder)")
	}
	if len(missing) > 0 {
		return errors.New("missing required settings: " + strings.Join(missing, ", "))
	}
	return nil
}
