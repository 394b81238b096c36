// Package config loads and validates the selectlist configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the configuration file.
const (
	EnvConfigPath = "SELECTLIST_CONFIG"
	EnvLogLevel   = "SELECTLIST_LOG_LEVEL"
	EnvLogFormat  = "SELECTLIST_LOG_FORMAT"
)

// CurrentVersion is the configuration schema version written by Default.
const CurrentVersion = "1.0.0"

// supportedVersions is the constraint a config file's version must satisfy.
const supportedVersions = ">= 1.0.0, < 2.0.0"

// Renderer names accepted in the list section.
var knownRenderers = map[string]bool{ //nolint:gochecknoglobals // Compile-time constant lookup table.
	"li":       true,
	"option":   true,
	"checkbox": true,
	"span":     true,
	"card":     true,
}

// Sentinel errors returned by Validate.
var (
	ErrInvalidVersion     = errors.New("invalid config version")
	ErrUnsupportedVersion = errors.New("unsupported config version")
	ErrUnknownRenderer    = errors.New("unknown renderer")
	ErrInvalidWidth       = errors.New("width must be >= 0")
)

// Config is the top-level configuration.
type Config struct {
	Version string        `yaml:"version"`
	Logging LoggingConfig `yaml:"logging"`
	List    ListConfig    `yaml:"list"`
}

// ListConfig configures the list widget and the picker hosting it.
type ListConfig struct {
	// Renderer is a tag name (li, option, checkbox, span) or the built-in composite "card".
	Renderer string     `yaml:"renderer"`
	Width    int        `yaml:"width"`
	Keys     KeysConfig `yaml:"keys"`
}

// KeysConfig overrides key bindings. Empty lists keep the defaults.
type KeysConfig struct {
	Toggle  []string `yaml:"toggle,omitempty"`
	Blur    []string `yaml:"blur,omitempty"`
	Confirm []string `yaml:"confirm,omitempty"`
	Quit    []string `yaml:"quit,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		List: ListConfig{
			Renderer: "option",
		},
	}
}

// DefaultPath returns the configuration path: $SELECTLIST_CONFIG, or
// ~/.selectlist/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".selectlist", "config.yaml"), nil
}

// Load returns the defaults with the file at path merged on top. A missing file is not an
// error. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err = ShallowMergeYAML(cfg, path); err != nil {
				return nil, err
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("checking config file %s: %w", path, err)
		}
	}

	cfg.ApplyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv applies environment overrides using lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
}

// Validate checks the version constraint and the list section.
func (c *Config) Validate() error {
	v, err := semver.NewVersion(c.Version)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidVersion, c.Version, err)
	}
	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s (want %s)", ErrUnsupportedVersion, v, supportedVersions)
	}

	if !knownRenderers[strings.ToLower(c.List.Renderer)] {
		return fmt.Errorf("%w: %q", ErrUnknownRenderer, c.List.Renderer)
	}
	if c.List.Width < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidWidth, c.List.Width)
	}
	return nil
}

// Save writes c as YAML to path, creating the parent directory.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}
