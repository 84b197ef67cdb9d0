// Package config provides configuration management for gitmirror. It
// handles loading and validating the cache location, the remote alias map,
// and output settings from a YAML file, with sensible defaults when no file
// exists. The loaded configuration is an immutable snapshot for the
// duration of one invocation.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cperrin88/gitmirror/pkg/errors"
	"github.com/cperrin88/gitmirror/pkg/fsutil"
)

// Config represents the application configuration.
type Config struct {
	// Remotes maps a remote alias to the base URL it stands for.
	// Mirror identities are "<alias>/<path below the base URL>".
	Remotes map[string]string `yaml:"remotes"`

	// General settings
	Settings Settings `yaml:"settings"`
}

// Settings represents general application settings.
type Settings struct {
	// CacheDir is the root under which mirrors, lock files and the global
	// update lock live. Defaults to the user cache directory.
	CacheDir string `yaml:"cache_dir,omitempty"`

	// Quiet silences trace output and passes --quiet to git.
	Quiet bool `yaml:"quiet"`

	// LogLevel controls the diagnostic logger (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// Hooks are optional Tengo scripts run after mirror updates.
	Hooks HooksConfig `yaml:"hooks,omitempty"`
}

// HooksConfig points at optional post-update hook scripts.
type HooksConfig struct {
	PostClone string `yaml:"post_clone,omitempty"`
	PostFetch string `yaml:"post_fetch,omitempty"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	cacheDir, err := fsutil.GetCacheDir()
	if err != nil {
		// Fallback to the working directory if the user cache dir is
		// not resolvable.
		cacheDir = "."
	}

	return &Config{
		Remotes: map[string]string{},
		Settings: Settings{
			CacheDir: cacheDir,
			Quiet:    false,
			LogLevel: "info",
		},
	}
}

// LoadConfig loads configuration from a file. A missing file yields the
// default configuration.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrConfigValidation, err.Error())
	}

	return &config, nil
}

// SaveConfig saves configuration to a file.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	if err := fsutil.EnsureFileDir(path); err != nil {
		return errors.Wrapf(err, "failed to create config directory for %s", path)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}

	return os.WriteFile(path, data, fsutil.FileModeDefault)
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	for alias, base := range c.Remotes {
		if alias == "" {
			return fmt.Errorf("remote alias cannot be empty")
		}
		if strings.Contains(alias, "/") {
			return fmt.Errorf("remote alias %q must not contain '/'", alias)
		}
		if base == "" {
			return fmt.Errorf("remote %q has an empty base URL", alias)
		}
	}

	switch strings.ToLower(c.Settings.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Settings.LogLevel)
	}

	return nil
}

// GetDefaultConfigPath returns the default config file location.
func GetDefaultConfigPath() (string, error) {
	configDir, err := fsutil.GetConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user config directory")
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Remotes == nil {
		c.Remotes = map[string]string{}
	}
	if c.Settings.CacheDir == "" {
		c.Settings.CacheDir = defaults.Settings.CacheDir
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = defaults.Settings.LogLevel
	}
}
