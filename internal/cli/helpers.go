package cli

import (
	"fmt"
	"os"

	"github.com/cperrin88/gitmirror/internal/logger"
	"github.com/cperrin88/gitmirror/pkg/config"
	"github.com/cperrin88/gitmirror/pkg/console"
	"github.com/cperrin88/gitmirror/pkg/gitcmd"
	"github.com/cperrin88/gitmirror/pkg/hooks"
	"github.com/cperrin88/gitmirror/pkg/mirror"
)

// These variables will be set by the main package
var (
	ConfigPath *string
	Quiet      *bool
	Verbose    *bool
)

// loadConfig loads the configuration honoring the global CLI flags.
func loadConfig() (*config.Config, error) {
	configPath := ""
	if ConfigPath != nil {
		configPath = *ConfigPath
	}

	if configPath == "" {
		defaultPath, err := config.GetDefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get default config path: %w", err)
		}
		configPath = defaultPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with CLI flags if provided
	if Quiet != nil && *Quiet {
		cfg.Settings.Quiet = true
	}
	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}

	logger.InitLogger(cfg.Settings.LogLevel)

	return cfg, nil
}

// buildManager wires the operator log, the git supervisor and the optional
// hook executor into a mirror manager.
func buildManager(cfg *config.Config) (*mirror.Manager, *console.Log, error) {
	log := console.NewLog(os.Stderr, "gitmirror", cfg.Settings.Quiet)

	var hookMgr hooks.Manager
	executor, err := hooks.LoadFromConfig(cfg.Settings.Hooks)
	if err != nil {
		return nil, nil, err
	}
	if executor != nil {
		hookMgr = executor
	}

	manager, err := mirror.NewManager(cfg, log, gitcmd.NewSupervisor(log), hookMgr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create mirror manager: %w", err)
	}
	return manager, log, nil
}
