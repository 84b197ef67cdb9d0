package hooks

import (
	"os"

	"github.com/cperrin88/gitmirror/pkg/config"
	"github.com/cperrin88/gitmirror/pkg/errors"
)

// LoadFromConfig builds an executor from the hook script paths in the
// configuration. Returns nil when no hooks are configured, so callers can
// skip hook execution entirely.
func LoadFromConfig(cfg config.HooksConfig) (*TengoExecutor, error) {
	if cfg.PostClone == "" && cfg.PostFetch == "" {
		return nil, nil
	}

	executor := NewTengoExecutor()

	if cfg.PostClone != "" {
		script, err := os.ReadFile(cfg.PostClone)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrHookLoad, "%s: %v", cfg.PostClone, err)
		}
		executor.AddScript(PostClone, string(script))
	}

	if cfg.PostFetch != "" {
		script, err := os.ReadFile(cfg.PostFetch)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrHookLoad, "%s: %v", cfg.PostFetch, err)
		}
		executor.AddScript(PostFetch, string(script))
	}

	return executor, nil
}
