package mirror

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cperrin88/gitmirror/pkg/config"
	"github.com/cperrin88/gitmirror/pkg/console"
	"github.com/cperrin88/gitmirror/pkg/errors"
	"github.com/cperrin88/gitmirror/pkg/fsutil"
	"github.com/cperrin88/gitmirror/pkg/gitcmd"
	"github.com/cperrin88/gitmirror/pkg/hooks"
)

// Manager resolves repository names against the configured remotes and
// hands out Repo controllers bound to the cache layout.
type Manager struct {
	reposDir       string
	locksDir       string
	updateLockPath string

	remotes map[string]string
	quiet   bool

	log   *console.Log
	git   gitcmd.Runner
	hooks hooks.Manager
}

// NewManager creates a Manager for the cache described by cfg. The repos/
// and locks/ directories are created if missing. hookMgr may be nil when no
// hooks are configured.
func NewManager(cfg *config.Config, log *console.Log, git gitcmd.Runner, hookMgr hooks.Manager) (*Manager, error) {
	if err := fsutil.EnsureDir(cfg.ReposDir()); err != nil {
		return nil, errors.Wrap(err, "failed to create repos directory")
	}
	if err := fsutil.EnsureDir(cfg.LocksDir()); err != nil {
		return nil, errors.Wrap(err, "failed to create locks directory")
	}

	return &Manager{
		reposDir:       cfg.ReposDir(),
		locksDir:       cfg.LocksDir(),
		updateLockPath: cfg.UpdateLockPath(),
		remotes:        cfg.Remotes,
		quiet:          cfg.Settings.Quiet,
		log:            log,
		git:            git,
		hooks:          hookMgr,
	}, nil
}

// Repo returns the controller for one cached repository. The name is
// validated and resolved against the remote map; the mirror itself may or
// may not exist on disk yet.
func (m *Manager) Repo(name string) (*Repo, error) {
	alias, path, err := Split(name)
	if err != nil {
		return nil, err
	}

	base, ok := m.remotes[alias]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownRemote, "%q", alias)
	}

	encoded := Encode(name)
	return &Repo{
		name:     name,
		url:      strings.TrimSuffix(base, "/") + "/" + path,
		dir:      filepath.Join(m.reposDir, encoded),
		lockPath: filepath.Join(m.locksDir, encoded),
		quiet:    m.quiet,
		log:      m.log,
		git:      m.git,
		hooks:    m.hooks,
	}, nil
}

// List returns the decoded names of all cached repositories, ordered
// lexicographically by their encoded identity.
func (m *Manager) List() ([]string, error) {
	encoded, err := m.listEncoded()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(encoded))
	for _, enc := range encoded {
		name, err := Decode(enc)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// listEncoded returns the encoded identities of all mirrors on disk.
// os.ReadDir sorts by filename, which is exactly the sweep order.
func (m *Manager) listEncoded() ([]string, error) {
	entries, err := os.ReadDir(m.reposDir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cached repositories")
	}

	encoded := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			encoded = append(encoded, e.Name())
		}
	}
	return encoded, nil
}
