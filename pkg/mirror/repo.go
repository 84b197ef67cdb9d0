package mirror

import (
	"context"

	"github.com/cperrin88/gitmirror/pkg/console"
	"github.com/cperrin88/gitmirror/pkg/errors"
	"github.com/cperrin88/gitmirror/pkg/fsutil"
	"github.com/cperrin88/gitmirror/pkg/gitcmd"
	"github.com/cperrin88/gitmirror/pkg/hooks"
	"github.com/cperrin88/gitmirror/pkg/lockfile"
)

// Repo controls the lifecycle of one cached mirror: clone it when absent,
// refresh it when present. All mutation happens under the repository's own
// file lock, so concurrent invocations updating the same mirror queue up
// instead of corrupting it.
type Repo struct {
	name     string
	url      string
	dir      string
	lockPath string
	quiet    bool

	log   *console.Log
	git   gitcmd.Runner
	hooks hooks.Manager
}

// Name returns the repository identity ("alias/path").
func (r *Repo) Name() string {
	return r.name
}

// URL returns the resolved source URL.
func (r *Repo) URL() string {
	return r.url
}

// Dir returns the local mirror directory.
func (r *Repo) Dir() string {
	return r.dir
}

// Exists reports whether the mirror is present on disk.
func (r *Repo) Exists() bool {
	return fsutil.DirExists(r.dir)
}

// Update brings the mirror up to date: a clone when the mirror does not
// exist yet, otherwise a fetch (plus garbage collection when runGC is set).
// The whole operation runs inside a suppression scope, so a fast successful
// update stays silent while slow or failing ones become visible. Concurrent
// updates of the same repository block on its lock rather than fail.
func (r *Repo) Update(ctx context.Context, runGC bool) error {
	return r.log.Suppress(func() error {
		lock, err := lockfile.Acquire(r.lockPath, "mirror "+r.name+" is locked by another process", true, r.log)
		if err != nil {
			return err
		}
		defer lock.Release()

		if r.Exists() {
			return r.fetch(ctx, runGC)
		}
		return r.clone(ctx)
	})
}

func (r *Repo) clone(ctx context.Context) error {
	r.log.Trace("mirroring " + r.name + " from " + r.url)

	args := append([]string{"clone", "--mirror"}, r.verbosity()...)
	args = append(args, r.url, r.dir)
	if err := r.git.Run(ctx, args...); err != nil {
		return err
	}

	r.log.Trace("mirrored " + r.name)
	return r.runHook(hooks.PostClone, "clone")
}

func (r *Repo) fetch(ctx context.Context, runGC bool) error {
	r.log.Trace("updating " + r.name)

	// Re-point the remote in case the configured base URL changed since
	// the mirror was created. Writing the config entry directly never
	// triggers an automatic gc as a side effect.
	if err := r.git.Run(ctx, "-C", r.dir, "config", "remote.origin.url", r.url); err != nil {
		return err
	}

	args := append([]string{"-C", r.dir, "fetch"}, r.verbosity()...)
	args = append(args, "--prune", "--prune-tags", "--tags", "origin")
	if err := r.git.Run(ctx, args...); err != nil {
		return err
	}

	if runGC {
		gcArgs := []string{"-C", r.dir, "gc", "--auto"}
		if r.quiet {
			gcArgs = append(gcArgs, "--quiet")
		}
		if err := r.git.Run(ctx, gcArgs...); err != nil {
			return err
		}
	}

	r.log.Trace("updated " + r.name)
	return r.runHook(hooks.PostFetch, "fetch")
}

func (r *Repo) verbosity() []string {
	if r.quiet {
		return []string{"--quiet"}
	}
	return []string{"--progress"}
}

func (r *Repo) runHook(hookType hooks.HookType, action string) error {
	if r.hooks == nil {
		return nil
	}
	err := r.hooks.Execute(hookType, hooks.HookContext{
		RepoName: r.name,
		RepoURL:  r.url,
		RepoPath: r.dir,
		Action:   action,
	})
	return errors.Wrapf(err, "%s hook for %s", hookType, r.name)
}
