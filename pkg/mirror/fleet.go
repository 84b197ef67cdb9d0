package mirror

import (
	"context"

	"github.com/hashicorp/go-multierror"

	"github.com/cperrin88/gitmirror/pkg/errors"
	"github.com/cperrin88/gitmirror/pkg/lockfile"
)

// UpdateAll updates every cached mirror in turn, with garbage collection
// enabled. The sweep holds the global update lock: a second concurrent
// sweep fails immediately instead of queuing. A failure on one repository
// is logged and recorded but never aborts the sweep; the aggregate error is
// returned once every repository has been attempted.
func (m *Manager) UpdateAll(ctx context.Context) error {
	lock, err := lockfile.Acquire(m.updateLockPath, "another fleet update is already running", false, m.log)
	if err != nil {
		return err
	}
	defer lock.Release()

	encoded, err := m.listEncoded()
	if err != nil {
		return err
	}

	var errs *multierror.Error
	for _, enc := range encoded {
		name, err := Decode(enc)
		if err != nil {
			m.log.Logln("skipping unrecognized cache entry " + enc)
			errs = multierror.Append(errs, err)
			continue
		}

		repo, err := m.Repo(name)
		if err != nil {
			m.log.Logln("cannot update " + name + ": " + err.Error())
			errs = multierror.Append(errs, err)
			continue
		}

		if err := repo.Update(ctx, true); err != nil {
			m.log.Logln("update of " + name + " failed: " + err.Error())
			errs = multierror.Append(errs, errors.Wrapf(err, "%s", name))
		}
	}

	return errs.ErrorOrNil()
}
