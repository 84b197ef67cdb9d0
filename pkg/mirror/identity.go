// Package mirror owns the cache of bare git mirrors: repository identities,
// the per-repository update lifecycle, and fleet-wide sweeps.
//
// A repository is identified by "<alias>/<path>", where the alias selects a
// configured remote base URL and the path is appended to it. The identity
// maps one-to-one onto a directory name under the cache root.
package mirror

import (
	"net/url"
	"strings"

	"github.com/cperrin88/gitmirror/pkg/errors"
)

// Split parses a repository name into its remote alias and path. Both parts
// must be non-empty.
func Split(name string) (alias, path string, err error) {
	i := strings.Index(name, "/")
	if i <= 0 || i == len(name)-1 {
		return "", "", errors.Wrapf(errors.ErrBadName, "%q", name)
	}
	return name[:i], name[i+1:], nil
}

// Encode maps a repository name onto a single filesystem-safe path
// component. The encoding is bijective: Decode(Encode(name)) == name.
func Encode(name string) string {
	return url.QueryEscape(name)
}

// Decode reverses Encode.
func Decode(encoded string) (string, error) {
	name, err := url.QueryUnescape(encoded)
	if err != nil {
		return "", errors.Wrapf(errors.ErrBadName, "%q: %v", encoded, err)
	}
	return name, nil
}
