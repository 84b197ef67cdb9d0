package gitcmd

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// minGitVersion is the oldest git that supports `fetch --prune-tags`.
const minGitVersion = "2.17.0"

// Version probes the installed git binary and returns its version.
func Version(ctx context.Context) (*goversion.Version, error) {
	out, err := exec.CommandContext(ctx, "git", "version").Output()
	if err != nil {
		return nil, &CommandError{Args: []string{"git", "version"}, ExitCode: -1, Err: err}
	}
	return parseVersion(string(out))
}

// EnsureMinimum fails when the installed git is too old for the fetch
// options gitmirror relies on.
func EnsureMinimum(ctx context.Context) error {
	v, err := Version(ctx)
	if err != nil {
		return err
	}
	minimum := goversion.Must(goversion.NewVersion(minGitVersion))
	if v.LessThan(minimum) {
		return fmt.Errorf("git %s is too old, need at least %s", v, minimum)
	}
	return nil
}

// parseVersion extracts the version from `git version` output, e.g.
// "git version 2.39.2" or "git version 2.39.2.windows.1".
func parseVersion(out string) (*goversion.Version, error) {
	fields := strings.Fields(strings.TrimSpace(out))
	if len(fields) < 3 || fields[0] != "git" || fields[1] != "version" {
		return nil, fmt.Errorf("unexpected git version output: %q", strings.TrimSpace(out))
	}

	// Keep only the leading numeric release parts; vendor suffixes like
	// ".windows.1" are not semver.
	parts := strings.Split(fields[2], ".")
	numeric := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" || strings.IndexFunc(p, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
			break
		}
		numeric = append(numeric, p)
	}
	if len(numeric) == 0 {
		return nil, fmt.Errorf("unexpected git version output: %q", strings.TrimSpace(out))
	}

	v, err := goversion.NewVersion(strings.Join(numeric, "."))
	if err != nil {
		return nil, fmt.Errorf("unexpected git version output: %q", strings.TrimSpace(out))
	}
	return v, nil
}
