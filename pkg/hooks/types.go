// Package hooks runs optional user-supplied Tengo scripts after mirror
// updates, e.g. to regenerate server info files or notify a dashboard.
package hooks

// HookType represents the type of hook.
type HookType string

// Supported hook types.
const (
	PostClone HookType = "post-clone"
	PostFetch HookType = "post-fetch"
)

// HookContext contains information passed to hook scripts.
type HookContext struct {
	RepoName string
	RepoURL  string
	RepoPath string
	Action   string // "clone" or "fetch"
	Vars     map[string]interface{}
}

// Manager defines the interface for executing hooks.
type Manager interface {
	// Execute runs the specified hook type with the given context.
	Execute(hookType HookType, ctx HookContext) error

	// HasScript checks if a script exists for the specified hook type.
	HasScript(hookType HookType) bool
}
