package hooks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cperrin88/gitmirror/pkg/hooks"
)

func TestTengoExecutor(t *testing.T) {
	executor := hooks.NewTengoExecutor()
	ctx := hooks.HookContext{
		RepoName: "origin/linux",
		RepoURL:  "https://git.example.com/linux",
		RepoPath: "/var/cache/gitmirror/repos/origin%2Flinux",
		Action:   "fetch",
		Vars: map[string]interface{}{
			"customVar": "customValue",
		},
	}

	t.Run("Execute valid script", func(t *testing.T) {
		script := `// A valid script that does nothing`
		executor.AddScript(hooks.PostFetch, script)

		err := executor.Execute(hooks.PostFetch, ctx)
		assert.NoError(t, err, "Execute should not return an error for valid script")
	})

	t.Run("Execute script with runtime error", func(t *testing.T) {
		script := `non_existent_function()`
		executor.AddScript(hooks.PostClone, script)

		err := executor.Execute(hooks.PostClone, ctx)
		assert.Error(t, err, "Execute should return an error for invalid script")
	})

	t.Run("Execute non-existent script", func(t *testing.T) {
		err := executor.Execute("non-existent-hook", ctx)
		assert.NoError(t, err, "Execute should not return an error for non-existent hook")
	})

	t.Run("HasScript check", func(t *testing.T) {
		hookType := hooks.HookType("test-hook")
		assert.False(t, executor.HasScript(hookType), "Should not have script before adding")

		executor.AddScript(hookType, "// test script")
		assert.True(t, executor.HasScript(hookType), "Should have script after adding")

		executor.RemoveScript(hookType)
		assert.False(t, executor.HasScript(hookType), "Should not have script after removal")
	})

	t.Run("Context variables are accessible", func(t *testing.T) {
		script := `
			err := ""
			if repoName != "origin/linux" {
				err = "wrong repoName"
			}
			if action != "fetch" {
				err = "wrong action"
			}
			if customVar != "customValue" {
				err = "wrong customVar"
			}
		`
		executor.AddScript(hooks.PostFetch, script)

		err := executor.Execute(hooks.PostFetch, ctx)
		assert.NoError(t, err, "Context variables should be accessible and correct")
	})

	t.Run("Script error via err variable", func(t *testing.T) {
		script := `err := "deliberate failure"`
		executor.AddScript(hooks.PostFetch, script)

		err := executor.Execute(hooks.PostFetch, ctx)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "deliberate failure")
	})
}
