package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cperrin88/gitmirror/internal/logger"
	"github.com/cperrin88/gitmirror/pkg/gitcmd"
)

// NewUpdateCmd creates the update command.
func NewUpdateCmd() *cobra.Command {
	var (
		all   bool
		runGC bool
	)

	cmd := &cobra.Command{
		Use:   "update [alias/path]",
		Short: "Update cached mirrors",
		Long: `Update a cached mirror from its origin, cloning it first if it does
not exist yet. With --all, every cached mirror is updated in turn under
the global update lock; garbage collection is always enabled for a full
sweep.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				if len(args) != 0 {
					return fmt.Errorf("--all takes no repository argument")
				}
				return runUpdateAll(cmd)
			}
			if len(args) != 1 {
				return fmt.Errorf("expected a repository name or --all")
			}
			return runUpdate(cmd, args[0], runGC)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Update every cached mirror")
	cmd.Flags().BoolVar(&runGC, "gc", false, "Run garbage collection after the fetch")

	return cmd
}

func runUpdate(cmd *cobra.Command, name string, runGC bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := gitcmd.EnsureMinimum(cmd.Context()); err != nil {
		return err
	}

	manager, _, err := buildManager(cfg)
	if err != nil {
		return err
	}

	repo, err := manager.Repo(name)
	if err != nil {
		return err
	}

	logger.Debug("updating mirror", logger.Fields{"repo": name, "gc": runGC})
	return repo.Update(cmd.Context(), runGC)
}

func runUpdateAll(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := gitcmd.EnsureMinimum(cmd.Context()); err != nil {
		return err
	}

	manager, _, err := buildManager(cfg)
	if err != nil {
		return err
	}

	logger.Debug("starting fleet update")
	return manager.UpdateAll(cmd.Context())
}
