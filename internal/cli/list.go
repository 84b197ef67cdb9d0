package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cperrin88/gitmirror/pkg/fsutil"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	var showSize bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cached mirrors",
		Long:  "List all mirrors currently present in the cache, with their resolved source URLs.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, showSize)
		},
	}

	cmd.Flags().BoolVar(&showSize, "size", false, "Show on-disk size of each mirror")

	return cmd
}

func runList(cmd *cobra.Command, showSize bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	manager, _, err := buildManager(cfg)
	if err != nil {
		return err
	}

	names, err := manager.List()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No mirrors cached")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	for _, name := range names {
		repo, err := manager.Repo(name)
		if err != nil {
			// Entries whose alias is gone from the config are still listed.
			fmt.Fprintf(w, "%s\t(%v)\n", name, err)
			continue
		}
		if showSize {
			size, err := fsutil.DirSize(repo.Dir())
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\t%d\n", name, repo.URL(), size)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", name, repo.URL())
	}
	return nil
}
