package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewURLCmd creates the url command.
func NewURLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "url <alias/path>",
		Short: "Print the resolved source URL of a mirror",
		Args:  cobra.ExactArgs(1),
		RunE:  runURL,
	}

	return cmd
}

func runURL(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	manager, _, err := buildManager(cfg)
	if err != nil {
		return err
	}

	repo, err := manager.Repo(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), repo.URL())
	return nil
}
